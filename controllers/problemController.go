package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/arukavina95/CityVoice/config"
	"github.com/arukavina95/CityVoice/middlewares"
	"github.com/arukavina95/CityVoice/models"
	"github.com/arukavina95/CityVoice/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// One degree of latitude is roughly 111 km. Radius search converts
// kilometers to degrees with this factor and compares planar distance.
// Accurate near the equator, increasingly distorted toward the poles;
// kept deliberately instead of a great-circle formula so result sets
// match the documented behavior.
const kmPerDegree = 111.0

func problemToDTO(p *models.Problem) gin.H {
	return gin.H{
		"id":               p.ID,
		"title":            p.Title,
		"description":      p.Description,
		"imageUrl":         p.ImageURL,
		"reportedAt":       p.ReportedAt,
		"latitude":         p.Latitude,
		"longitude":        p.Longitude,
		"reporterUsername": p.Reporter.Username,
		"problemTypeName":  p.ProblemType.Name,
		"statusName":       p.Status.Name,
	}
}

func noteToDTO(n *models.Note) gin.H {
	return gin.H{
		"id":        n.ID,
		"content":   n.Content,
		"createdAt": n.CreatedAt,
		"username":  n.User.Username,
	}
}

// GetProblems returns the filtered list of reports. All filters are
// optional and combine with AND; the radius filter applies only when
// latitude, longitude and radiusKm are all present.
func GetProblems(c *gin.Context) {
	query := config.DB.
		Preload("Reporter").
		Preload("ProblemType").
		Preload("Status")

	if statusID, err := strconv.ParseUint(c.Query("statusId"), 10, 64); err == nil {
		query = query.Where("status_id = ?", statusID)
	}

	if problemTypeID, err := strconv.ParseUint(c.Query("problemTypeId"), 10, 64); err == nil {
		query = query.Where("problem_type_id = ?", problemTypeID)
	}

	lat, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("longitude"), 64)
	radiusKm, radiusErr := strconv.ParseFloat(c.Query("radiusKm"), 64)
	if latErr == nil && lonErr == nil && radiusErr == nil {
		distanceDegrees := radiusKm / kmPerDegree
		// Squared planar distance keeps the predicate portable SQL.
		query = query.Where(
			"((latitude - ?) * (latitude - ?) + (longitude - ?) * (longitude - ?)) <= ?",
			lat, lat, lon, lon, distanceDegrees*distanceDegrees,
		)
	}

	var problems []models.Problem
	if err := query.Find(&problems).Error; err != nil {
		log.Println("Error listing problems:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve problems"})
		return
	}

	dtos := make([]gin.H, 0, len(problems))
	for i := range problems {
		dtos = append(dtos, problemToDTO(&problems[i]))
	}

	c.JSON(http.StatusOK, dtos)
}

// GetProblem returns a single report with its notes in creation order.
func GetProblem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid problem ID"})
		return
	}

	var problem models.Problem
	err = config.DB.
		Preload("Reporter").
		Preload("ProblemType").
		Preload("Status").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Notes.User").
		First(&problem, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Problem not found"})
		} else {
			log.Println("Error retrieving problem:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve problem"})
		}
		return
	}

	dto := problemToDTO(&problem)
	notes := make([]gin.H, 0, len(problem.Notes))
	for i := range problem.Notes {
		notes = append(notes, noteToDTO(&problem.Notes[i]))
	}
	dto["notes"] = notes

	c.JSON(http.StatusOK, dto)
}

// CreateProblem handles a multipart report submission with an optional
// image. Status is always New and reportedAt/reporter are set server-side.
func CreateProblem(c *gin.Context) {
	userIDVal, exists := c.Get(middlewares.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	reporterID, _ := userIDVal.(uint)

	var input struct {
		Title         string   `form:"title" binding:"required,max=100"`
		Description   string   `form:"description" binding:"required"`
		Latitude      *float64 `form:"latitude" binding:"required,gte=-90,lte=90"`
		Longitude     *float64 `form:"longitude" binding:"required,gte=-180,lte=180"`
		ProblemTypeID uint     `form:"problemTypeId" binding:"required"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var reporter models.User
	if err := config.DB.First(&reporter, reporterID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authenticated user not found"})
		return
	}

	var problemType models.ProblemType
	if err := config.DB.First(&problemType, input.ProblemTypeID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The given problem type does not exist"})
		return
	}

	var imageURL *string
	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		url, err := utils.StoreImage(file)
		if err != nil {
			log.Println("Error storing image:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		imageURL = &url
	}

	var initialStatus models.Status
	if err := config.DB.Where("name = ?", models.StatusNew).First(&initialStatus).Error; err != nil {
		log.Println("Initial status not seeded:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	problem := models.Problem{
		Title:         input.Title,
		Description:   input.Description,
		ImageURL:      imageURL,
		ReportedAt:    time.Now().UTC(),
		Latitude:      *input.Latitude,
		Longitude:     *input.Longitude,
		ReporterID:    reporter.ID,
		ProblemTypeID: problemType.ID,
		StatusID:      initialStatus.ID,
	}

	if err := config.DB.Create(&problem).Error; err != nil {
		log.Println("Error inserting problem:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create problem"})
		return
	}

	problem.Reporter = reporter
	problem.ProblemType = problemType
	problem.Status = initialStatus

	c.JSON(http.StatusCreated, problemToDTO(&problem))
}

// UpdateProblemStatus moves a report to a new status. The body is the raw
// JSON status id. Any current status may move to any existing status.
func UpdateProblemStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid problem ID"})
		return
	}

	var statusID uint
	if err := c.ShouldBindJSON(&statusID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be a status ID"})
		return
	}

	var problem models.Problem
	if err := config.DB.First(&problem, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Problem not found"})
		} else {
			log.Println("Error retrieving problem:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve problem"})
		}
		return
	}

	var newStatus models.Status
	if err := config.DB.First(&newStatus, statusID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The given status does not exist"})
		return
	}

	if err := config.DB.Model(&problem).Update("status_id", newStatus.ID).Error; err != nil {
		log.Println("Error updating status:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteProblem removes a report, its notes and its stored image. Image
// removal is best-effort: a failure is logged, not surfaced, since the
// record deletion already succeeded.
func DeleteProblem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid problem ID"})
		return
	}

	var problem models.Problem
	if err := config.DB.First(&problem, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Problem not found"})
		} else {
			log.Println("Error retrieving problem:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve problem"})
		}
		return
	}

	if err := config.DB.Where("problem_id = ?", problem.ID).Delete(&models.Note{}).Error; err != nil {
		log.Println("Error deleting notes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete problem"})
		return
	}

	if err := config.DB.Delete(&problem).Error; err != nil {
		log.Println("Error deleting problem:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete problem"})
		return
	}

	if problem.ImageURL != nil {
		if err := utils.DeleteImage(*problem.ImageURL); err != nil {
			log.Println("Error deleting image file:", err)
		}
	}

	c.Status(http.StatusNoContent)
}

// GetNotes lists a report's notes ordered by creation time ascending.
func GetNotes(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid problem ID"})
		return
	}

	var count int64
	if err := config.DB.Model(&models.Problem{}).Where("id = ?", id).Count(&count).Error; err != nil {
		log.Println("Error checking problem:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notes"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Problem not found"})
		return
	}

	var notes []models.Note
	if err := config.DB.
		Preload("User").
		Where("problem_id = ?", id).
		Order("created_at ASC").
		Find(&notes).Error; err != nil {
		log.Println("Error listing notes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notes"})
		return
	}

	dtos := make([]gin.H, 0, len(notes))
	for i := range notes {
		dtos = append(dtos, noteToDTO(&notes[i]))
	}

	c.JSON(http.StatusOK, dtos)
}

// AddNote appends an annotation to a report. Notes are immutable once
// created.
func AddNote(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid problem ID"})
		return
	}

	var input struct {
		Content string `json:"content" binding:"required,min=1,max=1000"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var problem models.Problem
	if err := config.DB.First(&problem, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Problem not found"})
		} else {
			log.Println("Error retrieving problem:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve problem"})
		}
		return
	}

	userIDVal, exists := c.Get(middlewares.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	authorID, _ := userIDVal.(uint)

	var author models.User
	if err := config.DB.First(&author, authorID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authenticated user not found"})
		return
	}

	note := models.Note{
		Content:   input.Content,
		CreatedAt: time.Now().UTC(),
		UserID:    author.ID,
		ProblemID: problem.ID,
	}

	if err := config.DB.Create(&note).Error; err != nil {
		log.Println("Error inserting note:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}

	note.User = author
	c.JSON(http.StatusCreated, noteToDTO(&note))
}
