package controllers

import (
	"log"
	"net/http"

	"github.com/arukavina95/CityVoice/config"
	"github.com/arukavina95/CityVoice/models"

	"github.com/gin-gonic/gin"
)

// GetProblemTypes returns the seeded problem categories.
func GetProblemTypes(c *gin.Context) {
	var problemTypes []models.ProblemType
	if err := config.DB.Find(&problemTypes).Error; err != nil {
		log.Println("Error listing problem types:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve problem types"})
		return
	}
	c.JSON(http.StatusOK, problemTypes)
}

// GetStatuses returns the seeded lifecycle statuses.
func GetStatuses(c *gin.Context) {
	var statuses []models.Status
	if err := config.DB.Find(&statuses).Error; err != nil {
		log.Println("Error listing statuses:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statuses"})
		return
	}
	c.JSON(http.StatusOK, statuses)
}
