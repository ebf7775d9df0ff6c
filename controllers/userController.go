package controllers

import (
	"log"
	"net/http"

	"github.com/arukavina95/CityVoice/config"
	"github.com/arukavina95/CityVoice/models"

	"github.com/gin-gonic/gin"
)

// GetUsers lists all users with their role names. Administrator only.
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Preload("Role").Find(&users).Error; err != nil {
		log.Println("Error listing users:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	dtos := make([]gin.H, 0, len(users))
	for i := range users {
		dtos = append(dtos, gin.H{
			"id":       users[i].ID,
			"username": users[i].Username,
			"email":    users[i].Email,
			"roleName": users[i].Role.Name,
		})
	}

	c.JSON(http.StatusOK, dtos)
}
