package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/arukavina95/CityVoice/config"
	"github.com/arukavina95/CityVoice/routes"
	"github.com/arukavina95/CityVoice/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to PostgreSQL")
	}

	log.Println("Database connection established successfully!")

	// Rate limiting is optional: only enabled when Redis is configured.
	if os.Getenv("REDIS_ADDRESS") != "" {
		config.ConnectRedis()
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Uploaded images are served as static files.
	r.Static("/images", filepath.Join(utils.MediaRoot(), "images"))

	routes.AuthRoutes(r)
	routes.ProblemRoutes(r)
	routes.UserRoutes(r)
	routes.LookupRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
