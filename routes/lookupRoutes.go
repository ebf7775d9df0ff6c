package routes

import (
	"github.com/arukavina95/CityVoice/controllers"

	"github.com/gin-gonic/gin"
)

// LookupRoutes sets up the read-only enumeration routes.
func LookupRoutes(r *gin.Engine) {
	r.GET("/api/problemtypes", controllers.GetProblemTypes)
	r.GET("/api/statuses", controllers.GetStatuses)
}
