package routes

import (
	"github.com/arukavina95/CityVoice/controllers"
	"github.com/arukavina95/CityVoice/middlewares"

	"github.com/gin-gonic/gin"
)

// UserRoutes sets up the administrator-only user listing.
func UserRoutes(r *gin.Engine) {
	user := r.Group("/api/users")
	{
		user.GET("",
			middlewares.AuthMiddleware(),
			middlewares.Authorize(middlewares.ActionListUsers),
			controllers.GetUsers)
	}
}
