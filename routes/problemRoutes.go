package routes

import (
	"github.com/arukavina95/CityVoice/config"
	"github.com/arukavina95/CityVoice/controllers"
	"github.com/arukavina95/CityVoice/middlewares"

	"github.com/gin-gonic/gin"
)

// How many reports a single user may create per day when Redis-backed
// throttling is enabled.
const dailyReportLimit = 20

// ProblemRoutes sets up the problem report routes. Reads are anonymous;
// writes go through authentication and the role policy.
func ProblemRoutes(r *gin.Engine) {
	problem := r.Group("/api/problems")
	{
		problem.GET("", controllers.GetProblems)
		problem.GET("/:id", controllers.GetProblem)
		problem.GET("/:id/notes", controllers.GetNotes)

		create := []gin.HandlerFunc{
			middlewares.AuthMiddleware(),
			middlewares.Authorize(middlewares.ActionCreateProblem),
		}
		if config.RedisClient != nil {
			create = append(create, middlewares.ReportRateLimiter(dailyReportLimit))
		}
		create = append(create, controllers.CreateProblem)
		problem.POST("", create...)

		problem.PUT("/:id/status",
			middlewares.AuthMiddleware(),
			middlewares.Authorize(middlewares.ActionChangeStatus),
			controllers.UpdateProblemStatus)
		problem.DELETE("/:id",
			middlewares.AuthMiddleware(),
			middlewares.Authorize(middlewares.ActionDeleteProblem),
			controllers.DeleteProblem)
		problem.POST("/:id/notes",
			middlewares.AuthMiddleware(),
			middlewares.Authorize(middlewares.ActionAddNote),
			controllers.AddNote)
	}
}
