package middlewares

import (
	"net/http"

	"github.com/arukavina95/CityVoice/models"

	"github.com/gin-gonic/gin"
)

// Action names a protected operation checked against the policy table.
type Action string

const (
	ActionCreateProblem Action = "problem:create"
	ActionChangeStatus  Action = "problem:change-status"
	ActionDeleteProblem Action = "problem:delete"
	ActionAddNote       Action = "note:create"
	ActionListUsers     Action = "user:list"
)

// policy is the single declarative map of which roles may perform which
// action. Anything not listed is denied.
var policy = map[Action][]models.RoleName{
	ActionCreateProblem: {models.RoleCitizen, models.RoleAdministrator},
	ActionChangeStatus:  {models.RoleAdministrator, models.RoleOfficial},
	ActionDeleteProblem: {models.RoleAdministrator},
	ActionAddNote:       {models.RoleAdministrator, models.RoleOfficial},
	ActionListUsers:     {models.RoleAdministrator},
}

// Authorize gates a route on the policy table. Must run after
// AuthMiddleware: a request without decoded claims is unauthenticated
// (401), a valid identity with the wrong role is forbidden (403).
func Authorize(action Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		role, _ := roleVal.(string)
		for _, allowed := range policy[action] {
			if models.RoleName(role) == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this action"})
		c.Abort()
	}
}
