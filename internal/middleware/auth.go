package middleware

import (
	"net/http"

	"wims/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		userID := sess.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole gates a route to the given roles. The sidebar only hides links;
// this is the actual access-control boundary.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	roleSet := map[models.Role]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleVal, ok := sess.Get("role").(int)
		if !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		role, ok := models.RoleFromValue(roleVal)
		if !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		if _, ok := roleSet[role]; !ok {
			c.String(http.StatusForbidden, "access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
