package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ozadencsevda/restaurant-api/entity"
	"github.com/ozadencsevda/restaurant-api/pkg/resp"
	"github.com/ozadencsevda/restaurant-api/utils"
)

// AuthMiddleware verifies the bearer token and resolves its subject to an
// existing user. A token whose user has been removed is rejected the same
// way as a malformed one.
func AuthMiddleware(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		userID, err := utils.ParseToken(tokenStr, jwtSecret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		var user entity.User
		if err := db.First(&user, userID).Error; err != nil {
			resp.Unauthorized(c, "user not found")
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("isAdmin", user.IsAdmin)
		c.Next()
	}
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.CurrentUserIsAdmin(c) {
			resp.Forbidden(c, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
