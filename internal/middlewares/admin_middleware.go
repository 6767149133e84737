package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminRequired gates the moderation endpoints behind the shared admin
// password. The product has no user accounts, so this is a single-password
// check rather than account-based auth.
// An empty configured password disables the gate (local development).
func AdminRequired(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if password == "" {
			c.Next()
			return
		}

		supplied := c.GetHeader("X-Admin-Password")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(password)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid admin password"})
			return
		}

		c.Next()
	}
}
