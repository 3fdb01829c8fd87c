package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenVerifier validates a raw bearer token and returns the authenticated
// staff username. Kept as a function type so handlers can be tested without
// minting real tokens.
type TokenVerifier func(raw string) (string, error)

// AdminAuth returns a Gin middleware guarding office-staff endpoints. On
// success the username is stored under the "admin" context key.
func AdminAuth(verify TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}
		// Expect 'Bearer <token>'
		var token string
		if n, _ := fmt.Sscanf(auth, "Bearer %s", &token); n != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		username, err := verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("admin", username)
		c.Next()
	}
}
