package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireToken middleware validates a bearer token when a secret is
// configured. Without a secret every request passes.
func RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Enabled() {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.Header("WWW-Authenticate", `Bearer realm="themekit"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			return
		}

		claims, err := ValidateToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Set subject in context for handlers
		c.Set("subject", claims.Subject)

		c.Next()
	}
}
