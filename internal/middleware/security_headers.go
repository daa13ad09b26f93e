package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themekit/internal/config"
)

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		c.Header("X-Frame-Options", "SAMEORIGIN")

		// The preview page carries its theme config inline
		csp := "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data:; " +
			"font-src 'self' data:; " +
			"connect-src 'self'"
		c.Header("Content-Security-Policy", csp)

		// Stylesheet and utility config may be fetched from dev servers on other origins
		c.Header("Cross-Origin-Resource-Policy", "cross-origin")

		// HTTP Strict Transport Security (HSTS) - only behind TLS
		if config.GetBool("server.behind_tls") {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
