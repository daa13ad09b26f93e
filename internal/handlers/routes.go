package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themekit/internal/auth"
	"github.com/thatcatcamp/themekit/internal/middleware"
)

// Register mounts every route on r. Settings writes are rate limited per
// client and require a bearer token when a signing secret is configured.
func (s *Server) Register(r *gin.Engine, limiter *middleware.RateLimiter) {
	r.Use(middleware.MetricsMiddleware(s.metrics))
	r.Use(middleware.SecurityHeadersMiddleware())

	r.GET("/health", s.Health)
	r.GET("/", s.Preview)
	r.GET("/theme.css", s.Stylesheet)
	r.GET("/tailwind.config.json", s.TailwindConfig)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/settings", s.GetSettings)
		api.PATCH("/settings", middleware.RateLimitMiddleware(limiter), auth.RequireToken(), s.PatchSettings)
	}
}
