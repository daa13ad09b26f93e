package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themekit/internal/metrics"
	"github.com/thatcatcamp/themekit/internal/settings"
)

// GetSettings returns the current settings snapshot.
func (s *Server) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Settings())
}

// PatchSettings merges a partial update into the live settings. Omitted
// fields keep their current value.
func (s *Server) PatchSettings(c *gin.Context) {
	var patch settings.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		s.metrics.SettingsUpdate(metrics.UpdateRejected)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	next, changed, err := s.store.Update(c.Request.Context(), patch)
	if err != nil {
		var verr *settings.ValidationError
		if errors.As(err, &verr) {
			s.metrics.SettingsUpdate(metrics.UpdateRejected)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": verr.Error(),
				"field": verr.Field,
			})
			return
		}
		s.log.Error().Err(err).Msg("failed to update settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	if changed {
		s.metrics.SettingsUpdate(metrics.UpdateApplied)
	} else {
		s.metrics.SettingsUpdate(metrics.UpdateUnchanged)
	}

	c.JSON(http.StatusOK, gin.H{
		"settings": next,
		"changed":  changed,
	})
}
