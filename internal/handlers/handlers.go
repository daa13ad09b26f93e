// SPDX-License-Identifier: MIT

// Package handlers serves the theme over HTTP: the stylesheet, the utility
// framework config, the live settings and a preview page.
package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/thatcatcamp/themekit/internal/metrics"
	"github.com/thatcatcamp/themekit/internal/settings"
	"github.com/thatcatcamp/themekit/internal/tailwind"
	"github.com/thatcatcamp/themekit/internal/themes"
)

// Server holds everything the handlers read from. The stylesheet and the
// utility config depend only on the registry, so they are built once.
type Server struct {
	registry *themes.Registry
	store    *settings.Store
	metrics  *metrics.Metrics
	log      zerolog.Logger

	stylesheet string
	etag       string
	tailwind   []byte
}

// New renders the static assets and returns a Server. It fails if the
// generated stylesheet does not tokenize cleanly.
func New(reg *themes.Registry, store *settings.Store, m *metrics.Metrics, log zerolog.Logger) (*Server, error) {
	log = log.With().Str("component", "http").Logger()

	css, err := themes.Stylesheet(reg)
	if err != nil {
		return nil, fmt.Errorf("generate stylesheet: %w", err)
	}
	if err := themes.LintCSS(css); err != nil {
		return nil, fmt.Errorf("generated stylesheet: %w", err)
	}

	bridge := tailwind.New(reg.Contract(), log)
	cfg, err := tailwind.MarshalConfig(bridge.BuildConfig(themes.BreakpointTokens()))
	if err != nil {
		return nil, fmt.Errorf("build utility config: %w", err)
	}

	sum := sha256.Sum256([]byte(css))
	m.StylesheetSize(len(css))
	m.ColorErrors(len(reg.Diagnostics()))

	return &Server{
		registry:   reg,
		store:      store,
		metrics:    m,
		log:        log,
		stylesheet: css,
		etag:       `"` + hex.EncodeToString(sum[:8]) + `"`,
		tailwind:   cfg,
	}, nil
}

// Health reports liveness.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "themekit",
	})
}

// Stylesheet serves the variables for every mode and preset plus the base
// element styles.
func (s *Server) Stylesheet(c *gin.Context) {
	c.Header("ETag", s.etag)
	c.Header("Cache-Control", "no-cache")
	if c.GetHeader("If-None-Match") == s.etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(s.stylesheet))
}

// TailwindConfig serves the utility framework configuration as JSON.
func (s *Server) TailwindConfig(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", s.tailwind)
}
