package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themekit/internal/auth"
	"github.com/thatcatcamp/themekit/internal/config"
	"github.com/thatcatcamp/themekit/internal/handlers"
	"github.com/thatcatcamp/themekit/internal/metrics"
	"github.com/thatcatcamp/themekit/internal/middleware"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Serve the stylesheet, utility config and live theme settings over HTTP",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := initConfig(); err != nil {
			fail("%v", err)
		}
		log := newLogger()

		store, _, err := openStore(ctx, log)
		if err != nil {
			fail("%v", err)
		}
		reg, err := loadRegistry(log)
		if err != nil {
			fail("%v", err)
		}

		srv, err := handlers.New(reg, store, metrics.New(), log)
		if err != nil {
			fail("%v", err)
		}

		if log.GetLevel() > zerolog.DebugLevel {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.New()
		r.Use(gin.Recovery())

		limiter := middleware.NewRateLimiter(config.GetInt("ratelimit.writes_per_minute"), time.Minute)
		defer limiter.Close()
		srv.Register(r, limiter)

		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = config.GetString("server.http_port")
		}
		httpServer := &http.Server{
			Addr:              ":" + port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		if !auth.Enabled() {
			log.Warn().Msg("no auth.jwt_secret configured, settings writes are unprotected")
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", httpServer.Addr).Msg("starting HTTP server")
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				fail("server: %v", err)
			}
		case <-ctx.Done():
		}

		timeout := config.GetDuration("server.shutdown_timeout")
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		log.Info().Msg("shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serverStartCmd.Flags().String("port", "", "HTTP port (overrides server.http_port)")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
