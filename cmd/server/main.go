// Package main provides the entry point for the HTTP server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	authRouter "github.com/fablite/fablite/internal/auth/router"
	"github.com/fablite/fablite/internal/auth/token"
	appConfig "github.com/fablite/fablite/internal/config"
	"github.com/fablite/fablite/internal/database/database"
	"github.com/fablite/fablite/internal/database/migrate"
	"github.com/fablite/fablite/internal/health"
	"github.com/fablite/fablite/internal/middleware"
	teamRouter "github.com/fablite/fablite/internal/team/router"
	"github.com/fablite/fablite/pkg/logger"
)

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	l, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = l.Sync()
	}()

	db, err := database.New()
	if err != nil {
		l.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			l.Errorw("failed to close database", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		l.Fatalw("failed to apply migrations", "error", err)
	}

	tokens := token.NewManager(cfg.Auth.Secret, cfg.Auth.AccessTokenTTL)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(l))
	r.Use(middleware.Logger(l))

	healthHandler := health.New(db, l)
	r.GET("/health", healthHandler.Check)

	authRouter.RegisterRoutes(r, db, tokens, l)
	teamRouter.RegisterRoutes(r, db, tokens, l, cfg.InviteBaseURL)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	l.Infow("starting server", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		l.Fatalw("server stopped", "error", err)
	}
}
