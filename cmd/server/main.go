package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/core-platform/launchpad/internal/api"
	"github.com/core-platform/launchpad/internal/core/service"
	"github.com/core-platform/launchpad/internal/infrastructure/config"
	"github.com/core-platform/launchpad/internal/infrastructure/db/postgres"
	redisinfra "github.com/core-platform/launchpad/internal/infrastructure/db/redis"
	"github.com/core-platform/launchpad/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Launchpad API
// @version      1.0
// @description  Internal app launcher platform backend.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer rdb.Close()

	userRepo := postgres.NewUserRepository(db)
	appRepo := postgres.NewAppRepository(db)
	auditService := service.NewAuditService(postgres.NewAuditRepository(db), log)
	if err := postgres.Seed(ctx, userRepo, appRepo, auditService, cfg.AdminUsername, cfg.AdminPassword, log); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	e := api.NewRouter(cfg, db, rdb, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
