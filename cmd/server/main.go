package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/factoryops/user-admin-api/docs"
	"github.com/factoryops/user-admin-api/internal/api"
	"github.com/factoryops/user-admin-api/internal/core/service"
	mongostore "github.com/factoryops/user-admin-api/internal/infrastructure/db/mongo"
	redisstore "github.com/factoryops/user-admin-api/internal/infrastructure/db/redis"
	"github.com/factoryops/user-admin-api/internal/pkg/config"
	"github.com/factoryops/user-admin-api/pkg/logger"
)

// @title        User Admin API
// @version      1.0
// @description  Admin-gated user provisioning and role assignment.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// Store clients are constructed exactly once and injected; nothing
	// re-initialises them per request.
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	identityRepo := mongostore.NewIdentityRepository(db)
	if err := identityRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	identityService := service.NewIdentityService(identityRepo, redisstore.NewResetTokenStore(rdb), cfg.PublicBaseURL, log)
	profileRepo := mongostore.NewProfileRepository(db)
	if err := service.EnsureBootstrapAdmin(ctx, identityService, profileRepo, cfg.BootstrapAdminEmail, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin failed")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting user admin API")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		log.Fatal().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped gracefully")
}
