package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/peoplehub/hrm-api/internal/api"
	"github.com/peoplehub/hrm-api/internal/infrastructure/config"
	mongodb "github.com/peoplehub/hrm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/peoplehub/hrm-api/internal/infrastructure/db/redis"
	"github.com/peoplehub/hrm-api/pkg/logger"
)

// @title        HRM API
// @version      1.0
// @description  HR record-keeping backend: departments, job roles, employees and users behind JWT auth.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		if cfg.Env != "development" {
			log.Fatal().Msg("JWT_SECRET must be set outside development")
		}
		// Dev-only throwaway secret; tokens do not survive a restart.
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			log.Fatal().Err(err).Msg("failed to generate dev JWT secret")
		}
		jwtSecret = hex.EncodeToString(buf)
		log.Warn().Msg("JWT_SECRET not set, using a random development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		// The cache is an optimisation; run without it rather than refuse to start.
		log.Warn().Err(err).Msg("Redis unavailable, entity cache disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	e := api.NewRouter(db, rdb, jwtSecret, cfg.TokenTTL(), log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting HTTP server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
