// Package main is the entry point for the zapdeals console HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/zapdeals/console/internal/cache"
	"github.com/zapdeals/console/internal/config"
	"github.com/zapdeals/console/internal/handler"
	"github.com/zapdeals/console/internal/middleware"
	"github.com/zapdeals/console/internal/service"
	"github.com/zapdeals/console/internal/session"
	"github.com/zapdeals/console/internal/upstream"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			_ = syncErr
		}
	}()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// Cache loss only costs the stale fallback; start anyway.
		logger.Warn("Redis unreachable, snapshot fallback disabled", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	api := upstream.NewClient(&cfg.Upstream, logger)
	snapshots := cache.NewSnapshots(redisClient, logger, time.Duration(cfg.Redis.SnapshotTTL)*time.Second)
	registry := session.NewRegistry(api, logger, cfg.Sessions.MaxSessions, cfg.Polling.SessionPollInterval())

	svc := service.NewService(cfg, api, registry, snapshots, logger)

	h := handler.NewHandler(svc, logger)
	router := setupRouter(h)

	middlewareConfig := &middleware.Config{
		Logger: logger,
		CORS: &middleware.CORSConfig{
			AllowedOrigins:   cfg.Middleware.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           86400,
		},
		RateLimit:      rate.Limit(cfg.Middleware.RateLimit),
		RateLimitBurst: cfg.Middleware.RateLimitBurst,
		RequestTimeout: 30 * time.Second,
	}

	finalHandler := middleware.Chain(middlewareConfig)(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      finalHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Discover existing sessions before the first poll tick.
	if err := svc.Session.Sync(ctx); err != nil {
		logger.Warn("Initial session sync failed, polling will retry", zap.Error(err))
	}

	if err := svc.Session.StartPolling(ctx); err != nil {
		logger.Error("Failed to start session poller", zap.Error(err))
	}
	if err := svc.Dispatch.Start(ctx); err != nil {
		logger.Error("Failed to start dispatch queue refresher", zap.Error(err))
	}

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if svc.Session.PollingActive() {
		if err := svc.Session.StopPolling(); err != nil {
			logger.Error("Failed to stop session poller", zap.Error(err))
		}
	}
	if svc.Dispatch.RefresherActive() {
		if err := svc.Dispatch.Stop(); err != nil {
			logger.Error("Failed to stop dispatch queue refresher", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
