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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/tair/property-browser/internal/browser/usecase/command"
	"github.com/tair/property-browser/internal/config"
	"github.com/tair/property-browser/internal/events"
	"github.com/tair/property-browser/internal/ops"
	"github.com/tair/property-browser/internal/session"
	"github.com/tair/property-browser/internal/web"
	"github.com/tair/property-browser/pkg/logger"
	"github.com/tair/property-browser/pkg/tracing"
)

const serviceVersion = "1.0.0"

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Strs("api_base", cfg.API.BaseURLs).
		Msg("Starting property browser")

	// Initialize tracer
	tp, err := tracing.InitTracer(tracing.Config{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: serviceVersion,
		JaegerEndpoint: cfg.Tracing.JaegerEndpoint,
		Enabled:        cfg.Tracing.Enabled,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Redis backs sessions and the like rate limiter; without it sessions live in memory
	redisClient, store := connectSessionStore(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Kafka is optional
	var publisher command.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		p, err := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable - like events disabled")
		} else {
			publisher = p
			defer p.Close()
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize server with Wire DI
	server, err := web.InitializeServer(cfg, store, redisClient, publisher, reg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	opsServer := ops.NewServer(":"+cfg.OpsPort, reg, server.Health)
	go func() {
		logger.Logger.Info().Str("addr", opsServer.Addr).Msg("Ops server listening (/metrics, /swagger/, /health/ready)")
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start ops server")
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Logger.Info().Str("addr", addr).Msg("Property browser listening")
		if err := server.App.Listen(addr); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down property browser...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.App.ShutdownWithContext(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := opsServer.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Ops server forced to shutdown")
	}

	logger.Logger.Info().Msg("Property browser stopped")
}

func connectSessionStore(cfg *config.Config) (*redis.Client, session.Store) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("redis_addr", cfg.Redis.Addr).
			Msg("Failed to connect to Redis - using in-memory sessions, rate limiting disabled")
		_ = redisClient.Close()
		return nil, session.NewMemoryStore()
	}

	logger.Logger.Info().
		Str("redis_addr", cfg.Redis.Addr).
		Msg("Connected to Redis for sessions and rate limiting")
	return redisClient, session.NewRedisStore(redisClient, cfg.Session.TTL)
}
