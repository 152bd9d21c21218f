package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/couchcryptid/climate-risk-service/internal/adapter/cache"
	httpadapter "github.com/couchcryptid/climate-risk-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/climate-risk-service/internal/adapter/kafka"
	"github.com/couchcryptid/climate-risk-service/internal/adapter/openelevation"
	"github.com/couchcryptid/climate-risk-service/internal/adapter/openmeteo"
	"github.com/couchcryptid/climate-risk-service/internal/config"
	"github.com/couchcryptid/climate-risk-service/internal/domain"
	"github.com/couchcryptid/climate-risk-service/internal/observability"
	"github.com/couchcryptid/climate-risk-service/internal/service"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	roster, err := config.LoadRoster(cfg.RosterPath)
	if err != nil {
		logger.Error("failed to load roster", "error", err)
		os.Exit(1)
	}
	logger.Info("roster loaded", "locations", len(roster))

	signals := openmeteo.NewClient(cfg.WeatherBaseURL, cfg.ProviderTimeout, metrics, logger)

	var elevations domain.ElevationProvider = openelevation.NewClient(cfg.ElevationBaseURL, cfg.ProviderTimeout, metrics, logger)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		elevations = cache.NewRedisElevationProvider(elevations, client, cfg.RedisCacheTTL, metrics, logger)
		logger.Info("redis elevation cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.RedisCacheTTL)
	} else {
		elevations = cache.NewCachedElevationProvider(elevations, cfg.ElevationCacheSize, metrics)
		logger.Info("in-memory elevation cache enabled", "size", cfg.ElevationCacheSize)
	}

	// Event publishing is feature-flagged via KAFKA_ENABLED / KAFKA_BROKERS.
	var publisher service.EventPublisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPublisher
		logger.Info("kafka publishing enabled",
			"brokers", cfg.KafkaBrokers,
			"trigger_topic", cfg.KafkaTriggerTopic,
			"claim_topic", cfg.KafkaClaimTopic)
	} else {
		logger.Info("kafka publishing disabled")
	}

	risk := service.NewRiskService(signals, elevations, logger, metrics)
	triggers := service.NewTriggerService(signals, publisher, logger, metrics)
	claims := service.NewClaimService(signals, publisher, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, risk, triggers, claims, roster, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
