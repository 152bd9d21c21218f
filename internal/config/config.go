package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Upstream data provider configuration.
	WeatherBaseURL   string
	ElevationBaseURL string
	ProviderTimeout  time.Duration

	// Elevation cache configuration. RedisAddr switches the cache backend
	// from the in-process LRU to Redis.
	ElevationCacheSize int
	RedisAddr          string
	RedisCacheTTL      time.Duration

	// Kafka event publishing (feature-flagged via KAFKA_ENABLED / KAFKA_BROKERS).
	KafkaBrokers      []string
	KafkaEnabled      bool
	KafkaTriggerTopic string
	KafkaClaimTopic   string

	// RosterPath points at a YAML roster file; empty means the built-in roster.
	RosterPath string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	providerTimeout, err := parseDuration("PROVIDER_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	redisTTL, err := parseDuration("REDIS_CACHE_TTL", "12h")
	if err != nil {
		return nil, err
	}

	brokers := parseBrokers(os.Getenv("KAFKA_BROKERS"))
	kafkaEnabled := len(brokers) > 0
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		WeatherBaseURL:   envOrDefault("WEATHER_BASE_URL", "https://api.open-meteo.com/v1/forecast"),
		ElevationBaseURL: envOrDefault("ELEVATION_BASE_URL", "https://api.open-elevation.com/api/v1/lookup"),
		ProviderTimeout:  providerTimeout,

		ElevationCacheSize: parsePositiveInt("ELEVATION_CACHE_SIZE", 1000),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisCacheTTL:      redisTTL,

		KafkaBrokers:      brokers,
		KafkaEnabled:      kafkaEnabled,
		KafkaTriggerTopic: envOrDefault("KAFKA_TRIGGER_TOPIC", "parametric-trigger-breaches"),
		KafkaClaimTopic:   envOrDefault("KAFKA_CLAIM_TOPIC", "approved-claims"),

		RosterPath: os.Getenv("ROSTER_PATH"),
	}

	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.WeatherBaseURL == "" {
		return nil, errors.New("WEATHER_BASE_URL is required")
	}
	if cfg.ElevationBaseURL == "" {
		return nil, errors.New("ELEVATION_BASE_URL is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func parseBrokers(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}
