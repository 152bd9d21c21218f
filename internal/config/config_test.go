package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.WeatherBaseURL)
	assert.Equal(t, "https://api.open-elevation.com/api/v1/lookup", cfg.ElevationBaseURL)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 1000, cfg.ElevationCacheSize)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 12*time.Hour, cfg.RedisCacheTTL)
	assert.False(t, cfg.KafkaEnabled)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "parametric-trigger-breaches", cfg.KafkaTriggerTopic)
	assert.Equal(t, "approved-claims", cfg.KafkaClaimTopic)
	assert.Empty(t, cfg.RosterPath)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("WEATHER_BASE_URL", "http://localhost:8081/forecast")
	t.Setenv("ELEVATION_BASE_URL", "http://localhost:8082/lookup")
	t.Setenv("PROVIDER_TIMEOUT", "3s")
	t.Setenv("ELEVATION_CACHE_SIZE", "250")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_CACHE_TTL", "1h")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_TRIGGER_TOPIC", "breaches")
	t.Setenv("KAFKA_CLAIM_TOPIC", "claims")
	t.Setenv("ROSTER_PATH", "/etc/riskd/roster.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8081/forecast", cfg.WeatherBaseURL)
	assert.Equal(t, "http://localhost:8082/lookup", cfg.ElevationBaseURL)
	assert.Equal(t, 3*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 250, cfg.ElevationCacheSize)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.RedisCacheTTL)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "breaches", cfg.KafkaTriggerTopic)
	assert.Equal(t, "claims", cfg.KafkaClaimTopic)
	assert.Equal(t, "/etc/riskd/roster.yaml", cfg.RosterPath)
}

func TestLoad_KafkaDisabledByFlag(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092")
	t.Setenv("KAFKA_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KafkaEnabled)
}

func TestLoad_KafkaEnabledWithoutBrokers(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}

func TestLoad_InvalidDurations(t *testing.T) {
	for _, key := range []string{"SHUTDOWN_TIMEOUT", "PROVIDER_TIMEOUT", "REDIS_CACHE_TTL"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "not-a-duration")
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
