package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "memory", cfg.CacheBackend)
	assert.Equal(t, 10*time.Second, cfg.DataSourceTimeout)
	assert.Equal(t, time.Hour, cfg.AssessmentCacheTTL)
	assert.True(t, cfg.AllowSyntheticFallback)
	assert.Equal(t, 30.0, cfg.SnapRadiusKm)
	assert.Equal(t, []string{"risk.critical", "datasource.fallback_used"}, cfg.WebhookEventTypes)
	assert.Empty(t, cfg.APIKeys)
	assert.Equal(t, 1024, cfg.EventQueueSize)
	assert.Equal(t, 5*time.Second, cfg.EventPublishTimeout)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("DATA_SOURCE_TIMEOUT", "2s")
	t.Setenv("ALLOW_SYNTHETIC_FALLBACK", "false")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("API_KEYS", " key1 ,key2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "redis", cfg.CacheBackend)
	assert.Equal(t, 2*time.Second, cfg.DataSourceTimeout)
	assert.False(t, cfg.AllowSyntheticFallback)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"key1", "key2"}, cfg.APIKeys)
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "timeout too short", env: map[string]string{"DATA_SOURCE_TIMEOUT": "500ms"}},
		{name: "timeout too long", env: map[string]string{"DATA_SOURCE_TIMEOUT": "2m"}},
		{name: "unknown cache backend", env: map[string]string{"CACHE_BACKEND": "memcached"}},
		{name: "redis backend without address", env: map[string]string{"CACHE_BACKEND": "redis"}},
		{name: "zero event queue", env: map[string]string{"EVENT_QUEUE_SIZE": "0"}},
		{name: "zero retries", env: map[string]string{"WEBHOOK_MAX_RETRIES": "0"}},
		{name: "bad log format", env: map[string]string{"LOG_FORMAT": "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
