package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "savings", cfg.Database.Database)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "analytics-events", cfg.Kafka.Topic)
	assert.Equal(t, "US", cfg.Amazon.Region)
	assert.Empty(t, cfg.Amazon.APIKey)
	assert.Empty(t, cfg.Walmart.APIKey)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9999")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("CACHE_REDIS_ADDR", "redis:6379")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("AMAZON_API_KEY", "ak")
	t.Setenv("AMAZON_API_SECRET", "as")
	t.Setenv("AMAZON_AFFILIATE_TAG", "patriot-20")
	t.Setenv("WALMART_API_KEY", "wk")
	t.Setenv("WALMART_AFFILIATE_ID", "camp-42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "ak", cfg.Amazon.APIKey)
	assert.Equal(t, "patriot-20", cfg.Amazon.AffiliateTag)
	assert.Equal(t, "camp-42", cfg.Walmart.AffiliateID)
}
