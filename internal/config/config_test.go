package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
	t.Setenv("SECRET", "0123456789abcdef0123")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	cfg := New()

	assert.Equal(t, "/api/v1", cfg.API.Prefix)
	assert.Equal(t, ConsistencyTransactional, cfg.Orders.Consistency)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, 8*time.Hour, cfg.Auth.TokenTTL)
	require.NoError(t, cfg.Validate())
}

func TestNew_FromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("ORDER_CONSISTENCY", ConsistencyCompensating)
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("CACHE_CAPACITY", "not-a-number")

	cfg := New()

	assert.Equal(t, ConsistencyCompensating, cfg.Orders.Consistency)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 1000, cfg.Cache.Capacity, "invalid numbers fall back to default")
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "unknown consistency", modify: func(c *Config) { c.Orders.Consistency = "eventual" }},
		{name: "short secret", modify: func(c *Config) { c.Auth.Secret = "short" }},
		{name: "prefix without slash", modify: func(c *Config) { c.API.Prefix = "api" }},
		{name: "unknown env", modify: func(c *Config) { c.Env = "qa" }},
		{name: "kafka without topic", modify: func(c *Config) {
			c.Kafka.Enabled = true
			c.Kafka.Topic = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			cfg := New()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
