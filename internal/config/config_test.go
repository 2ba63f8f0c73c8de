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

	assert.Equal(t, "http://localhost:8529", cfg.Endpoint)
	assert.Equal(t, "_system", cfg.Database)
	assert.Equal(t, "root", cfg.Username)
	assert.Empty(t, cfg.Password)
	assert.False(t, cfg.ReadOnly)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 100, cfg.DefaultBatchSize)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ARANGO_ENDPOINT", "http://arango.internal:8529")
	t.Setenv("ARANGO_DATABASE", "orders")
	t.Setenv("ARANGO_USERNAME", "reader")
	t.Setenv("ARANGO_PASSWORD", "secret")
	t.Setenv("ARANGO_READ_ONLY", "true")
	t.Setenv("ARANGO_TIMEOUT_SECONDS", "5")
	t.Setenv("ARANGO_DEFAULT_BATCH_SIZE", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://arango.internal:8529", cfg.Endpoint)
	assert.Equal(t, "orders", cfg.Database)
	assert.Equal(t, "reader", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
	assert.True(t, cfg.ReadOnly)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 25, cfg.DefaultBatchSize)
}

func TestLoad_RejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"read only not a bool", "ARANGO_READ_ONLY", "maybe"},
		{"timeout not a number", "ARANGO_TIMEOUT_SECONDS", "soon"},
		{"timeout negative", "ARANGO_TIMEOUT_SECONDS", "-1"},
		{"batch size not a number", "ARANGO_DEFAULT_BATCH_SIZE", "many"},
		{"batch size zero", "ARANGO_DEFAULT_BATCH_SIZE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
