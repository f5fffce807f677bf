package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configWithTimeouts(write, request time.Duration) *Config {
	cfg := &Config{LLM: &LLMConfig{RequestTimeout: request}}
	cfg.HTTP.Timeouts.WriteTimeout = write

	return cfg
}

func TestNormalizeTimeouts_DefaultsBelowWriteTimeout(t *testing.T) {
	cfg := configWithTimeouts(90*time.Second, 0)

	require.NoError(t, cfg.normalizeTimeouts())
	assert.Equal(t, 85*time.Second, cfg.LLM.RequestTimeout)
}

func TestNormalizeTimeouts_RejectsBudgetPastWriteTimeout(t *testing.T) {
	cfg := configWithTimeouts(90*time.Second, 120*time.Second)

	err := cfg.normalizeTimeouts()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.requestTimeout")
}

func TestNormalizeTimeouts_NoWriteTimeout(t *testing.T) {
	cfg := configWithTimeouts(0, 30*time.Second)

	require.NoError(t, cfg.normalizeTimeouts())
	assert.Equal(t, 30*time.Second, cfg.LLM.RequestTimeout)
}
