package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lqviet/uuidv7"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("UUIDV7_LOG_LEVEL", "debug")
	t.Setenv("UUIDV7_LOG_FORMAT", "json")
	t.Setenv("UUIDV7_OUTPUT", "yaml")
	t.Setenv("UUIDV7_EXHAUSTION_BACKOFF", "250us")
	t.Setenv("UUIDV7_WAIT_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, 250*time.Microsecond, cfg.Backoff)
	assert.Equal(t, 2*time.Second, cfg.WaitTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unparsable duration", "UUIDV7_EXHAUSTION_BACKOFF", "soon"},
		{"zero backoff", "UUIDV7_EXHAUSTION_BACKOFF", "0s"},
		{"negative timeout", "UUIDV7_WAIT_TIMEOUT", "-1s"},
		{"unknown output", "UUIDV7_OUTPUT", "xml"},
		{"unknown log format", "UUIDV7_LOG_FORMAT", "logfmt"},
		{"unknown log level", "UUIDV7_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGeneratorOptions(t *testing.T) {
	cfg := Default()
	cfg.Backoff = 50 * time.Microsecond

	gen := uuidv7.NewGenerator(cfg.GeneratorOptions(zap.NewNop())...)
	id, err := gen.New()
	require.NoError(t, err)
	assert.True(t, uuidv7.IsValid(id))
}
