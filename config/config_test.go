package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	for _, key := range []string{"PORT", "EVENT_CAPACITY", "SEND_CONCURRENCY", "REQUEST_TIMEOUT", "EVENT_TIMEZONE", "SMS_PROVIDER", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 0, cfg.EventCapacity)
	assert.Equal(t, 8, cfg.SendConcurrency)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "America/New_York", cfg.EventLocation.String())
	assert.Equal(t, "noop", cfg.SMS.Provider)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("EVENT_CAPACITY", "25")
	t.Setenv("SEND_CONCURRENCY", "3")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("EVENT_TIMEZONE", "UTC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SMS_PROVIDER", "twilio")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 25, cfg.EventCapacity)
	assert.Equal(t, 3, cfg.SendConcurrency)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.UTC, cfg.EventLocation)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "twilio", cfg.SMS.Provider)
	assert.True(t, cfg.Email.InsecureSkipVerify)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"capacity not a number", "EVENT_CAPACITY", "ten"},
		{"zero concurrency", "SEND_CONCURRENCY", "0"},
		{"bad duration", "REQUEST_TIMEOUT", "soon"},
		{"unknown zone", "EVENT_TIMEZONE", "Mars/Olympus"},
		{"bad bool", "SES_INSECURE_SKIP_VERIFY", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "production")
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "development", "warn")
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "production", "").Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}
