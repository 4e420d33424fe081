package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNewConfigDefaults verifies the documented defaults.
func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, ":5000", cfg.ListenAddr)
	assert.Equal(t, ":8080", cfg.AdminAddr)
	assert.Equal(t, "chat_log.txt", cfg.HistoryFile)
	assert.Equal(t, 120*time.Second, cfg.LivenessInterval)
	assert.Equal(t, 4096, cfg.MaxLineBytes)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
}

// TestNewConfigFromEnv verifies environment overrides and fallback to
// defaults on unset or invalid values.
func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":6000")
	t.Setenv("ADMIN_ADDR", ":6060")
	t.Setenv("HISTORY_FILE", "relay.log")
	t.Setenv("LIVENESS_INTERVAL", "30")
	t.Setenv("TRIGGERS_FILE", "triggers.yaml")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("MAX_LINE_BYTES", "1024")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("RATE_LIMIT_PER_SEC", "2.5")

	cfg := NewConfigFromEnv()

	assert.Equal(t, ":6000", cfg.ListenAddr)
	assert.Equal(t, ":6060", cfg.AdminAddr)
	assert.Equal(t, "relay.log", cfg.HistoryFile)
	assert.Equal(t, 30*time.Second, cfg.LivenessInterval)
	assert.Equal(t, "triggers.yaml", cfg.TriggersFile)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 1024, cfg.MaxLineBytes)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, 2.5, cfg.RateLimit.PerSecond)
}

// TestNewConfigFromEnvInvalidValues verifies garbage values fall back to
// defaults instead of failing.
func TestNewConfigFromEnvInvalidValues(t *testing.T) {
	t.Setenv("LIVENESS_INTERVAL", "soon")
	t.Setenv("MAX_LINE_BYTES", "-5")
	t.Setenv("RATE_LIMIT_BURST", "lots")

	cfg := NewConfigFromEnv()

	assert.Equal(t, 120*time.Second, cfg.LivenessInterval)
	assert.Equal(t, 4096, cfg.MaxLineBytes)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
}

// TestSanitizeFillsZeroValues verifies sanitize restores every zero field.
func TestSanitizeFillsZeroValues(t *testing.T) {
	cfg := Config{}.sanitize()

	assert.Equal(t, ":5000", cfg.ListenAddr)
	assert.Equal(t, ":8080", cfg.AdminAddr)
	assert.Equal(t, "chat_log.txt", cfg.HistoryFile)
	assert.Equal(t, 120*time.Second, cfg.LivenessInterval)
	assert.Equal(t, 4096, cfg.MaxLineBytes)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, float64(5), cfg.RateLimit.PerSecond)
}

// TestNormalizeOrigins verifies origin normalization and the wildcard.
func TestNormalizeOrigins(t *testing.T) {
	origins, allowAll := normalizeOrigins([]string{
		" HTTP://Example.COM ",
		"not a url",
		"",
		"http://localhost:8080",
	})
	assert.False(t, allowAll)
	assert.Contains(t, origins, "http://example.com")
	assert.Contains(t, origins, "http://localhost:8080")
	assert.Len(t, origins, 2)

	_, allowAll = normalizeOrigins([]string{"*"})
	assert.True(t, allowAll)
}
