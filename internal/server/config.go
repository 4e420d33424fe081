package server

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig defines the parameters for per-session message rate limiting.
type RateLimitConfig struct {
	Burst     int
	PerSecond float64
}

// Config holds the relay server configuration, covering both the TCP chat
// listener and the admin HTTP surface.
type Config struct {
	ListenAddr       string
	AdminAddr        string
	HistoryFile      string
	LivenessInterval time.Duration
	TriggersFile     string
	AllowedOrigins   []string
	MaxLineBytes     int
	RateLimit        RateLimitConfig
}

func defaultConfig() Config {
	return Config{
		ListenAddr:       ":5000",
		AdminAddr:        ":8080",
		HistoryFile:      "chat_log.txt",
		LivenessInterval: 120 * time.Second,
		AllowedOrigins: []string{
			"http://localhost:8080",
		},
		MaxLineBytes: 4096,
		RateLimit: RateLimitConfig{
			Burst:     5,
			PerSecond: 5,
		},
	}
}

func (c Config) sanitize() Config {
	if c.ListenAddr == "" {
		c.ListenAddr = ":5000"
	}
	if c.AdminAddr == "" {
		c.AdminAddr = ":8080"
	}
	if c.HistoryFile == "" {
		c.HistoryFile = "chat_log.txt"
	}
	if c.LivenessInterval <= 0 {
		c.LivenessInterval = 120 * time.Second
	}
	if c.MaxLineBytes <= 0 {
		c.MaxLineBytes = 4096
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 5
	}
	if c.RateLimit.PerSecond <= 0 {
		c.RateLimit.PerSecond = 5
	}
	return c
}

// NewConfig creates a Config instance populated with default values for all settings.
func NewConfig() *Config {
	cfg := defaultConfig()
	return &cfg
}

// NewConfigFromEnv creates a Config instance from environment variables.
// Falls back to default values if environment variables are not set.
func NewConfigFromEnv() *Config {
	cfg := defaultConfig()

	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}

	if addr := os.Getenv("ADMIN_ADDR"); addr != "" {
		cfg.AdminAddr = addr
	}

	if path := os.Getenv("HISTORY_FILE"); path != "" {
		cfg.HistoryFile = path
	}

	if interval := os.Getenv("LIVENESS_INTERVAL"); interval != "" {
		cfg.LivenessInterval = parseSeconds(interval, cfg.LivenessInterval)
	}

	if path := os.Getenv("TRIGGERS_FILE"); path != "" {
		cfg.TriggersFile = path
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = parseOrigins(origins)
	}

	if maxLine := os.Getenv("MAX_LINE_BYTES"); maxLine != "" {
		cfg.MaxLineBytes = parseIntValue(maxLine, cfg.MaxLineBytes)
	}

	if burst := os.Getenv("RATE_LIMIT_BURST"); burst != "" {
		cfg.RateLimit.Burst = parseIntValue(burst, cfg.RateLimit.Burst)
	}

	if perSec := os.Getenv("RATE_LIMIT_PER_SEC"); perSec != "" {
		cfg.RateLimit.PerSecond = parseFloatValue(perSec, cfg.RateLimit.PerSecond)
	}

	return &cfg
}

func parseOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseIntValue(value string, defaultValue int) int {
	if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
		return parsed
	}
	return defaultValue
}

func parseFloatValue(value string, defaultValue float64) float64 {
	if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed > 0 {
		return parsed
	}
	return defaultValue
}

func parseSeconds(value string, defaultValue time.Duration) time.Duration {
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
