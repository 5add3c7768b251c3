// Package config contains runtime configuration for all SyncKairos
// subsystems. Values are loaded from environment variables with defaults
// mirroring the service's contract constants (TTLs, retry budgets, limits).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ServerConfig configures the HTTP/WebSocket surface.
type ServerConfig struct {
	// HTTPPort is the listen port for the API server.
	HTTPPort string

	// RequestTimeout is the per-request deadline. Exceeding it yields 504.
	RequestTimeout time.Duration

	// ShutdownDrain is how long open WebSockets get before the 1001 close
	// on SIGTERM.
	ShutdownDrain time.Duration

	// AllowedOrigins is the WebSocket origin allow list. Empty means only
	// same-host origins are accepted.
	AllowedOrigins []string

	// Limits are the store-backed request quotas.
	Limits RateLimits
}

// RateLimits holds the fixed-window request quotas enforced by the API.
type RateLimits struct {
	// GlobalPerMinute caps all session requests per caller.
	GlobalPerMinute int64

	// SwitchPerSecond caps cycle switches per session.
	SwitchPerSecond int64

	// CreatePerMinute caps session creation per caller.
	CreatePerMinute int64
}

// RedisConfig configures the state store connection.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// OpTimeout bounds every store operation.
	OpTimeout time.Duration

	// SessionTTL is refreshed on every write; reads do not refresh it.
	SessionTTL time.Duration

	// IdempotencyTTL bounds the idempotent-response cache.
	IdempotencyTTL time.Duration
}

// DefaultRedisConfig returns the built-in store defaults.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:           "localhost:6379",
		OpTimeout:      5 * time.Second,
		SessionTTL:     3600 * time.Second,
		IdempotencyTTL: 24 * time.Hour,
	}
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		HTTPPort:       "8080",
		RequestTimeout: 5 * time.Second,
		ShutdownDrain:  15 * time.Second,
		Limits: RateLimits{
			GlobalPerMinute: 100,
			SwitchPerSecond: 10,
			CreatePerMinute: 5,
		},
	}
}

// LoadRedisFromEnv loads RedisConfig from REDIS_* environment variables.
func LoadRedisFromEnv() (RedisConfig, error) {
	cfg := DefaultRedisConfig()
	cfg.Addr = getEnvOrDefault("REDIS_ADDR", cfg.Addr)
	cfg.Password = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.DB = db
	}
	return cfg, nil
}

// LoadServerFromEnv loads ServerConfig from environment variables.
func LoadServerFromEnv() ServerConfig {
	cfg := DefaultServerConfig()
	cfg.HTTPPort = getEnvOrDefault("HTTP_PORT", cfg.HTTPPort)
	if v := os.Getenv("WS_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitAndTrim(v)
	}
	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
