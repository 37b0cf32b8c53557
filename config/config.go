// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Session store backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendFirebase = "firebase"
)

type Config struct {
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`

	// Manager notifications are skipped when unset.
	ManagerChatID int64 `envconfig:"MANAGER_CHAT_ID"`

	// Health endpoint port (Render keep-alive).
	Port string `envconfig:"PORT" default:"10000"`

	SessionBackend string        `envconfig:"SESSION_BACKEND" default:"memory"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPass string `envconfig:"REDIS_PASS"`

	FirebaseCredentialsPath string `envconfig:"FIREBASE_SERVICE_ACCOUNT_KEY_PATH"`
	FirebaseDatabaseURL     string `envconfig:"FIREBASE_DATABASE_URL"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"LOG_PRETTY"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch cfg.SessionBackend {
	case BackendMemory, BackendRedis:
	case BackendFirebase:
		if cfg.FirebaseCredentialsPath == "" || cfg.FirebaseDatabaseURL == "" {
			return nil, fmt.Errorf("firebase backend requires FIREBASE_SERVICE_ACCOUNT_KEY_PATH and FIREBASE_DATABASE_URL")
		}
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}

	return &cfg, nil
}
