package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.TelegramBotToken)
	assert.Equal(t, int64(0), cfg.ManagerChatID)
	assert.Equal(t, "10000", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.SessionBackend)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRequiresToken(t *testing.T) {
	// t.Setenv registers the restore; unset so the variable is truly absent.
	t.Setenv("TELEGRAM_BOT_TOKEN", "x")
	os.Unsetenv("TELEGRAM_BOT_TOKEN")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRedisBackend(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("MANAGER_CHAT_ID", "123456789")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.SessionBackend)
	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, int64(123456789), cfg.ManagerChatID)
}

func TestLoadFirebaseBackendRequiresCredentials(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("SESSION_BACKEND", "firebase")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("FIREBASE_SERVICE_ACCOUNT_KEY_PATH", "/tmp/creds.json")
	t.Setenv("FIREBASE_DATABASE_URL", "https://example.firebaseio.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendFirebase, cfg.SessionBackend)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("SESSION_BACKEND", "cassandra")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown session backend")
}
