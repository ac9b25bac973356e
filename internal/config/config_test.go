package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "wordvault.db", cfg.Local.DBPath)
	assert.Equal(t, 3*time.Second, cfg.Sync.OnlineCheckInterval)
	assert.Equal(t, 3*time.Second, cfg.Sync.ProbeTimeout)
	assert.Equal(t, 10, cfg.Sync.MaxAttempts)
	assert.Empty(t, cfg.Session.Token)
}

func TestNewConfig_Env(t *testing.T) {
	t.Setenv("LOCAL_DB_PATH", "/tmp/vault.db")
	t.Setenv("SYNC_ONLINE_CHECK_INTERVAL", "10s")
	t.Setenv("SYNC_MAX_ATTEMPTS", "3")
	t.Setenv("SESSION_JWT_SECRET", "s3cret")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/vault.db", cfg.Local.DBPath)
	assert.Equal(t, 10*time.Second, cfg.Sync.OnlineCheckInterval)
	assert.Equal(t, 3, cfg.Sync.MaxAttempts)
	assert.Equal(t, "s3cret", cfg.Session.JWTSecret)
}

func TestNewConfig_BadDuration(t *testing.T) {
	t.Setenv("SYNC_PROBE_TIMEOUT", "soon")

	_, err := NewConfig()
	require.Error(t, err)
}
