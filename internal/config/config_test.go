package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DESK_STORE_BACKEND", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("DESK_STORE_KEY", "")
	t.Setenv("DESK_ISSUE_SWEEP_SECONDS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DeskStoreRedis, cfg.Desk.Backend)
	assert.Equal(t, "employee_tickets", cfg.Desk.StoreKey)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, 5*time.Minute, cfg.Desk.IssueSweepInterval())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DESK_STORE_BACKEND", "MEMORY")
	t.Setenv("DESK_STORE_KEY", "tickets")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")
	t.Setenv("DESK_ISSUE_SWEEP_SECONDS", "-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DeskStoreMemory, cfg.Desk.Backend)
	assert.Equal(t, "tickets", cfg.Desk.StoreKey)
	assert.False(t, cfg.App.SeedDemoData)
	assert.Zero(t, cfg.App.RequestTimeout())
	assert.Zero(t, cfg.Desk.IssueSweepInterval())
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("DESK_STORE_BACKEND", "etcd")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("DESK_STORE_BACKEND", "")
	t.Setenv("REDIS_DB", "zero")

	_, err := Load()
	require.Error(t, err)
}
