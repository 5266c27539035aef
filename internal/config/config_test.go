package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STORAGE_DRIVER", "WORKSPACE_PERSIST", "WORKSPACE_SYNC_INTERVAL", "SEED_DEMO_DATA",
		"ACTIVITY_LIMIT", "NOTIFY_DURATION", "SERVER_HOST", "SERVER_PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverBolt, cfg.Storage.Driver)
	assert.False(t, cfg.Workspace.Persist)
	assert.True(t, cfg.Workspace.SeedDemo)
	assert.Equal(t, 50, cfg.Activity.Limit)
	assert.Equal(t, 2*time.Second, cfg.Notify.Duration)
	assert.Equal(t, "127.0.0.1:8080", cfg.Address())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("WORKSPACE_PERSIST", "true")
	t.Setenv("WORKSPACE_SYNC_INTERVAL", "45")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ACTIVITY_LIMIT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Workspace.Persist)
	assert.Equal(t, 45*time.Second, cfg.Workspace.SyncInterval)
	assert.Equal(t, 50, cfg.Activity.Limit)
	assert.Equal(t, "127.0.0.1:9090", cfg.Address())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	_, err := Load()
	assert.ErrorContains(t, err, "STORAGE_DRIVER")
}
