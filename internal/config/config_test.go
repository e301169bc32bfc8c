package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapdeals/console/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"

upstream:
  base_url: "http://dispatch:3001"
  timeout: 20

polling:
  session_interval_seconds: 4
  dispatch_interval_seconds: 7

sessions:
  max_sessions: 3
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://dispatch:3001", cfg.Upstream.BaseURL)
	assert.Equal(t, 20, cfg.Upstream.Timeout)
	assert.Equal(t, 3, cfg.Sessions.MaxSessions)
	assert.Equal(t, 4*time.Second, cfg.Polling.SessionPollInterval())
	assert.Equal(t, 7*time.Second, cfg.Polling.DispatchPollInterval())
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
upstream:
  base_url: "http://dispatch:3001"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Upstream.Timeout)
	assert.Equal(t, uint32(3), cfg.Upstream.CircuitBreaker.MaxRequests)
	assert.Equal(t, 2, cfg.Sessions.MaxSessions)
	assert.Equal(t, 3*time.Second, cfg.Polling.SessionPollInterval())
	assert.Equal(t, 5*time.Second, cfg.Polling.DispatchPollInterval())
	assert.Equal(t, 300, cfg.Redis.SnapshotTTL)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
