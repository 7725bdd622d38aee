package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Egor213/LogiBoard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
app:
  name: logiboard
  version: 0.1.0
prometheus:
  port: "9090"
upstream:
  base_url: http://localhost:8000
  timeout: 3s
polling:
  alerts_interval: 2s
kafka:
  brokers: ["localhost:9092"]
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "logiboard", cfg.App.Name)
	assert.Equal(t, "http://localhost:8000", cfg.Upstream.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Polling.AlertsInterval)
	assert.Equal(t, 10*time.Second, cfg.Polling.LogsInterval)
	assert.Equal(t, 100, cfg.Polling.RecentLimit)
	assert.Equal(t, 50, cfg.Polling.FilterLimit)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 2*time.Minute, cfg.Polling.IdleTimeout)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "notifications", cfg.Kafka.Topic)
	assert.False(t, cfg.PG.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://logs.internal:8000")
	t.Setenv("POLL_RECENT_LIMIT", "20")

	cfg, err := config.Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "http://logs.internal:8000", cfg.Upstream.BaseURL)
	assert.Equal(t, 20, cfg.Polling.RecentLimit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
