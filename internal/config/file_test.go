// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_YAML(t *testing.T) {
	path := writeFile(t, "timeline.yaml", `
app:
  name: timeline-yaml
  log_level: warn
security:
  secret_key: from-file
  access_token_expire_minutes: 60
storage:
  backend: firestore
  db:
    pool_size: 7
    conn_max_lifetime: 10m
  firestore:
    service_account_path: /secrets/sa.json
cache:
  tenant_ttl_seconds: 30
server:
  http_address: ":7000"
  request_timeout_seconds: 15
  allowed_origins:
    - https://app.example
workers:
  backend_probe_schedule: "@every 5m"
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "timeline-yaml", cfg.App.Name)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "from-file", cfg.Security.SecretKey.Reveal())
	assert.Equal(t, time.Hour, cfg.Security.AccessTokenTTL.Duration())
	assert.Equal(t, BackendFirestore, cfg.Storage.Backend)
	assert.Equal(t, 7, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, 10*time.Minute, cfg.Storage.DB.ConnMaxLifetime)
	assert.Equal(t, "/secrets/sa.json", cfg.Storage.Firestore.ServiceAccountPath)
	assert.Equal(t, 30*time.Second, cfg.Cache.TenantTTL.Duration())
	assert.Equal(t, ":7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout.Duration())
	assert.Equal(t, []string{"https://app.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "@every 5m", cfg.Workers.BackendProbeSchedule)
}

func TestParseFile_JSON(t *testing.T) {
	path := writeFile(t, "timeline.json", `{
		"storage": {"backend": "postgres", "db": {"url": "postgres://file/db", "conn_max_lifetime": "5m"}},
		"server": {"max_upload_size": 2048}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, "postgres://file/db", cfg.Storage.DB.URL.Reveal())
	assert.Equal(t, 5*time.Minute, cfg.Storage.DB.ConnMaxLifetime)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := parseFile(writeFile(t, "timeline.toml", "a = 1"))
		assert.ErrorIs(t, err, ErrUnsupportedConfigFile)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseFile(writeFile(t, "timeline.json", "{"))
		require.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := parseFile(writeFile(t, "timeline.yaml", "storage:\n  db:\n    conn_max_lifetime: soon\n"))
		require.Error(t, err)
	})
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))
	assert.Equal(t, Duration(90*time.Second), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, Duration(time.Second), d)

	assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
}
