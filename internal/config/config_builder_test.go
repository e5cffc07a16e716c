// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// validPostgresLayer is the smallest layer that passes validation on top of
// the defaults.
func validPostgresLayer() *StructuredConfig {
	return &StructuredConfig{
		Security: Security{
			SecretKey:      testSecretKey,
			EncryptionSalt: "salt",
		},
		Storage: Storage{
			Backend: BackendPostgres,
			DB:      DB{URL: "postgres://localhost/timeline"},
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and no layers.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers())
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a config without
// required values is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingSecretKey)
	assert.ErrorIs(t, err, ErrMissingBackend)
}

// TestBuild_LayerPriority verifies defaults < file < .env < env < flags.
func TestBuild_LayerPriority(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.file = &StructuredConfig{App: App{Name: "file", Version: "file"}, Server: Server{HTTPAddress: ":1"}}
	b.dotEnv = &StructuredConfig{App: App{Name: "dotenv"}, Server: Server{HTTPAddress: ":2"}}
	b.env = validPostgresLayer()
	b.env.Server.HTTPAddress = ":3"
	b.flags = &StructuredConfig{Server: Server{HTTPAddress: ":4"}}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, ":4", cfg.Server.HTTPAddress)
	assert.Equal(t, "dotenv", cfg.App.Name)
	assert.Equal(t, "file", cfg.App.Version)
	assert.Equal(t, DefaultTenantHeader, cfg.Server.TenantHeader)
}

// TestBuild_ZeroValuesDoNotOverride verifies that unset fields of a higher
// layer keep lower-layer values.
func TestBuild_ZeroValuesDoNotOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.env = validPostgresLayer()
	b.flags = &StructuredConfig{}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAccessTokenTTL, cfg.Security.AccessTokenTTL.Duration())
	assert.Equal(t, DefaultAllowedOrigins, cfg.Server.AllowedOrigins)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

// TestBuild_LogLevelFollowsDebug verifies the derived log level.
func TestBuild_LogLevelFollowsDebug(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.env = validPostgresLayer()
	b.env.App.Debug = true

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)

	b.env.App.LogLevel = "error"
	cfg, err = b.build()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.App.LogLevel)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_UsesHighestPriorityPath verifies that the flag path wins over
// the env path.
func TestWithFile_UsesHighestPriorityPath(t *testing.T) {
	flagPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"name": "from-flag-file"}})

	b := newConfigBuilder().withDefaults()
	b.env = &StructuredConfig{FilePath: filepath.Join(t.TempDir(), "absent.json")}
	b.flags = &StructuredConfig{FilePath: flagPath}
	b.withFile()

	require.NoError(t, b.err)
	require.NotNil(t, b.file)
	assert.Equal(t, "from-flag-file", b.file.App.Name)
}

// TestWithFile_NoPath verifies that no file layer is added without a path.
func TestWithFile_NoPath(t *testing.T) {
	b := newConfigBuilder().withDefaults().withFile()

	require.NoError(t, b.err)
	assert.Nil(t, b.file)
}

// TestWithFile_MissingFile verifies that a configured but absent file is an
// error.
func TestWithFile_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{FilePath: filepath.Join(t.TempDir(), "absent.json")}
	b.withFile()

	require.Error(t, b.err)
	_, err := b.build()
	require.Error(t, err)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_ReadsFile verifies that .env values form their own layer.
func TestWithDotEnv_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_BACKEND=firestore\nCACHE_TTL_TENANTS=30\n"), 0o600))

	b := newConfigBuilder().withDotEnv(path)

	require.NoError(t, b.err)
	require.NotNil(t, b.dotEnv)
	assert.Equal(t, BackendFirestore, b.dotEnv.Storage.Backend)
	assert.Equal(t, 30*time.Second, b.dotEnv.Cache.TenantTTL.Duration())
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_FromEnvironment runs the full chain against the
// process environment.
func TestGetStructuredConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("SECRET_KEY", testSecretKey)
	t.Setenv("ENCRYPTION_SALT", "salt")
	t.Setenv("DATABASE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "postgres://env/timeline")

	cfg, err := GetStructuredConfig([]string{"-a", "127.0.0.1:9090", "-d", "postgres://flag/timeline"})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://flag/timeline", cfg.Storage.DB.URL.Reveal())
	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, DefaultAppName, cfg.App.Name)
}

// TestGetStructuredConfig_UnknownBackend verifies the startup failure on an
// unsupported backend.
func TestGetStructuredConfig_UnknownBackend(t *testing.T) {
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("SECRET_KEY", testSecretKey)
	t.Setenv("ENCRYPTION_SALT", "salt")
	t.Setenv("DATABASE_BACKEND", "cassandra")

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
