// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the optional config file. Both JSON and
// YAML use the same snake_case keys.
type fileConfig struct {
	App struct {
		Name     string `json:"name" yaml:"name"`
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Security struct {
		SecretKey      Secret  `json:"secret_key" yaml:"secret_key"`
		EncryptionSalt Secret  `json:"encryption_salt" yaml:"encryption_salt"`
		Algorithm      string  `json:"algorithm" yaml:"algorithm"`
		AccessTokenTTL Minutes `json:"access_token_expire_minutes" yaml:"access_token_expire_minutes"`
	} `json:"security" yaml:"security"`

	Storage struct {
		Backend Backend `json:"backend" yaml:"backend"`
		DB      struct {
			URL             Secret   `json:"url" yaml:"url"`
			PoolSize        int      `json:"pool_size" yaml:"pool_size"`
			MaxIdleConns    int      `json:"max_idle_conns" yaml:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
		} `json:"db" yaml:"db"`
		Firestore struct {
			ServiceAccountPath string `json:"service_account_path" yaml:"service_account_path"`
			ProjectID          string `json:"project_id" yaml:"project_id"`
		} `json:"firestore" yaml:"firestore"`
	} `json:"storage" yaml:"storage"`

	Cache struct {
		Host           string  `json:"host" yaml:"host"`
		Port           int     `json:"port" yaml:"port"`
		DB             int     `json:"db" yaml:"db"`
		MaxConnections int     `json:"max_connections" yaml:"max_connections"`
		TenantTTL      Seconds `json:"tenant_ttl_seconds" yaml:"tenant_ttl_seconds"`
	} `json:"cache" yaml:"cache"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Seconds  `json:"request_timeout_seconds" yaml:"request_timeout_seconds"`
		MaxBodyBytes   int64    `json:"max_upload_size" yaml:"max_upload_size"`
		AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
	} `json:"server" yaml:"server"`

	Workers struct {
		BackendProbeSchedule string `json:"backend_probe_schedule" yaml:"backend_probe_schedule"`
	} `json:"workers" yaml:"workers"`
}

// parseFile reads a JSON (.json) or YAML (.yaml, .yml) config file.
// Booleans and credentials that only make sense per-environment (REDIS_*
// enablement, FIREBASE_SERVICE_ACCOUNT_KEY) are not read from files.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".json":
		err = json.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return &StructuredConfig{
		App: App{
			Name:     fc.App.Name,
			Version:  fc.App.Version,
			LogLevel: fc.App.LogLevel,
		},
		Security: Security{
			SecretKey:      fc.Security.SecretKey,
			EncryptionSalt: fc.Security.EncryptionSalt,
			Algorithm:      fc.Security.Algorithm,
			AccessTokenTTL: fc.Security.AccessTokenTTL,
		},
		Storage: Storage{
			Backend: fc.Storage.Backend,
			DB: DB{
				URL:             fc.Storage.DB.URL,
				MaxOpenConns:    fc.Storage.DB.PoolSize,
				MaxIdleConns:    fc.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: time.Duration(fc.Storage.DB.ConnMaxLifetime),
			},
			Firestore: Firestore{
				ServiceAccountPath: fc.Storage.Firestore.ServiceAccountPath,
				ProjectID:          fc.Storage.Firestore.ProjectID,
			},
		},
		Cache: Cache{
			Host:           fc.Cache.Host,
			Port:           fc.Cache.Port,
			DB:             fc.Cache.DB,
			MaxConnections: fc.Cache.MaxConnections,
			TenantTTL:      fc.Cache.TenantTTL,
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: fc.Server.RequestTimeout,
			MaxBodyBytes:   fc.Server.MaxBodyBytes,
			AllowedOrigins: fc.Server.AllowedOrigins,
		},
		Workers: Workers{
			BackendProbeSchedule: fc.Workers.BackendProbeSchedule,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" (JSON and YAML) and from JSON numbers of nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler; yaml.v3 uses it for
// scalar nodes.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

// MarshalJSON renders the duration in Go notation.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
