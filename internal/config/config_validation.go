// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Every violation is
// collected; the result is nil or an errors.Join of wrapped sentinels.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	errs = append(errs, cfg.App.validate()...)
	errs = append(errs, cfg.Security.validate()...)
	errs = append(errs, cfg.Storage.validate()...)
	errs = append(errs, cfg.Cache.validate()...)
	errs = append(errs, cfg.Server.validate()...)
	errs = append(errs, cfg.Workers.validate()...)

	return errors.Join(errs...)
}

func (a App) validate() []error {
	if _, err := zerolog.ParseLevel(a.LogLevel); err != nil {
		return []error{fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalidAppConfigs, a.LogLevel)}
	}
	return nil
}

func (s Security) validate() []error {
	var errs []error

	switch {
	case s.SecretKey == "":
		errs = append(errs, ErrMissingSecretKey)
	case len(s.SecretKey) < MinSecretKeyLength:
		errs = append(errs, fmt.Errorf("%w: need at least %d characters, got %d",
			ErrSecretKeyTooShort, MinSecretKeyLength, len(s.SecretKey)))
	}

	if s.EncryptionSalt == "" {
		errs = append(errs, ErrMissingEncryptionSalt)
	}

	switch s.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s.Algorithm))
	}

	if s.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("%w: ACCESS_TOKEN_EXPIRE_MINUTES must be positive", ErrInvalidAppConfigs))
	}

	return errs
}

// validate checks the backend selector and only the selected backend's
// settings.
func (s Storage) validate() []error {
	backend, err := ParseBackend(string(s.Backend))
	if err != nil {
		return []error{err}
	}

	var errs []error
	switch backend {
	case BackendPostgres:
		if s.DB.URL == "" {
			errs = append(errs, ErrMissingDatabaseURL)
		}
		if s.DB.MaxOpenConns < 0 || s.DB.MaxIdleConns < 0 {
			errs = append(errs, fmt.Errorf("%w: pool sizes must not be negative", ErrInvalidAppConfigs))
		}
	case BackendFirestore:
		errs = append(errs, s.Firestore.validate()...)
	}

	return errs
}

func (f Firestore) validate() []error {
	if f.ServiceAccountKey == "" && f.ServiceAccountPath == "" {
		return []error{ErrMissingFirebaseCredentials}
	}

	if f.ServiceAccountKey != "" {
		var doc map[string]any
		if err := json.Unmarshal([]byte(f.ServiceAccountKey), &doc); err != nil {
			return []error{fmt.Errorf("%w: FIREBASE_SERVICE_ACCOUNT_KEY is not a JSON object", ErrInvalidFirebaseCredentials)}
		}
		return nil
	}

	info, err := os.Stat(f.ServiceAccountPath)
	if err != nil {
		return []error{fmt.Errorf("%w: %v", ErrInvalidFirebaseCredentials, err)}
	}
	if info.IsDir() {
		return []error{fmt.Errorf("%w: %s is a directory", ErrInvalidFirebaseCredentials, f.ServiceAccountPath)}
	}
	return nil
}

func (c Cache) validate() []error {
	if !c.Enabled {
		return nil
	}

	var errs []error
	if c.Host == "" {
		errs = append(errs, fmt.Errorf("%w: REDIS_HOST is required", ErrInvalidCacheConfigs))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: REDIS_PORT %d out of range", ErrInvalidCacheConfigs, c.Port))
	}
	if c.TenantTTL < 0 {
		errs = append(errs, fmt.Errorf("%w: CACHE_TTL_TENANTS must not be negative", ErrInvalidCacheConfigs))
	}
	return errs
}

func (s Server) validate() []error {
	var errs []error
	if s.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: SERVER_ADDRESS is required", ErrInvalidServerConfigs))
	}
	if s.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("%w: MAX_UPLOAD_SIZE must be positive", ErrInvalidServerConfigs))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: REQUEST_TIMEOUT_SECONDS must be positive", ErrInvalidServerConfigs))
	}
	if s.AuthRateLimit <= 0 || s.AuthRateBurst <= 0 {
		errs = append(errs, fmt.Errorf("%w: auth rate limit and burst must be positive", ErrInvalidServerConfigs))
	}
	if s.TenantHeader == "" || s.RequestIDHeader == "" || s.CorrelationIDHeader == "" {
		errs = append(errs, fmt.Errorf("%w: header names must not be empty", ErrInvalidServerConfigs))
	}
	return errs
}

func (w Workers) validate() []error {
	if w.BackendProbeSchedule == "" {
		return nil
	}
	if _, err := cron.ParseStandard(w.BackendProbeSchedule); err != nil {
		return []error{fmt.Errorf("%w: BACKEND_PROBE_SCHEDULE: %v", ErrInvalidWorkerConfigs, err)}
	}
	return nil
}
