// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Source errors returned while collecting configuration.
var (
	// ErrInvalidFlags indicates that the command line could not be parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
	// ErrUnsupportedConfigFile indicates a config file with an extension
	// other than .json, .yaml or .yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)

// Validation errors returned by [StructuredConfig.validate]. Validation
// reports every violation at once through errors.Join, so callers test for
// individual causes with errors.Is.
var (
	// ErrMissingSecretKey indicates that SECRET_KEY is not set.
	ErrMissingSecretKey = errors.New("SECRET_KEY is required")
	// ErrSecretKeyTooShort indicates a SECRET_KEY shorter than MinSecretKeyLength.
	ErrSecretKeyTooShort = errors.New("SECRET_KEY is too short")
	// ErrMissingEncryptionSalt indicates that ENCRYPTION_SALT is not set.
	ErrMissingEncryptionSalt = errors.New("ENCRYPTION_SALT is required")
	// ErrInvalidAlgorithm indicates an unsupported JWT signing algorithm.
	ErrInvalidAlgorithm = errors.New("unsupported ALGORITHM")
	// ErrMissingBackend indicates that DATABASE_BACKEND is not set.
	ErrMissingBackend = errors.New("DATABASE_BACKEND is required")
	// ErrUnknownBackend indicates a DATABASE_BACKEND other than firestore or postgres.
	ErrUnknownBackend = errors.New("unknown DATABASE_BACKEND")
	// ErrMissingDatabaseURL indicates the postgres backend without DATABASE_URL.
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required for the postgres backend")
	// ErrMissingFirebaseCredentials indicates the firestore backend with neither
	// a service-account key nor a service-account path.
	ErrMissingFirebaseCredentials = errors.New("FIREBASE_SERVICE_ACCOUNT_KEY or FIREBASE_SERVICE_ACCOUNT_PATH is required for the firestore backend")
	// ErrInvalidFirebaseCredentials indicates a key that is not JSON or a path
	// that does not exist.
	ErrInvalidFirebaseCredentials = errors.New("invalid firebase service-account credentials")
	// ErrInvalidCacheConfigs indicates an enabled cache with unusable settings.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidServerConfigs indicates invalid listen address or request limits.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates an unparsable worker schedule.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
