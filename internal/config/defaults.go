// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other source. Booleans default to false
// because a merged zero value cannot override a non-zero one.
const (
	DefaultAppName              = "timeline"
	DefaultAppVersion           = "1.0.0"
	DefaultLogLevel             = "info"
	DefaultAlgorithm            = "HS256"
	DefaultAccessTokenTTL       = 480 * time.Minute
	DefaultDBPoolSize           = 10
	DefaultDBMaxIdleConns       = 4
	DefaultDBConnMaxLifetime    = 30 * time.Minute
	DefaultRedisHost            = "localhost"
	DefaultRedisPort            = 6379
	DefaultRedisMaxConnections  = 10
	DefaultTenantCacheTTL       = 900 * time.Second
	DefaultHTTPAddress          = ":8000"
	DefaultRequestTimeout       = 60 * time.Second
	DefaultMaxBodyBytes         = 100 * 1024 * 1024
	DefaultTenantHeader         = "X-Tenant-ID"
	DefaultRequestIDHeader      = "X-Request-ID"
	DefaultCorrelationIDHeader  = "X-Correlation-ID"
	DefaultAuthRateLimit        = 5
	DefaultAuthRateBurst        = 10
	DefaultBackendProbeSchedule = "@every 30s"
	DefaultDotEnvPath           = ".env"

	// MinSecretKeyLength is the shortest accepted SECRET_KEY.
	MinSecretKeyLength = 32
)

// DefaultAllowedOrigins is the CORS allow-list used when ALLOWED_ORIGINS is
// not set.
var DefaultAllowedOrigins = []string{"http://localhost:3000", "http://localhost:8080"}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    DefaultAppName,
			Version: DefaultAppVersion,
		},
		Security: Security{
			Algorithm:      DefaultAlgorithm,
			AccessTokenTTL: Minutes(DefaultAccessTokenTTL),
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    DefaultDBPoolSize,
				MaxIdleConns:    DefaultDBMaxIdleConns,
				ConnMaxLifetime: DefaultDBConnMaxLifetime,
			},
		},
		Cache: Cache{
			Host:           DefaultRedisHost,
			Port:           DefaultRedisPort,
			MaxConnections: DefaultRedisMaxConnections,
			TenantTTL:      Seconds(DefaultTenantCacheTTL),
		},
		Server: Server{
			HTTPAddress:         DefaultHTTPAddress,
			RequestTimeout:      Seconds(DefaultRequestTimeout),
			MaxBodyBytes:        DefaultMaxBodyBytes,
			AllowedOrigins:      append([]string(nil), DefaultAllowedOrigins...),
			TenantHeader:        DefaultTenantHeader,
			RequestIDHeader:     DefaultRequestIDHeader,
			CorrelationIDHeader: DefaultCorrelationIDHeader,
			AuthRateLimit:       DefaultAuthRateLimit,
			AuthRateBurst:       DefaultAuthRateBurst,
		},
		Workers: Workers{
			BackendProbeSchedule: DefaultBackendProbeSchedule,
		},
		DotEnvPath: DefaultDotEnvPath,
	}
}

// applyDerivedDefaults fills values whose default depends on other fields.
func (cfg *StructuredConfig) applyDerivedDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
		if cfg.App.Debug {
			cfg.App.LogLevel = "debug"
		}
	}
}
