// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache provides the optional Redis cache in front of the
// persistence backend. When Redis is disabled or unreachable at startup the
// no-op implementation is used and every lookup goes to the backend.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidKeyComponent is returned by key builders when a component
// contains the key separator.
var ErrInvalidKeyComponent = errors.New("cache key component contains separator")

// Cache stores JSON-serializable values under string keys.
type Cache interface {
	// Get loads the value stored under key into dst. found is false on a
	// miss; err is reserved for transport or decoding failures.
	Get(ctx context.Context, key string, dst any) (found bool, err error)

	// Set stores v under key for ttl. A non-positive ttl stores the value
	// without expiry.
	Set(ctx context.Context, key string, v any, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks that the cache server is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connections.
	Close() error

	// Enabled reports whether lookups can ever hit.
	Enabled() bool
}
