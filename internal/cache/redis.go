// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/crypto"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/go-redis/redis/v8"
)

const connectTimeout = 5 * time.Second

// Redis is the go-redis implementation of Cache. Values are JSON sealed by a
// crypto.Sealer, so a shared Redis never holds tenant records in clear text.
type Redis struct {
	client *redis.Client
	sealer crypto.Sealer
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client, sealer crypto.Sealer) *Redis {
	return &Redis{client: client, sealer: sealer}
}

// Connect returns the cache configured by cfg.
//
// A disabled cache yields Nop. An enabled cache that cannot be reached
// within the connect timeout is logged as a warning and also yields Nop; the
// service keeps running against the backend alone.
func Connect(ctx context.Context, cfg config.Cache, sealer crypto.Sealer, log *logger.Logger) Cache {
	if !cfg.Enabled {
		log.Info().Msg("redis cache disabled")
		return NewNop()
	}

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    cfg.Password.Reveal(),
		DB:          cfg.DB,
		PoolSize:    cfg.MaxConnections,
		DialTimeout: connectTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis connection failed, cache disabled")
		_ = client.Close()
		return NewNop()
	}

	log.Info().Str("addr", addr).Int("db", cfg.DB).Msg("redis cache connected")
	return NewRedis(client, sealer)
}

// Get implements Cache.
func (c *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	blob, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := c.sealer.Open(blob, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

// Set implements Cache.
func (c *Redis) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	blob, err := c.sealer.Seal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, key, blob, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete implements Cache.
func (c *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Ping implements Cache.
func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close implements Cache.
func (c *Redis) Close() error {
	return c.client.Close()
}

// Enabled implements Cache.
func (c *Redis) Enabled() bool { return true }
