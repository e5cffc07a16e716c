// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/timeline/internal/cache"
	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/logger"
)

// Storages is the process-wide persistence handle. It wraps the one backend
// selected at startup and implements [Backend] itself, with the tenant
// repository decorated by the cache when the cache is enabled.
type Storages struct {
	backend Backend
	tenants TenantRepository
}

// StoragesOptions carries the optional collaborators of NewStorages.
type StoragesOptions struct {
	// Cache fronts tenant reads. Nil or disabled means no caching.
	Cache cache.Cache
	// CacheTTL is the lifetime of cached tenants.
	CacheTTL time.Duration
	// Observer counts cache hits and misses. May be nil.
	Observer CacheLookupObserver
}

type backendOpener func(ctx context.Context, cfg config.Storage, log *logger.Logger) (Backend, error)

var defaultOpeners = map[config.Backend]backendOpener{
	config.BackendFirestore: func(ctx context.Context, cfg config.Storage, log *logger.Logger) (Backend, error) {
		return NewFirestoreBackend(ctx, cfg.Firestore, log)
	},
	config.BackendPostgres: func(ctx context.Context, cfg config.Storage, log *logger.Logger) (Backend, error) {
		return NewPostgresBackend(ctx, cfg.DB, log)
	},
}

// NewStorages constructs exactly one backend according to cfg.Backend.
// Any value other than firestore or postgres yields [ErrUnknownBackend].
func NewStorages(ctx context.Context, cfg config.Storage, opts StoragesOptions, log *logger.Logger) (*Storages, error) {
	return newStorages(ctx, cfg, opts, log, defaultOpeners)
}

func newStorages(ctx context.Context, cfg config.Storage, opts StoragesOptions, log *logger.Logger, openers map[config.Backend]backendOpener) (*Storages, error) {
	open, ok := openers[cfg.Backend]
	if !ok {
		log.Error().Str("func", "NewStorages").Stringer("backend", cfg.Backend).Msg("unknown storage backend")
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend.String())
	}

	backend, err := open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	s := &Storages{
		backend: backend,
		tenants: backend.Tenants(),
	}
	cached := opts.Cache != nil && opts.Cache.Enabled()
	if cached {
		s.tenants = NewCachedTenantRepository(backend.Tenants(), opts.Cache, opts.CacheTTL, opts.Observer, log)
	}

	log.Info().Stringer("backend", backend.Kind()).Bool("tenant_cache", cached).Msg("storage backend selected")
	return s, nil
}

// Kind reports the selected backend.
func (s *Storages) Kind() config.Backend { return s.backend.Kind() }

// Tenants returns the (possibly cached) tenant repository.
func (s *Storages) Tenants() TenantRepository { return s.tenants }

// Users returns the user repository of the selected backend.
func (s *Storages) Users() UserRepository { return s.backend.Users() }

// Ping checks the backend only; the cache has its own readiness check.
func (s *Storages) Ping(ctx context.Context) error { return s.backend.Ping(ctx) }

// Close closes the backend.
func (s *Storages) Close() error { return s.backend.Close() }
