// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/timeline/internal/cache"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/models"
)

// CacheLookupObserver records the outcome of a cache lookup ("hit",
// "miss" or "error"). *metrics.Metrics implements it.
type CacheLookupObserver interface {
	ObserveCacheLookup(result string)
}

// cachedTenantRepository serves tenant reads from the cache and falls back
// to the wrapped repository on a miss. Writes go to the repository first and
// then invalidate both keys of the tenant. Cache failures are logged and
// never fail the call.
//
// A read that loaded a tenant while a write of this process was in flight
// does not populate the cache: writes bump epoch before and after they hit
// the backend, and a loader only stores its result when epoch is unchanged
// since it started. Writes made by other processes are bounded by the TTL.
type cachedTenantRepository struct {
	next     TenantRepository
	cache    cache.Cache
	ttl      time.Duration
	observer CacheLookupObserver
	logger   *logger.Logger

	mu    sync.RWMutex
	epoch uint64
}

// NewCachedTenantRepository decorates next with c. observer may be nil.
func NewCachedTenantRepository(next TenantRepository, c cache.Cache, ttl time.Duration, observer CacheLookupObserver, log *logger.Logger) TenantRepository {
	return &cachedTenantRepository{
		next:     next,
		cache:    c,
		ttl:      ttl,
		observer: observer,
		logger:   log,
	}
}

func (r *cachedTenantRepository) observe(result string) {
	if r.observer != nil {
		r.observer.ObserveCacheLookup(result)
	}
}

func (r *cachedTenantRepository) CreateTenant(ctx context.Context, tenant models.Tenant) (models.Tenant, error) {
	r.bump()
	created, err := r.next.CreateTenant(ctx, tenant)
	r.bump()
	if err != nil {
		return models.Tenant{}, err
	}
	r.invalidate(ctx, created)
	return created, nil
}

func (r *cachedTenantRepository) GetTenantByID(ctx context.Context, id string) (models.Tenant, error) {
	key, err := cache.TenantIDKey(id)
	if err != nil {
		return r.next.GetTenantByID(ctx, id)
	}
	return r.lookup(ctx, key, func() (models.Tenant, error) { return r.next.GetTenantByID(ctx, id) })
}

func (r *cachedTenantRepository) GetTenantByCode(ctx context.Context, code string) (models.Tenant, error) {
	key, err := cache.TenantCodeKey(code)
	if err != nil {
		return r.next.GetTenantByCode(ctx, code)
	}
	return r.lookup(ctx, key, func() (models.Tenant, error) { return r.next.GetTenantByCode(ctx, code) })
}

// ListActiveTenants is never cached: any status change would have to evict
// every page.
func (r *cachedTenantRepository) ListActiveTenants(ctx context.Context, page models.Page) ([]models.Tenant, error) {
	return r.next.ListActiveTenants(ctx, page)
}

func (r *cachedTenantRepository) UpdateTenant(ctx context.Context, update models.TenantUpdate) (models.Tenant, error) {
	r.bump()
	updated, err := r.next.UpdateTenant(ctx, update)
	r.bump()
	if err != nil {
		return models.Tenant{}, err
	}
	r.invalidate(ctx, updated)
	return updated, nil
}

func (r *cachedTenantRepository) lookup(ctx context.Context, key string, load func() (models.Tenant, error)) (models.Tenant, error) {
	var tenant models.Tenant
	found, err := r.cache.Get(ctx, key, &tenant)
	switch {
	case err != nil:
		r.observe("error")
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("tenant cache read failed")
	case found:
		r.observe("hit")
		return tenant, nil
	default:
		r.observe("miss")
	}

	started := r.currentEpoch()
	tenant, err = load()
	if err != nil {
		return models.Tenant{}, err
	}
	r.store(ctx, tenant, started)
	return tenant, nil
}

func (r *cachedTenantRepository) bump() {
	r.mu.Lock()
	r.epoch++
	r.mu.Unlock()
}

func (r *cachedTenantRepository) currentEpoch() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.epoch
}

// store caches tenant unless a write started since epoch started. The read
// lock is held across the cache write so that a concurrent write's
// invalidation runs after it.
func (r *cachedTenantRepository) store(ctx context.Context, tenant models.Tenant, started uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.epoch != started {
		logger.FromContext(ctx).Debug().Str("tenant_id", tenant.ID).Msg("tenant changed during load, not cached")
		return
	}

	for _, key := range tenantKeys(tenant) {
		if err := r.cache.Set(ctx, key, tenant, r.ttl); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("tenant cache write failed")
		}
	}
}

func (r *cachedTenantRepository) invalidate(ctx context.Context, tenant models.Tenant) {
	keys := tenantKeys(tenant)
	if len(keys) == 0 {
		return
	}
	if err := r.cache.Delete(ctx, keys...); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("tenant_id", tenant.ID).Msg("tenant cache invalidation failed")
	}
}

// tenantKeys returns the ID and code keys of tenant, skipping components the
// key builders reject.
func tenantKeys(tenant models.Tenant) []string {
	keys := make([]string, 0, 2)
	if key, err := cache.TenantIDKey(tenant.ID); err == nil {
		keys = append(keys, key)
	}
	if key, err := cache.TenantCodeKey(tenant.Code); err == nil {
		keys = append(keys, key)
	}
	return keys
}
