// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/models"
)

// tenantRepository is the PostgreSQL-backed implementation of
// [TenantRepository]. It reads and writes the "tenant" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type tenantRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewTenantRepository constructs a [TenantRepository] backed by the provided
// database connection and logger.
func NewTenantRepository(db *DB, logger *logger.Logger) TenantRepository {
	logger.Debug().Msg("creating postgres tenant repository")
	return &tenantRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateTenant inserts the tenant and returns the stored row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrTenantAlreadyExists].
//   - Connection-class failures → [ErrStoreUnavailable].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *tenantRepository) CreateTenant(ctx context.Context, tenant models.Tenant) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTenantQuery(tenant)
	if err != nil {
		return models.Tenant{}, err
	}

	var created models.Tenant
	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*tenantRepository.CreateTenant").Str("code", tenant.Code).Msg("error inserting tenant")
		return models.Tenant{}, r.db.mapError(err, ErrTenantNotFound, ErrTenantAlreadyExists)
	}

	return created, nil
}

// GetTenantByID returns [ErrTenantNotFound] when no row matches.
func (r *tenantRepository) GetTenantByID(ctx context.Context, id string) (models.Tenant, error) {
	return r.getTenant(ctx, "id", id)
}

// GetTenantByCode returns [ErrTenantNotFound] when no row matches.
func (r *tenantRepository) GetTenantByCode(ctx context.Context, code string) (models.Tenant, error) {
	return r.getTenant(ctx, "code", code)
}

func (r *tenantRepository) getTenant(ctx context.Context, column, value string) (models.Tenant, error) {
	query, args, err := buildSelectTenantQuery(column, value)
	if err != nil {
		return models.Tenant{}, err
	}

	var tenant models.Tenant
	if err = r.db.GetContext(ctx, &tenant, query, args...); err != nil {
		mapped := r.db.mapError(err, ErrTenantNotFound, nil)
		if mapped != ErrTenantNotFound {
			logger.FromContext(ctx).Err(err).Str("func", "*tenantRepository.getTenant").Str(column, value).Msg("error selecting tenant")
		}
		return models.Tenant{}, mapped
	}

	return tenant, nil
}

// ListActiveTenants returns one page of active tenants ordered by code.
func (r *tenantRepository) ListActiveTenants(ctx context.Context, page models.Page) ([]models.Tenant, error) {
	query, args, err := buildListActiveTenantsQuery(page)
	if err != nil {
		return nil, err
	}

	tenants := make([]models.Tenant, 0)
	if err = r.db.SelectContext(ctx, &tenants, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tenantRepository.ListActiveTenants").Msg("error listing tenants")
		return nil, r.db.mapError(err, ErrTenantNotFound, nil)
	}

	return tenants, nil
}

// UpdateTenant applies the set fields of update and returns the stored row.
func (r *tenantRepository) UpdateTenant(ctx context.Context, update models.TenantUpdate) (models.Tenant, error) {
	query, args, err := buildUpdateTenantQuery(update, r.now())
	if err != nil {
		return models.Tenant{}, err
	}

	var tenant models.Tenant
	if err = r.db.GetContext(ctx, &tenant, query, args...); err != nil {
		mapped := r.db.mapError(err, ErrTenantNotFound, nil)
		if mapped != ErrTenantNotFound {
			logger.FromContext(ctx).Err(err).Str("func", "*tenantRepository.UpdateTenant").Str("id", update.ID).Msg("error updating tenant")
		}
		return models.Tenant{}, mapped
	}

	return tenant, nil
}
