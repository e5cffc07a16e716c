// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/models"
)

// Backend is the persistence backend selected at startup. Exactly one
// implementation serves a process.
type Backend interface {
	// Kind reports which backend this is.
	Kind() config.Backend

	// Tenants returns the tenant repository of this backend.
	Tenants() TenantRepository

	// Users returns the user repository of this backend.
	Users() UserRepository

	// Ping performs the cheapest round trip that proves the backend answers.
	Ping(ctx context.Context) error

	// Close releases the backend's connections.
	Close() error
}

// TenantRepository persists tenants.
type TenantRepository interface {
	// CreateTenant stores a new tenant. Returns ErrTenantAlreadyExists when
	// the code is taken.
	CreateTenant(ctx context.Context, tenant models.Tenant) (models.Tenant, error)

	// GetTenantByID returns ErrTenantNotFound when absent.
	GetTenantByID(ctx context.Context, id string) (models.Tenant, error)

	// GetTenantByCode returns ErrTenantNotFound when absent.
	GetTenantByCode(ctx context.Context, code string) (models.Tenant, error)

	// ListActiveTenants returns active tenants ordered by code.
	ListActiveTenants(ctx context.Context, page models.Page) ([]models.Tenant, error)

	// UpdateTenant applies a partial update and returns the stored result.
	// Returns ErrTenantNotFound when absent.
	UpdateTenant(ctx context.Context, update models.TenantUpdate) (models.Tenant, error)
}

// UserRepository persists users. Every method is scoped to one tenant.
type UserRepository interface {
	// CreateUser returns ErrUserAlreadyExists when the username or the email
	// is taken inside the tenant.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByID returns ErrUserNotFound when absent or owned by another
	// tenant.
	GetUserByID(ctx context.Context, tenantID, userID string) (models.User, error)

	// GetUserByUsername returns ErrUserNotFound when absent.
	GetUserByUsername(ctx context.Context, tenantID, username string) (models.User, error)

	// ListUsers returns the tenant's users, newest first.
	ListUsers(ctx context.Context, tenantID string, page models.Page) ([]models.User, error)

	// UpdateUser applies a partial update and returns the stored result.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
}

// ErrorClassificator decides whether a failed backend operation is
// transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
