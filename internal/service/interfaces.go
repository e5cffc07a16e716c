// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/timeline/models"
)

// TenantService manages tenants and bootstraps their admin user.
type TenantService interface {
	// CreateTenant stores a new active tenant together with its "admin"
	// user. The admin password is returned once and never stored in clear.
	CreateTenant(ctx context.Context, req models.CreateTenantRequest) (models.TenantCreated, error)
	GetTenant(ctx context.Context, tenantID string) (models.Tenant, error)
	ListTenants(ctx context.Context, page models.Page) ([]models.Tenant, error)
	UpdateTenant(ctx context.Context, tenantID string, req models.UpdateTenantRequest) (models.Tenant, error)
	ChangeTenantStatus(ctx context.Context, tenantID string, status models.TenantStatus) (models.Tenant, error)
	// ArchiveTenant is the soft delete of a tenant.
	ArchiveTenant(ctx context.Context, tenantID string) error
}

// AuthService registers users, verifies credentials and issues tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
	// TokenTTL is the lifetime of issued tokens.
	TokenTTL() time.Duration
}

// UserService covers the authenticated caller ("me") and the tenant scoped
// user administration.
type UserService interface {
	Me(ctx context.Context, claims models.Claims) (models.User, error)
	UpdateMe(ctx context.Context, claims models.Claims, req models.UpdateMeRequest) (models.User, error)
	DeactivateMe(ctx context.Context, claims models.Claims) error

	CreateUser(ctx context.Context, tenantID string, req models.CreateUserRequest) (models.User, error)
	GetUser(ctx context.Context, tenantID, userID string) (models.User, error)
	ListUsers(ctx context.Context, tenantID string, page models.Page) ([]models.User, error)
	SetUserActive(ctx context.Context, tenantID, userID string, active bool) (models.User, error)
}

// HealthService answers liveness and readiness probes.
type HealthService interface {
	Liveness(ctx context.Context) models.HealthResponse
	// Readiness reports ready=false when any dependency check failed.
	Readiness(ctx context.Context) (resp models.ReadinessResponse, ready bool)
}

// AppInfoService describes the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.VersionResponse
}

// IDGenerator returns new unique identifiers.
type IDGenerator interface {
	Generate() string
}
