// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/store"
	"github.com/MKhiriev/timeline/internal/utils"
	"github.com/MKhiriev/timeline/internal/validators"
	"github.com/MKhiriev/timeline/models"
)

const (
	// AdminUsername is the username of the user created with every tenant.
	AdminUsername = "admin"

	adminEmailDomain        = "timeline"
	generatedPasswordLength = 12 // random bytes, 16 characters once encoded
)

// tenantService is the concrete implementation of TenantService.
type tenantService struct {
	tenants   store.TenantRepository
	users     store.UserRepository
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewTenantService constructs a TenantService over the given repositories.
func NewTenantService(tenants store.TenantRepository, users store.UserRepository, logger *logger.Logger) TenantService {
	return &tenantService{
		tenants:   tenants,
		users:     users,
		validator: validators.NewRequestValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// CreateTenant creates the tenant and then its admin user
// ("admin" / "admin@<code>.timeline").
//
// The two writes are not atomic on either backend. When the admin user
// cannot be created the tenant is archived, so the code stays reserved and
// the tenant never shows up as active without an administrator.
func (s *tenantService) CreateTenant(ctx context.Context, req models.CreateTenantRequest) (models.TenantCreated, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.TenantCreated{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	password := req.AdminPassword
	if password == "" {
		generated, err := utils.GeneratePassword(generatedPasswordLength)
		if err != nil {
			return models.TenantCreated{}, err
		}
		password = generated
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return models.TenantCreated{}, err
	}

	now := s.now()
	tenant, err := s.tenants.CreateTenant(ctx, models.Tenant{
		ID:        s.ids.Generate(),
		Code:      req.Code,
		Name:      req.Name,
		Status:    models.TenantStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return models.TenantCreated{}, fmt.Errorf("tenant creation ended with error: %w", err)
	}

	_, err = s.users.CreateUser(ctx, models.User{
		ID:             s.ids.Generate(),
		TenantID:       tenant.ID,
		Username:       AdminUsername,
		Email:          fmt.Sprintf("%s@%s.%s", AdminUsername, tenant.Code, adminEmailDomain),
		HashedPassword: hashed,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		log.Err(err).Str("tenant_id", tenant.ID).Msg("admin user creation failed, archiving tenant")
		archived := models.TenantStatusArchived
		if _, archiveErr := s.tenants.UpdateTenant(ctx, models.TenantUpdate{ID: tenant.ID, Status: &archived}); archiveErr != nil {
			log.Err(archiveErr).Str("tenant_id", tenant.ID).Msg("archiving tenant without admin failed")
		}
		return models.TenantCreated{}, fmt.Errorf("admin user creation ended with error: %w", err)
	}

	log.Info().Str("tenant_id", tenant.ID).Str("code", tenant.Code).Msg("tenant created")

	return models.TenantCreated{
		TenantID:      tenant.ID,
		TenantCode:    tenant.Code,
		TenantName:    tenant.Name,
		AdminUsername: AdminUsername,
		AdminPassword: password,
	}, nil
}

func (s *tenantService) GetTenant(ctx context.Context, tenantID string) (models.Tenant, error) {
	if !models.TenantIDPattern.MatchString(tenantID) {
		return models.Tenant{}, store.ErrTenantNotFound
	}
	return s.tenants.GetTenantByID(ctx, tenantID)
}

// ListTenants returns active tenants only.
func (s *tenantService) ListTenants(ctx context.Context, page models.Page) ([]models.Tenant, error) {
	return s.tenants.ListActiveTenants(ctx, page.Normalize())
}

func (s *tenantService) UpdateTenant(ctx context.Context, tenantID string, req models.UpdateTenantRequest) (models.Tenant, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.update(ctx, models.TenantUpdate{ID: tenantID, Name: req.Name, Status: req.Status})
}

func (s *tenantService) ChangeTenantStatus(ctx context.Context, tenantID string, status models.TenantStatus) (models.Tenant, error) {
	if err := s.validator.Validate(ctx, models.TenantStatusRequest{Status: status}); err != nil {
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.update(ctx, models.TenantUpdate{ID: tenantID, Status: &status})
}

func (s *tenantService) ArchiveTenant(ctx context.Context, tenantID string) error {
	archived := models.TenantStatusArchived
	_, err := s.update(ctx, models.TenantUpdate{ID: tenantID, Status: &archived})
	return err
}

func (s *tenantService) update(ctx context.Context, update models.TenantUpdate) (models.Tenant, error) {
	if !models.TenantIDPattern.MatchString(update.ID) {
		return models.Tenant{}, store.ErrTenantNotFound
	}

	tenant, err := s.tenants.UpdateTenant(ctx, update)
	if err != nil {
		if !errors.Is(err, store.ErrTenantNotFound) {
			logger.FromContext(ctx).Err(err).Str("tenant_id", update.ID).Msg("tenant update ended with error")
		}
		return models.Tenant{}, err
	}
	return tenant, nil
}
