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

type userService struct {
	tenants   store.TenantRepository
	users     store.UserRepository
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewUserService(tenants store.TenantRepository, users store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		tenants:   tenants,
		users:     users,
		validator: validators.NewRequestValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// Me returns the user the token was issued to. A token whose user is gone
// or deactivated, or whose tenant is gone or no longer active, is treated
// as invalid.
func (s *userService) Me(ctx context.Context, claims models.Claims) (models.User, error) {
	user, err := s.users.GetUserByID(ctx, claims.TenantID, claims.UserID())
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrTokenIsInvalid
		}
		return models.User{}, err
	}
	if !user.IsActive {
		return models.User{}, ErrTokenIsInvalid
	}

	tenant, err := s.tenants.GetTenantByID(ctx, claims.TenantID)
	switch {
	case errors.Is(err, store.ErrTenantNotFound):
		return models.User{}, ErrTokenIsInvalid
	case err != nil:
		return models.User{}, err
	case !tenant.IsActive():
		logger.FromContext(ctx).Debug().Str("tenant_id", tenant.ID).Str("status", string(tenant.Status)).
			Msg("token of a tenant that is not active")
		return models.User{}, ErrTokenIsInvalid
	}

	return user, nil
}

func (s *userService) UpdateMe(ctx context.Context, claims models.Claims, req models.UpdateMeRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := s.Me(ctx, claims); err != nil {
		return models.User{}, err
	}

	update := models.UserUpdate{TenantID: claims.TenantID, ID: claims.UserID(), Email: req.Email}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return models.User{}, err
		}
		update.HashedPassword = &hashed
	}

	user, err := s.users.UpdateUser(ctx, update)
	if err != nil {
		return models.User{}, s.wrapUpdateError(ctx, update, err)
	}
	return user, nil
}

func (s *userService) DeactivateMe(ctx context.Context, claims models.Claims) error {
	if _, err := s.Me(ctx, claims); err != nil {
		return err
	}

	inactive := false
	update := models.UserUpdate{TenantID: claims.TenantID, ID: claims.UserID(), IsActive: &inactive}
	if _, err := s.users.UpdateUser(ctx, update); err != nil {
		return s.wrapUpdateError(ctx, update, err)
	}
	return nil
}

// CreateUser adds an active user to an existing tenant.
func (s *userService) CreateUser(ctx context.Context, tenantID string, req models.CreateUserRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := s.tenants.GetTenantByID(ctx, tenantID); err != nil {
		return models.User{}, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	now := s.now()
	user, err := s.users.CreateUser(ctx, models.User{
		ID:             s.ids.Generate(),
		TenantID:       tenantID,
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		if !errors.Is(err, store.ErrUserAlreadyExists) {
			logger.FromContext(ctx).Err(err).Str("tenant_id", tenantID).Msg("user creation ended with error")
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

func (s *userService) GetUser(ctx context.Context, tenantID, userID string) (models.User, error) {
	return s.users.GetUserByID(ctx, tenantID, userID)
}

func (s *userService) ListUsers(ctx context.Context, tenantID string, page models.Page) ([]models.User, error) {
	return s.users.ListUsers(ctx, tenantID, page.Normalize())
}

func (s *userService) SetUserActive(ctx context.Context, tenantID, userID string, active bool) (models.User, error) {
	update := models.UserUpdate{TenantID: tenantID, ID: userID, IsActive: &active}
	user, err := s.users.UpdateUser(ctx, update)
	if err != nil {
		return models.User{}, s.wrapUpdateError(ctx, update, err)
	}
	return user, nil
}

func (s *userService) wrapUpdateError(ctx context.Context, update models.UserUpdate, err error) error {
	if !errors.Is(err, store.ErrUserNotFound) && !errors.Is(err, store.ErrUserAlreadyExists) {
		logger.FromContext(ctx).Err(err).
			Str("tenant_id", update.TenantID).
			Str("user_id", update.ID).
			Msg("user update ended with error")
	}
	return fmt.Errorf("user update ended with error: %w", err)
}
