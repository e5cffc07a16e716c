// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/store"
	"github.com/MKhiriev/timeline/internal/utils"
	"github.com/MKhiriev/timeline/internal/validators"
	"github.com/MKhiriev/timeline/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles self registration, credential verification, and JWT token
// lifecycle on top of the tenant and user repositories.
type authService struct {
	tenants   store.TenantRepository
	users     store.UserRepository
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenAlgorithm is one of HS256, HS384 or HS512.
	tokenAlgorithm string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(tenants store.TenantRepository, users store.UserRepository, cfg config.StructuredConfig, logger *logger.Logger) AuthService {
	return &authService{
		tenants:        tenants,
		users:          users,
		validator:      validators.NewRequestValidator(),
		ids:            utils.NewUUIDGenerator(),
		now:            func() time.Time { return time.Now().UTC() },
		tokenSignKey:   cfg.Security.SecretKey.Reveal(),
		tokenAlgorithm: cfg.Security.Algorithm,
		tokenIssuer:    cfg.App.Name,
		tokenDuration:  cfg.Security.AccessTokenTTL.Duration(),
		logger:         logger,
	}
}

// Register creates an active user in the tenant named by req.TenantCode.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the request is malformed.
//   - ErrRegistrationFailed if the tenant is unknown or not active, or the
//     username or email is already taken in it.
//   - a wrapped store.ErrStoreUnavailable when the backend cannot be reached.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tenant, err := a.tenants.GetTenantByCode(ctx, req.TenantCode)
	if err != nil {
		if errors.Is(err, store.ErrTenantNotFound) {
			return models.User{}, ErrRegistrationFailed
		}
		log.Err(err).Str("tenant_code", req.TenantCode).Msg("tenant search by code failed")
		return models.User{}, fmt.Errorf("tenant search by code failed: %w", err)
	}
	if !tenant.IsActive() {
		log.Debug().Str("tenant_id", tenant.ID).Str("status", string(tenant.Status)).Msg("registration into inactive tenant")
		return models.User{}, ErrRegistrationFailed
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	now := a.now()
	user, err := a.users.CreateUser(ctx, models.User{
		ID:             a.ids.Generate(),
		TenantID:       tenant.ID,
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, ErrRegistrationFailed
		}
		log.Err(err).Str("tenant_id", tenant.ID).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates a user of an active tenant and issues an access token.
//
// Unknown tenants, unknown users, inactive users and wrong passwords all
// return ErrInvalidCredentials. A password hash comparison is performed on
// every path so the response time does not tell them apart.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.findLoginUser(ctx, req)
	if err != nil {
		utils.BurnPasswordCheck(req.Password)
		return models.Token{}, err
	}

	if !utils.VerifyPassword(req.Password, user.HashedPassword) || !user.IsActive {
		log.Debug().Str("tenant_id", user.TenantID).Str("user_id", user.ID).Msg("login refused")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:    a.tokenIssuer,
		UserID:    user.ID,
		TenantID:  user.TenantID,
		Username:  user.Username,
		TTL:       a.tokenDuration,
		SignKey:   a.tokenSignKey,
		Algorithm: a.tokenAlgorithm,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// findLoginUser resolves the tenant and the user named by req. Lookup
// misses come back as ErrInvalidCredentials.
func (a *authService) findLoginUser(ctx context.Context, req models.LoginRequest) (models.User, error) {
	tenant, err := a.tenants.GetTenantByCode(ctx, req.TenantCode)
	switch {
	case errors.Is(err, store.ErrTenantNotFound):
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		return models.User{}, fmt.Errorf("tenant search by code failed: %w", err)
	case !tenant.IsActive():
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.users.GetUserByUsername(ctx, tenant.ID, req.Username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return user, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens return ErrTokenIsExpired; any other validation failure
// (bad signature, wrong issuer or algorithm, malformed, missing claims)
// returns ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenAlgorithm, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, ErrTokenIsExpired
		}
		return models.Claims{}, ErrTokenIsInvalid
	}

	return token.Claims, nil
}

func (a *authService) TokenTTL() time.Duration {
	return a.tokenDuration
}
