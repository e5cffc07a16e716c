// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// Every statement carries the tenant_id predicate, so a user of another
// tenant is indistinguishable from a missing one.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating postgres user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser inserts the user and returns the stored row. Both
// (tenant_id, username) and (tenant_id, email) are unique, so either
// collision yields [ErrUserAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, err
	}

	var created models.User
	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("tenant_id", user.TenantID).Msg("error inserting user")
		return models.User{}, r.db.mapError(err, ErrUserNotFound, ErrUserAlreadyExists)
	}

	return created, nil
}

// GetUserByID returns [ErrUserNotFound] when the user is absent or belongs
// to another tenant.
func (r *userRepository) GetUserByID(ctx context.Context, tenantID, userID string) (models.User, error) {
	return r.getUser(ctx, tenantID, "id", userID)
}

// GetUserByUsername returns [ErrUserNotFound] when no user of the tenant has
// this username.
func (r *userRepository) GetUserByUsername(ctx context.Context, tenantID, username string) (models.User, error) {
	return r.getUser(ctx, tenantID, "username", username)
}

func (r *userRepository) getUser(ctx context.Context, tenantID, column, value string) (models.User, error) {
	query, args, err := buildSelectUserQuery(tenantID, column, value)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = r.db.GetContext(ctx, &user, query, args...); err != nil {
		mapped := r.db.mapError(err, ErrUserNotFound, nil)
		if mapped != ErrUserNotFound {
			logger.FromContext(ctx).Err(err).Str("func", "*userRepository.getUser").Str("tenant_id", tenantID).Msg("error selecting user")
		}
		return models.User{}, mapped
	}

	return user, nil
}

// ListUsers returns one page of the tenant's users, newest first.
func (r *userRepository) ListUsers(ctx context.Context, tenantID string, page models.Page) ([]models.User, error) {
	query, args, err := buildListUsersQuery(tenantID, page)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0)
	if err = r.db.SelectContext(ctx, &users, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ListUsers").Str("tenant_id", tenantID).Msg("error listing users")
		return nil, r.db.mapError(err, ErrUserNotFound, nil)
	}

	return users, nil
}

// UpdateUser applies the set fields of update and returns the stored row.
// Changing the email to one already used in the tenant yields
// [ErrUserAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	query, args, err := buildUpdateUserQuery(update, r.now())
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = r.db.GetContext(ctx, &user, query, args...); err != nil {
		mapped := r.db.mapError(err, ErrUserNotFound, ErrUserAlreadyExists)
		if mapped != ErrUserNotFound {
			logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateUser").Str("tenant_id", update.TenantID).Msg("error updating user")
		}
		return models.User{}, mapped
	}

	return user, nil
}
