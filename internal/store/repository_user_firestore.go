// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/models"
	"google.golang.org/api/iterator"
)

// firestoreUserRepository is the document-store implementation of
// [UserRepository]. Users of all tenants share the "users" collection and
// carry a tenant_id field; every read checks it.
type firestoreUserRepository struct {
	client *firestore.Client
	logger *logger.Logger
	now    func() time.Time
}

// NewFirestoreUserRepository constructs a [UserRepository] on top of an
// existing Firestore client.
func NewFirestoreUserRepository(client *firestore.Client, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating firestore user repository")
	return &firestoreUserRepository{
		client: client,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *firestoreUserRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(CollectionUsers)
}

func (r *firestoreUserRepository) tenantQuery(tenantID, field, value string) firestore.Query {
	return r.collection().
		Where("tenant_id", "==", tenantID).
		Where(field, "==", value).
		Limit(1)
}

// taken reports whether another user of the tenant already holds value in
// field. exceptID is ignored so an update may keep its own value.
func (r *firestoreUserRepository) taken(tx *firestore.Transaction, tenantID, field, value, exceptID string) (bool, error) {
	docs, err := tx.Documents(r.tenantQuery(tenantID, field, value)).GetAll()
	if err != nil {
		return false, err
	}
	for _, doc := range docs {
		if doc.Ref.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

// CreateUser stores the user after checking, inside the same transaction,
// that neither the username nor the email is used in the tenant.
func (r *firestoreUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	ref := r.collection().Doc(user.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, unique := range [][2]string{{"username", user.Username}, {"email", user.Email}} {
			exists, err := r.taken(tx, user.TenantID, unique[0], unique[1], "")
			if err != nil {
				return err
			}
			if exists {
				return ErrUserAlreadyExists
			}
		}
		return tx.Create(ref, user)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*firestoreUserRepository.CreateUser").Str("tenant_id", user.TenantID).Msg("error creating user")
		return models.User{}, mapFirestoreError(err, ErrUserNotFound, ErrUserAlreadyExists)
	}

	return user, nil
}

// GetUserByID returns [ErrUserNotFound] for a document owned by another
// tenant.
func (r *firestoreUserRepository) GetUserByID(ctx context.Context, tenantID, userID string) (models.User, error) {
	snap, err := r.collection().Doc(userID).Get(ctx)
	if err != nil {
		return models.User{}, mapFirestoreError(err, ErrUserNotFound, nil)
	}

	user, err := decodeUser(snap)
	if err != nil {
		return models.User{}, err
	}
	if user.TenantID != tenantID {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *firestoreUserRepository) GetUserByUsername(ctx context.Context, tenantID, username string) (models.User, error) {
	docs, err := r.tenantQuery(tenantID, "username", username).Documents(ctx).GetAll()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*firestoreUserRepository.GetUserByUsername").Str("tenant_id", tenantID).Msg("error querying user")
		return models.User{}, mapFirestoreError(err, ErrUserNotFound, nil)
	}
	if len(docs) == 0 {
		return models.User{}, ErrUserNotFound
	}
	return decodeUser(docs[0])
}

// ListUsers orders the tenant's users newest first in memory, for the same
// index reason as tenant listing.
func (r *firestoreUserRepository) ListUsers(ctx context.Context, tenantID string, page models.Page) ([]models.User, error) {
	iter := r.collection().Where("tenant_id", "==", tenantID).Documents(ctx)
	defer iter.Stop()

	users := make([]models.User, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*firestoreUserRepository.ListUsers").Str("tenant_id", tenantID).Msg("error listing users")
			return nil, mapFirestoreError(err, nil, nil)
		}

		user, err := decodeUser(snap)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	sort.SliceStable(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID > users[j].ID
		}
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return pageOf(users, page), nil
}

// UpdateUser patches the user in one transaction. A new email is checked
// against the other users of the tenant.
func (r *firestoreUserRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	ref := r.collection().Doc(update.ID)

	var user models.User
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if user, err = decodeUser(snap); err != nil {
			return err
		}
		if user.TenantID != update.TenantID {
			return ErrUserNotFound
		}

		if update.Email != nil && *update.Email != user.Email {
			exists, err := r.taken(tx, update.TenantID, "email", *update.Email, update.ID)
			if err != nil {
				return err
			}
			if exists {
				return ErrUserAlreadyExists
			}
		}

		update.Apply(&user)
		user.UpdatedAt = r.now()
		return tx.Set(ref, user)
	})
	if err != nil {
		mapped := mapFirestoreError(err, ErrUserNotFound, ErrUserAlreadyExists)
		if !errors.Is(mapped, ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*firestoreUserRepository.UpdateUser").Str("tenant_id", update.TenantID).Msg("error updating user")
		}
		return models.User{}, mapped
	}

	return user, nil
}

func decodeUser(snap *firestore.DocumentSnapshot) (models.User, error) {
	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: user %s: %w", ErrDecodingDocument, snap.Ref.ID, err)
	}
	if user.ID == "" {
		user.ID = snap.Ref.ID
	}
	return user, nil
}
