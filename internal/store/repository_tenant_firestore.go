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

// firestoreTenantRepository is the document-store implementation of
// [TenantRepository]. Each tenant is one document of the "tenants"
// collection keyed by tenant ID.
type firestoreTenantRepository struct {
	client *firestore.Client
	logger *logger.Logger
	now    func() time.Time
}

// NewFirestoreTenantRepository constructs a [TenantRepository] on top of
// an existing Firestore client.
func NewFirestoreTenantRepository(client *firestore.Client, logger *logger.Logger) TenantRepository {
	logger.Debug().Msg("creating firestore tenant repository")
	return &firestoreTenantRepository{
		client: client,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *firestoreTenantRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(CollectionTenants)
}

// CreateTenant stores the tenant. The code lookup and the write run in one
// transaction, so two concurrent creates with the same code cannot both
// succeed.
func (r *firestoreTenantRepository) CreateTenant(ctx context.Context, tenant models.Tenant) (models.Tenant, error) {
	ref := r.collection().Doc(tenant.ID)
	byCode := r.collection().Where("code", "==", tenant.Code).Limit(1)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docs, err := tx.Documents(byCode).GetAll()
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			return ErrTenantAlreadyExists
		}
		return tx.Create(ref, tenant)
	})
	if err != nil {
		mapped := mapFirestoreError(err, ErrTenantNotFound, ErrTenantAlreadyExists)
		logger.FromContext(ctx).Err(err).Str("func", "*firestoreTenantRepository.CreateTenant").Str("code", tenant.Code).Msg("error creating tenant")
		return models.Tenant{}, mapped
	}

	return tenant, nil
}

// GetTenantByID reads the document keyed by id.
func (r *firestoreTenantRepository) GetTenantByID(ctx context.Context, id string) (models.Tenant, error) {
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		return models.Tenant{}, mapFirestoreError(err, ErrTenantNotFound, nil)
	}
	return decodeTenant(snap)
}

// GetTenantByCode queries the collection by the code field.
func (r *firestoreTenantRepository) GetTenantByCode(ctx context.Context, code string) (models.Tenant, error) {
	docs, err := r.collection().Where("code", "==", code).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*firestoreTenantRepository.GetTenantByCode").Msg("error querying tenant")
		return models.Tenant{}, mapFirestoreError(err, ErrTenantNotFound, nil)
	}
	if len(docs) == 0 {
		return models.Tenant{}, ErrTenantNotFound
	}
	return decodeTenant(docs[0])
}

// ListActiveTenants filters on status and orders by code in memory. Ordering
// server side would need a composite index the service cannot create.
func (r *firestoreTenantRepository) ListActiveTenants(ctx context.Context, page models.Page) ([]models.Tenant, error) {
	iter := r.collection().Where("status", "==", string(models.TenantStatusActive)).Documents(ctx)
	defer iter.Stop()

	tenants := make([]models.Tenant, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*firestoreTenantRepository.ListActiveTenants").Msg("error listing tenants")
			return nil, mapFirestoreError(err, nil, nil)
		}

		tenant, err := decodeTenant(snap)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, tenant)
	}

	sort.Slice(tenants, func(i, j int) bool { return tenants[i].Code < tenants[j].Code })
	return pageOf(tenants, page), nil
}

// UpdateTenant reads, patches and writes the document in one transaction.
func (r *firestoreTenantRepository) UpdateTenant(ctx context.Context, update models.TenantUpdate) (models.Tenant, error) {
	ref := r.collection().Doc(update.ID)

	var tenant models.Tenant
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if tenant, err = decodeTenant(snap); err != nil {
			return err
		}

		update.Apply(&tenant)
		tenant.UpdatedAt = r.now()
		return tx.Set(ref, tenant)
	})
	if err != nil {
		mapped := mapFirestoreError(err, ErrTenantNotFound, nil)
		if !errors.Is(mapped, ErrTenantNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*firestoreTenantRepository.UpdateTenant").Str("id", update.ID).Msg("error updating tenant")
		}
		return models.Tenant{}, mapped
	}

	return tenant, nil
}

func decodeTenant(snap *firestore.DocumentSnapshot) (models.Tenant, error) {
	var tenant models.Tenant
	if err := snap.DataTo(&tenant); err != nil {
		return models.Tenant{}, fmt.Errorf("%w: tenant %s: %w", ErrDecodingDocument, snap.Ref.ID, err)
	}
	if tenant.ID == "" {
		tenant.ID = snap.Ref.ID
	}
	return tenant, nil
}

// pageOf returns the window of items selected by page.
func pageOf[T any](items []T, page models.Page) []T {
	page = page.Normalize()
	if page.Skip >= len(items) {
		return []T{}
	}

	end := page.Skip + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Skip:end]
}
