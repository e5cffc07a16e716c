// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/logger"
)

// firestoreBackend is the document-store [Backend].
type firestoreBackend struct {
	client  *firestore.Client
	tenants TenantRepository
	users   UserRepository
}

// NewFirestoreBackend builds the Firestore client and its repositories.
func NewFirestoreBackend(ctx context.Context, cfg config.Firestore, log *logger.Logger) (Backend, error) {
	client, err := NewFirestoreClient(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return newFirestoreBackend(client, log), nil
}

func newFirestoreBackend(client *firestore.Client, log *logger.Logger) *firestoreBackend {
	return &firestoreBackend{
		client:  client,
		tenants: NewFirestoreTenantRepository(client, log),
		users:   NewFirestoreUserRepository(client, log),
	}
}

func (b *firestoreBackend) Kind() config.Backend { return config.BackendFirestore }

func (b *firestoreBackend) Tenants() TenantRepository { return b.tenants }

func (b *firestoreBackend) Users() UserRepository { return b.users }

// Ping reads at most one tenant document.
func (b *firestoreBackend) Ping(ctx context.Context) error {
	if _, err := b.client.Collection(CollectionTenants).Limit(1).Documents(ctx).GetAll(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (b *firestoreBackend) Close() error {
	return b.client.Close()
}
