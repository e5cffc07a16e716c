// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/logger"
)

// postgresBackend is the relational [Backend].
type postgresBackend struct {
	db      *DB
	tenants TenantRepository
	users   UserRepository
}

// NewPostgresBackend connects to PostgreSQL and returns the relational
// backend. The schema is expected to be migrated already.
func NewPostgresBackend(ctx context.Context, cfg config.DB, log *logger.Logger) (Backend, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return newPostgresBackend(db, log), nil
}

func newPostgresBackend(db *DB, log *logger.Logger) *postgresBackend {
	return &postgresBackend{
		db:      db,
		tenants: NewTenantRepository(db, log),
		users:   NewUserRepository(db, log),
	}
}

func (b *postgresBackend) Kind() config.Backend { return config.BackendPostgres }

func (b *postgresBackend) Tenants() TenantRepository { return b.tenants }

func (b *postgresBackend) Users() UserRepository { return b.users }

// Ping runs PingContext on the pool. Any failure is reported as
// [ErrStoreUnavailable].
func (b *postgresBackend) Ping(ctx context.Context) error {
	if err := b.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (b *postgresBackend) Close() error {
	return b.db.Close()
}
