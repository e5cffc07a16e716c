// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/timeline/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	tenantTable = "tenant"
	userTable   = "app_user"
)

var (
	tenantColumns = []string{"id", "code", "name", "status", "created_at", "updated_at"}
	userColumns   = []string{"id", "tenant_id", "username", "email", "hashed_password", "is_active", "created_at", "updated_at"}
)

// psql builds PostgreSQL statements with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildQuery(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── tenant ──

func buildInsertTenantQuery(t models.Tenant) (string, []any, error) {
	return buildQuery(psql.Insert(tenantTable).
		Columns(tenantColumns...).
		Values(t.ID, t.Code, t.Name, string(t.Status), t.CreatedAt, t.UpdatedAt).
		Suffix(returning(tenantColumns)))
}

func buildSelectTenantQuery(column, value string) (string, []any, error) {
	return buildQuery(psql.Select(tenantColumns...).
		From(tenantTable).
		Where(sq.Eq{column: value}))
}

func buildListActiveTenantsQuery(page models.Page) (string, []any, error) {
	page = page.Normalize()
	return buildQuery(psql.Select(tenantColumns...).
		From(tenantTable).
		Where(sq.Eq{"status": string(models.TenantStatusActive)}).
		OrderBy("code ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Skip)))
}

// buildUpdateTenantQuery sets only the fields present in update; updated_at
// is always refreshed.
func buildUpdateTenantQuery(update models.TenantUpdate, now time.Time) (string, []any, error) {
	b := psql.Update(tenantTable)
	if update.Name != nil {
		b = b.Set("name", *update.Name)
	}
	if update.Status != nil {
		b = b.Set("status", string(*update.Status))
	}

	return buildQuery(b.Set("updated_at", now).
		Where(sq.Eq{"id": update.ID}).
		Suffix(returning(tenantColumns)))
}

// ── user ──

func buildInsertUserQuery(u models.User) (string, []any, error) {
	return buildQuery(psql.Insert(userTable).
		Columns(userColumns...).
		Values(u.ID, u.TenantID, u.Username, u.Email, u.HashedPassword, u.IsActive, u.CreatedAt, u.UpdatedAt).
		Suffix(returning(userColumns)))
}

func buildSelectUserQuery(tenantID, column, value string) (string, []any, error) {
	return buildQuery(psql.Select(userColumns...).
		From(userTable).
		Where(sq.Eq{"tenant_id": tenantID}).
		Where(sq.Eq{column: value}))
}

func buildListUsersQuery(tenantID string, page models.Page) (string, []any, error) {
	page = page.Normalize()
	return buildQuery(psql.Select(userColumns...).
		From(userTable).
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Skip)))
}

func buildUpdateUserQuery(update models.UserUpdate, now time.Time) (string, []any, error) {
	b := psql.Update(userTable)
	if update.Email != nil {
		b = b.Set("email", *update.Email)
	}
	if update.HashedPassword != nil {
		b = b.Set("hashed_password", *update.HashedPassword)
	}
	if update.IsActive != nil {
		b = b.Set("is_active", *update.IsActive)
	}

	return buildQuery(b.Set("updated_at", now).
		Where(sq.Eq{"tenant_id": update.TenantID}).
		Where(sq.Eq{"id": update.ID}).
		Suffix(returning(userColumns)))
}
