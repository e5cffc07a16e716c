// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"regexp"
	"time"
)

// TenantStatus is the lifecycle state of a tenant.
type TenantStatus string

const (
	// TenantStatusActive tenants are listed and accept logins.
	TenantStatusActive TenantStatus = "active"
	// TenantStatusSuspended tenants are kept but hidden from listings and
	// refuse logins.
	TenantStatusSuspended TenantStatus = "suspended"
	// TenantStatusArchived is the soft-deleted state.
	TenantStatusArchived TenantStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s TenantStatus) Valid() bool {
	switch s {
	case TenantStatusActive, TenantStatusSuspended, TenantStatusArchived:
		return true
	}
	return false
}

// Tenant code and name limits.
const (
	MaxTenantCodeLength = 64
	MaxTenantNameLength = 255
)

// TenantIDPattern matches tenant identifiers and codes accepted from the
// outside world (headers, path segments, request bodies).
var TenantIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// Tenant is an isolated organization. Every user and every request-scoped
// operation belongs to exactly one tenant.
type Tenant struct {
	// ID is server generated and immutable.
	ID string `json:"id" db:"id" firestore:"id"`

	// Code is the human-facing unique identifier used at login.
	Code string `json:"code" db:"code" firestore:"code"`

	Name   string       `json:"name" db:"name" firestore:"name"`
	Status TenantStatus `json:"status" db:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at" firestore:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" firestore:"updated_at"`
}

// IsActive reports whether the tenant accepts logins.
func (t Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}

// TableName returns the name of the database table
// associated with the Tenant model.
func (t Tenant) TableName() string {
	return "tenant"
}

// TenantUpdate is a partial update of a tenant. Nil fields are left as is.
type TenantUpdate struct {
	ID     string
	Name   *string
	Status *TenantStatus
}

// Apply copies the set fields of u onto t.
func (u TenantUpdate) Apply(t *Tenant) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
}
