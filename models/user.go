// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account inside a tenant. Username and email are unique
// per tenant, not globally.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	ID       string `json:"id" db:"id" firestore:"id"`
	TenantID string `json:"tenant_id" db:"tenant_id" firestore:"tenant_id"`
	Username string `json:"username" db:"username" firestore:"username"`
	Email    string `json:"email" db:"email" firestore:"email"`

	// HashedPassword is the bcrypt hash of the SHA-256 pre-hashed password.
	// It is never serialized to API responses.
	HashedPassword string `json:"-" db:"hashed_password" firestore:"hashed_password"`

	IsActive bool `json:"is_active" db:"is_active" firestore:"is_active"`

	CreatedAt time.Time `json:"created_at" db:"created_at" firestore:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" firestore:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "app_user"
}

// UserUpdate is a partial update of a user. Nil fields are left as is.
type UserUpdate struct {
	TenantID       string
	ID             string
	Email          *string
	HashedPassword *string
	IsActive       *bool
}

// Apply copies the set fields of u onto user.
func (u UserUpdate) Apply(user *User) {
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.HashedPassword != nil {
		user.HashedPassword = *u.HashedPassword
	}
	if u.IsActive != nil {
		user.IsActive = *u.IsActive
	}
}

// Page is an offset window over a listing.
type Page struct {
	Skip  int
	Limit int
}

// Page limits.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// Normalize clamps p into the accepted range: negative skip becomes zero,
// a non-positive limit becomes DefaultPageLimit and larger limits are capped
// at MaxPageLimit.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
