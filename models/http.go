// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateTenantRequest is the body of POST /tenants.
type CreateTenantRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`

	// AdminPassword is optional; a random password is generated when empty.
	AdminPassword string `json:"admin_password,omitempty"`
}

// UpdateTenantRequest is the body of PUT /tenants/{tenantID}.
type UpdateTenantRequest struct {
	Name   *string       `json:"name,omitempty"`
	Status *TenantStatus `json:"status,omitempty"`
}

// TenantStatusRequest is the body of PATCH /tenants/{tenantID}/status.
type TenantStatusRequest struct {
	Status TenantStatus `json:"status"`
}

// LoginRequest is the body of POST /auth/login. Users identify their tenant
// by code, not by internal ID.
type LoginRequest struct {
	TenantCode string `json:"tenant_code"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	TenantCode string `json:"tenant_code"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// UpdateMeRequest is the body of PUT /auth/me.
type UpdateMeRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
