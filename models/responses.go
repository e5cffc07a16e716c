// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TenantCreated is returned once, right after a tenant is created. It is the
// only place the admin password is ever shown.
type TenantCreated struct {
	TenantID      string `json:"tenant_id"`
	TenantCode    string `json:"tenant_code"`
	TenantName    string `json:"tenant_name"`
	AdminUsername string `json:"admin_username"`
	AdminPassword string `json:"admin_password"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Health statuses.
const (
	HealthStatusOK       = "ok"
	HealthStatusReady    = "ready"
	HealthStatusNotReady = "not_ready"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Backend string            `json:"backend"`
	Checks  map[string]string `json:"checks"`
}

// VersionResponse is the body of GET /version.
type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Backend string `json:"backend"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"date,omitempty"`
}
