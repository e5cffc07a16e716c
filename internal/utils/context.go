// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/timeline/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// ClaimsCtxKey stores the verified access-token claims of the caller.
	ClaimsCtxKey = contextKey("claims")
	// RequestIDCtxKey stores the request ID assigned by the request ID
	// middleware.
	RequestIDCtxKey = contextKey("requestID")
	// CorrelationIDCtxKey stores the caller supplied correlation ID.
	CorrelationIDCtxKey = contextKey("correlationID")
	// TenantIDCtxKey stores the tenant selected by the tenant header.
	TenantIDCtxKey = contextKey("tenantID")
)

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the caller's claims.
//
// Returns the claims and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext returns the request ID or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDCtxKey).(string)
	return id
}

// WithCorrelationID returns a copy of ctx carrying the correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDCtxKey, id)
}

// GetCorrelationIDFromContext returns the correlation ID or "".
func GetCorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(CorrelationIDCtxKey).(string)
	return id
}

// WithTenantID returns a copy of ctx carrying the selected tenant.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, TenantIDCtxKey, tenantID)
}

// GetTenantIDFromContext returns the selected tenant and whether it was set.
func GetTenantIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(TenantIDCtxKey).(string)
	return id, ok && id != ""
}
