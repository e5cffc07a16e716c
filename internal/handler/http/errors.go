// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingTenantHeader is returned when a tenant scoped route is
	// called without the tenant header.
	ErrMissingTenantHeader = errors.New("tenant header is required")

	// ErrInvalidTenantHeader is returned when the tenant header does not
	// match [a-zA-Z0-9_-]{1,64}.
	ErrInvalidTenantHeader = errors.New("tenant header has an invalid format")

	ErrMalformedBody     = errors.New("malformed request body")
	ErrInvalidPagination = errors.New("skip must be >= 0 and limit must be between 1 and 1000")
	ErrPayloadTooLarge   = errors.New("request body is too large")
	ErrRequestTimeout    = errors.New("request timed out")
	ErrTooManyRequests   = errors.New("too many requests")
	ErrRouteNotFound     = errors.New("route not found")
	ErrMethodNotAllowed  = errors.New("method not allowed")
)
