// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the timeline REST API.
//
// The primary abstraction is [ServerAdapter], which hides the transport from
// callers such as the container health probe. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go by
// mapHTTPError, so callers can use [errors.Is] (e.g. [ErrUnavailable] for
// 503, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/timeline/models"
)

// ServerAdapter defines communication with a timeline server.
type ServerAdapter interface {
	// Liveness calls GET /health.
	Liveness(ctx context.Context) (models.HealthResponse, error)

	// Readiness calls GET /health/ready. A 503 answer is returned as
	// [ErrUnavailable] together with the decoded body, so callers can
	// report which check failed.
	Readiness(ctx context.Context) (models.ReadinessResponse, error)

	// Version calls GET /version.
	Version(ctx context.Context) (models.VersionResponse, error)
}
