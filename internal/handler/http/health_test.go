// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/timeline/internal/service"
	"github.com/MKhiriev/timeline/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveness(t *testing.T) {
	h := newTestHandler(newTestServices())

	rr := do(t, h, http.MethodGet, "/api/v1/health", nil, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		ready      bool
		wantStatus int
		wantBody   string
		wantCheck  string
	}{
		{name: "ready", ready: true, wantStatus: http.StatusOK, wantBody: models.HealthStatusReady, wantCheck: service.CheckOK},
		{name: "backend down", ready: false, wantStatus: http.StatusServiceUnavailable, wantBody: models.HealthStatusNotReady, wantCheck: service.CheckUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.HealthService = &fakeHealthService{ready: tt.ready}
			h := newTestHandler(services)

			rr := do(t, h, http.MethodGet, "/api/v1/health/ready", nil, nil)

			require.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeInto[models.ReadinessResponse](t, rr)
			assert.Equal(t, tt.wantBody, resp.Status)
			assert.Equal(t, "postgres", resp.Backend)
			assert.Equal(t, tt.wantCheck, resp.Checks[service.CheckBackend])
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(newTestServices())

	rr := do(t, h, http.MethodGet, "/api/v1/version", nil, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeInto[models.VersionResponse](t, rr)
	assert.Equal(t, "timeline", resp.Name)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "postgres", resp.Backend)
	assert.NotContains(t, rr.Body.String(), "commit", "empty build fields are omitted")
}
