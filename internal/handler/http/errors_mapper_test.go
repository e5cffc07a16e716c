// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/service"
	"github.com/MKhiriev/timeline/internal/store"
	"github.com/MKhiriev/timeline/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{fmt.Errorf("%w: code is required", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{service.ErrRegistrationFailed, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrTokenIsExpired, http.StatusUnauthorized},
		{service.ErrTokenIsInvalid, http.StatusUnauthorized},
		{service.ErrForbiddenTenant, http.StatusForbidden},
		{service.ErrTokenCreationFailed, http.StatusInternalServerError},
		{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{ErrMissingTenantHeader, http.StatusBadRequest},
		{ErrInvalidTenantHeader, http.StatusBadRequest},
		{ErrMalformedBody, http.StatusBadRequest},
		{utils.ErrEmptyBody, http.StatusBadRequest},
		{ErrInvalidPagination, http.StatusBadRequest},
		{ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{&http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge},
		{fmt.Errorf("decoding: %w", &http.MaxBytesError{Limit: 10}), http.StatusRequestEntityTooLarge},
		{ErrTooManyRequests, http.StatusTooManyRequests},
		{ErrRouteNotFound, http.StatusNotFound},
		{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{store.ErrTenantNotFound, http.StatusNotFound},
		{store.ErrUserNotFound, http.StatusNotFound},
		{store.ErrTenantAlreadyExists, http.StatusConflict},
		{fmt.Errorf("creating user: %w", store.ErrUserAlreadyExists), http.StatusConflict},
		{store.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{ErrRequestTimeout, http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_SeveralSentinelsResolveByPrecedence(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "deadline inside store error",
			err:  fmt.Errorf("%w: %w", store.ErrStoreUnavailable, context.DeadlineExceeded),
			want: http.StatusGatewayTimeout,
		},
		{
			name: "service error over store error",
			err:  errors.Join(store.ErrUserNotFound, service.ErrTokenIsInvalid),
			want: http.StatusUnauthorized,
		},
		{
			name: "conflict and unavailable",
			err:  errors.Join(store.ErrStoreUnavailable, store.ErrTenantAlreadyExists),
			want: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the answer must not depend on evaluation order
			for range 50 {
				assert.Equal(t, tt.want, statusFromError(tt.err))
			}
		})
	}
}

func TestErrorStatusTable_TargetsAreUnique(t *testing.T) {
	seen := make(map[error]bool, len(errorStatusTable))
	for _, entry := range errorStatusTable {
		assert.False(t, seen[entry.target], "duplicate entry for %v", entry.target)
		seen[entry.target] = true
	}
}

func TestWriteError_Messages(t *testing.T) {
	tests := []struct {
		name        string
		debug       bool
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "fixed message",
			err:         fmt.Errorf("lookup: %w", store.ErrTenantNotFound),
			wantCode:    CodeNotFound,
			wantMessage: "Tenant not found",
		},
		{
			name:        "detailed validation message",
			err:         fmt.Errorf("%w: code is required", service.ErrInvalidDataProvided),
			wantCode:    CodeBadRequest,
			wantMessage: "invalid data provided: code is required",
		},
		{
			name:        "sentinel text",
			err:         fmt.Errorf("wrapped: %w", service.ErrForbiddenTenant),
			wantCode:    CodeForbidden,
			wantMessage: service.ErrForbiddenTenant.Error(),
		},
		{
			name:        "unknown error hidden",
			err:         errors.New("pq: connection reset"),
			wantCode:    CodeInternalError,
			wantMessage: internalErrorMessage,
		},
		{
			name:        "unknown error exposed in debug",
			debug:       true,
			err:         errors.New("pq: connection reset"),
			wantCode:    CodeInternalError,
			wantMessage: "pq: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cfg := testServerConfig()
			cfg.App.Debug = tt.debug
			h := NewHandler(newTestServices(), nil, cfg, logger.Nop())
			rr := httptest.NewRecorder()

			// Act
			h.writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			// Assert
			resp := decodeError(t, rr)
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}
