// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/service"
	"github.com/MKhiriev/timeline/internal/store"
	"github.com/MKhiriev/timeline/internal/utils"
	"github.com/MKhiriev/timeline/models"
)

// Error codes of the "error" field of error responses.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeConflict           = "CONFLICT"
	CodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeGatewayTimeout     = "GATEWAY_TIMEOUT"
)

const internalErrorMessage = "internal server error"

type apiError struct {
	status int
	code   string

	// message replaces the error text when set.
	message string

	// detailed responses carry the full wrapped error text, which holds
	// the validation detail.
	detailed bool
}

type errorStatus struct {
	target error
	apiError
}

// errorStatusTable maps sentinel errors to responses. The first entry err
// wraps wins: a request deadline is reported as a timeout even when a store
// error wraps it, and service errors take precedence over store errors.
var errorStatusTable = []errorStatus{
	{context.DeadlineExceeded, apiError{status: http.StatusGatewayTimeout, code: CodeGatewayTimeout, message: ErrRequestTimeout.Error()}},

	{service.ErrInvalidDataProvided, apiError{status: http.StatusBadRequest, code: CodeBadRequest, detailed: true}},
	{service.ErrRegistrationFailed, apiError{status: http.StatusBadRequest, code: CodeBadRequest, message: "Registration failed"}},
	{service.ErrInvalidCredentials, apiError{status: http.StatusUnauthorized, code: CodeUnauthorized, message: "Invalid credentials"}},
	{service.ErrTokenIsExpired, apiError{status: http.StatusUnauthorized, code: CodeUnauthorized}},
	{service.ErrTokenIsInvalid, apiError{status: http.StatusUnauthorized, code: CodeUnauthorized}},
	{service.ErrForbiddenTenant, apiError{status: http.StatusForbidden, code: CodeForbidden}},
	{service.ErrTokenCreationFailed, apiError{status: http.StatusInternalServerError, code: CodeInternalError}},
	{service.ErrVersionIsNotSpecified, apiError{status: http.StatusInternalServerError, code: CodeInternalError}},

	{ErrEmptyAuthorizationHeader, apiError{status: http.StatusUnauthorized, code: CodeUnauthorized}},
	{ErrInvalidAuthorizationHeader, apiError{status: http.StatusUnauthorized, code: CodeUnauthorized}},
	{ErrMissingTenantHeader, apiError{status: http.StatusBadRequest, code: CodeBadRequest}},
	{ErrInvalidTenantHeader, apiError{status: http.StatusBadRequest, code: CodeBadRequest}},
	{ErrMalformedBody, apiError{status: http.StatusBadRequest, code: CodeBadRequest, detailed: true}},
	{utils.ErrEmptyBody, apiError{status: http.StatusBadRequest, code: CodeBadRequest}},
	{ErrInvalidPagination, apiError{status: http.StatusBadRequest, code: CodeBadRequest}},
	{ErrPayloadTooLarge, apiError{status: http.StatusRequestEntityTooLarge, code: CodePayloadTooLarge}},
	{ErrRequestTimeout, apiError{status: http.StatusGatewayTimeout, code: CodeGatewayTimeout}},
	{ErrTooManyRequests, apiError{status: http.StatusTooManyRequests, code: CodeTooManyRequests}},
	{ErrRouteNotFound, apiError{status: http.StatusNotFound, code: CodeNotFound}},
	{ErrMethodNotAllowed, apiError{status: http.StatusMethodNotAllowed, code: CodeMethodNotAllowed}},

	{store.ErrTenantNotFound, apiError{status: http.StatusNotFound, code: CodeNotFound, message: "Tenant not found"}},
	{store.ErrUserNotFound, apiError{status: http.StatusNotFound, code: CodeNotFound, message: "User not found"}},
	{store.ErrTenantAlreadyExists, apiError{status: http.StatusConflict, code: CodeConflict, message: "Tenant with this code already exists"}},
	{store.ErrUserAlreadyExists, apiError{status: http.StatusConflict, code: CodeConflict, message: "Username or email already exists in this tenant"}},
	{store.ErrStoreUnavailable, apiError{status: http.StatusServiceUnavailable, code: CodeServiceUnavailable, message: "Storage backend is unavailable"}},
}

// apiErrorFrom resolves err against errorStatusTable. Unknown errors are 500.
func apiErrorFrom(err error) (apiError, error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		err = ErrPayloadTooLarge
	}

	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry.apiError, entry.target
		}
	}
	return apiError{status: http.StatusInternalServerError, code: CodeInternalError}, nil
}

func statusFromError(err error) int {
	apiErr, _ := apiErrorFrom(err)
	return apiErr.status
}

// writeError writes the JSON error body for err. Messages of unknown errors
// are exposed only in debug mode.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, target := apiErrorFrom(err)

	var message string
	switch {
	case target == nil && h.debug:
		message = err.Error()
	case target == nil:
		message = internalErrorMessage
	case apiErr.message != "":
		message = apiErr.message
	case apiErr.detailed:
		message = err.Error()
	default:
		message = target.Error()
	}

	log := logger.FromRequest(r)
	if apiErr.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", apiErr.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", apiErr.status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: apiErr.code, Message: message}, apiErr.status)
}
