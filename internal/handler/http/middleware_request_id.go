// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/timeline/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxTraceIDLength caps caller supplied request and correlation IDs so they
// cannot bloat logs.
const maxTraceIDLength = 128

// withRequestID forwards the caller's request ID or generates one, echoes it
// in the response and attaches a child logger carrying it to the context.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get(h.cfg.RequestIDHeader)
		if requestID == "" || len(requestID) > maxTraceIDLength {
			requestID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		ctx = utils.WithRequestID(l.WithContext(ctx), requestID)

		w.Header().Set(h.cfg.RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withCorrelationID propagates the caller's correlation ID, falling back to
// the request ID.
func (h *Handler) withCorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		correlationID := r.Header.Get(h.cfg.CorrelationIDHeader)
		if correlationID == "" || len(correlationID) > maxTraceIDLength {
			correlationID = utils.GetRequestIDFromContext(ctx)
		}
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		l := zerolog.Ctx(ctx).With().Str("correlation_id", correlationID).Logger()
		ctx = utils.WithCorrelationID(l.WithContext(ctx), correlationID)

		w.Header().Set(h.cfg.CorrelationIDHeader, correlationID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
