// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
)

// withTimeout bounds the request context by the configured request timeout.
// Handlers see the deadline through their context; errors caused by it map
// to 504. A handler that returns without writing anything after the
// deadline gets a 504 as well.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	timeout := h.cfg.RequestTimeout.Duration()
	if timeout <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		tw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(tw, r.WithContext(ctx))

		if !tw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			h.writeError(w, r, ErrRequestTimeout)
		}
	})
}

// withBodyLimit rejects bodies larger than the configured maximum with 413.
// A declared Content-Length is checked up front; chunked bodies are capped
// by http.MaxBytesReader and fail while being decoded.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	limit := h.cfg.MaxBodyBytes
	if limit <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > limit {
			h.writeError(w, r, ErrPayloadTooLarge)
			return
		}
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
