// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIPrefix is the mount point of every API route.
const APIPrefix = "/api/v1"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withRequestID,
		h.withCorrelationID,
		withLogging,
	)
	if h.metrics != nil {
		router.Use(h.metrics.Instrument)
	}
	router.Use(
		h.withTimeout,
		h.withBodyLimit,
		withSecurityHeaders,
		h.withCORS,
		middleware.Compress(5, "application/json"),
	)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route(APIPrefix, func(r chi.Router) {
		r.Get("/health", h.liveness)
		r.Get("/health/ready", h.readiness)
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.With(h.withRateLimit).Post("/register", h.register)
			r.With(h.withRateLimit).Post("/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/me", h.getMe)
				r.Put("/me", h.updateMe)
				r.Delete("/me", h.deactivateMe)
			})
		})

		r.Route("/tenants", func(r chi.Router) {
			r.Post("/", h.createTenant)
			r.Get("/", h.listTenants)
			r.Get("/{tenantID}", h.getTenant)
			r.Put("/{tenantID}", h.updateTenant)
			r.Patch("/{tenantID}/status", h.changeTenantStatus)
			r.Delete("/{tenantID}", h.archiveTenant)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.auth, h.withTenant)
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{userID}", h.getUser)
			r.Post("/{userID}/activate", h.activateUser)
			r.Post("/{userID}/deactivate", h.deactivateUser)
		})
	})

	return router
}
