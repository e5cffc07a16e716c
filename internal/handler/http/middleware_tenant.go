// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/timeline/internal/service"
	"github.com/MKhiriev/timeline/internal/utils"
	"github.com/MKhiriev/timeline/models"
)

// withTenant selects the tenant of a tenant scoped route from the tenant
// header. It must run after auth: the header has to name the tenant the
// caller's token was issued for.
func (h *Handler) withTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.Header.Get(h.cfg.TenantHeader)
		switch {
		case tenantID == "":
			h.writeError(w, r, ErrMissingTenantHeader)
			return
		case !models.TenantIDPattern.MatchString(tenantID):
			h.writeError(w, r, ErrInvalidTenantHeader)
			return
		}

		claims, ok := utils.GetClaimsFromContext(r.Context())
		if !ok || claims.TenantID != tenantID {
			h.writeError(w, r, service.ErrForbiddenTenant)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithTenantID(r.Context(), tenantID)))
	})
}
