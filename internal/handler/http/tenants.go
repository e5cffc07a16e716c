// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/utils"
	"github.com/MKhiriev/timeline/models"
	"github.com/go-chi/chi/v5"
)

// createTenant answers 201 with the one-time admin credentials.
func (h *Handler) createTenant(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTenantRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.services.TenantService.CreateTenant(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("tenant_id", created.TenantID).Msg("tenant created")
	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listTenants(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	tenants, err := h.services.TenantService.ListTenants(r.Context(), page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, tenants, http.StatusOK)
}

func (h *Handler) getTenant(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.services.TenantService.GetTenant(r.Context(), chi.URLParam(r, "tenantID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, tenant, http.StatusOK)
}

func (h *Handler) updateTenant(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTenantRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	tenant, err := h.services.TenantService.UpdateTenant(r.Context(), chi.URLParam(r, "tenantID"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, tenant, http.StatusOK)
}

func (h *Handler) changeTenantStatus(w http.ResponseWriter, r *http.Request) {
	var req models.TenantStatusRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	tenant, err := h.services.TenantService.ChangeTenantStatus(r.Context(), chi.URLParam(r, "tenantID"), req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, tenant, http.StatusOK)
}

// archiveTenant is the soft delete: the tenant is kept with status archived.
func (h *Handler) archiveTenant(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TenantService.ArchiveTenant(r.Context(), chi.URLParam(r, "tenantID")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
