// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/timeline/internal/utils"
	"github.com/MKhiriev/timeline/models"
	"github.com/go-chi/chi/v5"
)

// Every handler below runs behind withTenant, so the tenant in the context
// is the caller's own.

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := utils.GetTenantIDFromContext(r.Context())

	page, err := pageFromQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context(), tenantID, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := utils.GetTenantIDFromContext(r.Context())

	var req models.CreateUserRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), tenantID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := utils.GetTenantIDFromContext(r.Context())

	user, err := h.services.UserService.GetUser(r.Context(), tenantID, chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) activateUser(w http.ResponseWriter, r *http.Request) {
	h.setUserActive(w, r, true)
}

func (h *Handler) deactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setUserActive(w, r, false)
}

func (h *Handler) setUserActive(w http.ResponseWriter, r *http.Request, active bool) {
	tenantID, _ := utils.GetTenantIDFromContext(r.Context())

	user, err := h.services.UserService.SetUserActive(r.Context(), tenantID, chi.URLParam(r, "userID"), active)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
