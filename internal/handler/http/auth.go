// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/service"
	"github.com/MKhiriev/timeline/internal/utils"
	"github.com/MKhiriev/timeline/models"
)

// TokenType is the token_type of login responses.
const TokenType = "bearer"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Str("tenant_id", user.TenantID).Msg("user registered")
	_, _ = utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.String(),
		TokenType:   TokenType,
		ExpiresIn:   int64(h.services.AuthService.TokenTTL().Seconds()),
	}, http.StatusOK)
}

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrTokenIsInvalid)
		return
	}

	user, err := h.services.UserService.Me(r.Context(), claims)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrTokenIsInvalid)
		return
	}

	var req models.UpdateMeRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateMe(r.Context(), claims, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deactivateMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrTokenIsInvalid)
		return
	}

	if err := h.services.UserService.DeactivateMe(r.Context(), claims); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
