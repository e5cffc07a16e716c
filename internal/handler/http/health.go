// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/timeline/internal/utils"
)

func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.HealthService.Liveness(r.Context()), http.StatusOK)
}

// readiness answers 503 when the backend cannot be reached.
func (h *Handler) readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := h.services.HealthService.Readiness(r.Context())

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	_, _ = utils.WriteJSON(w, resp, status)
}
