// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/timeline/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates
// it via [service.AuthService.ParseToken], resolves the caller via
// [service.UserService.Me] and, on success, stores the claims in the
// request context (see [utils.WithClaims]) and adds user_id and tenant_id
// to the request logger.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the "Authorization" header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header is not "Bearer <token>" ([ErrInvalidAuthorizationHeader]);
//   - the token is expired ([service.ErrTokenIsExpired]) or otherwise
//     invalid ([service.ErrTokenIsInvalid]);
//   - the token's user is gone or deactivated, or its tenant is no longer
//     active ([service.ErrTokenIsInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if _, err = h.services.UserService.Me(ctx, claims); err != nil {
			h.writeError(w, r, err)
			return
		}

		l := zerolog.Ctx(ctx).With().
			Str("user_id", claims.UserID()).
			Str("tenant_id", claims.TenantID).
			Logger()
		ctx = utils.WithClaims(l.WithContext(ctx), claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
