// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-config/internal/utils"
)

// auth authenticates the caller through [service.AuthService] and stores the
// uid in the request context under [utils.UIDCtxKey].
//
// Failures are answered with 401 and one of two fixed messages; the cause is
// only logged. The token itself is never logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity, err := h.services.AuthService.Authenticate(ctx, r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUID(ctx, identity.UID)))
	})
}
