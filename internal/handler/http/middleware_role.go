// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-user-config/internal/utils"
	"github.com/MKhiriev/go-user-config/models"
)

const (
	roleQueryParam = "role"

	// maxBodyBytes caps the size of a POST or PATCH body.
	maxBodyBytes = 1 << 20
)

// withRole resolves the collection of the request. The "role" query
// parameter wins; the "role" field of the JSON body is used only when the
// query has none. Bodies are read for POST and PATCH only, and the decoded
// payload is kept in the context for the handler.
func (h *Handler) withRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload models.UserConfigPayload
		if hasBody(r.Method) {
			decoded, err := decodePayload(http.MaxBytesReader(w, r.Body, maxBodyBytes))
			if err != nil {
				h.writeError(w, r, err)
				return
			}
			payload = decoded
			ctx = utils.WithPayload(ctx, payload)
		}

		role := r.URL.Query().Get(roleQueryParam)
		if role == "" && models.Provided(payload.Role) {
			role = *payload.Role
		}
		if role == "" {
			h.writeError(w, r, ErrMissingRole)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithRole(ctx, role)))
	})
}

func hasBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPatch
}

// decodePayload reads the JSON object of a POST or PATCH. An empty body is
// an empty payload; only syntactically invalid JSON or a non-object body is
// rejected.
func decodePayload(body io.Reader) (models.UserConfigPayload, error) {
	var payload models.UserConfigPayload

	raw, err := io.ReadAll(body)
	if err != nil {
		return payload, fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return payload, nil
	}

	if err = json.Unmarshal(raw, &payload); err != nil {
		return models.UserConfigPayload{}, fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}

	return payload, nil
}
