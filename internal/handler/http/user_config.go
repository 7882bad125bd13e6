// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-user-config/internal/utils"
	"github.com/MKhiriev/go-user-config/models"
)

// userConfigKey builds the document key from the values stored by the auth
// and role middleware. Missing values yield empty fields that the service
// layer rejects.
func userConfigKey(ctx context.Context) models.UserConfigKey {
	uid, _ := utils.GetUIDFromContext(ctx)
	role, _ := utils.GetRoleFromContext(ctx)

	return models.UserConfigKey{Role: role, UID: uid}
}

func (h *Handler) createUserConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload, _ := utils.GetPayloadFromContext(ctx)

	if err := h.services.UserConfigService.Create(ctx, userConfigKey(ctx), payload); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, msgCreated)
}

func (h *Handler) getUserConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	record, err := h.services.UserConfigService.Get(ctx, userConfigKey(ctx))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) updateUserConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload, _ := utils.GetPayloadFromContext(ctx)

	if err := h.services.UserConfigService.Update(ctx, userConfigKey(ctx), payload); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, msgUpdated)
}

func (h *Handler) deleteUserConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.services.UserConfigService.Delete(ctx, userConfigKey(ctx)); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, msgDeleted)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, msgMethodNotAllowed, http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteText(w, msgNotFound, http.StatusNotFound)
}

// dispatchUserConfig selects the CRUD handler by method.
func (h *Handler) dispatchUserConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createUserConfig(w, r)
	case http.MethodGet:
		h.getUserConfig(w, r)
	case http.MethodPatch:
		h.updateUserConfig(w, r)
	case http.MethodDelete:
		h.deleteUserConfig(w, r)
	default:
		methodNotAllowed(w, r)
	}
}
