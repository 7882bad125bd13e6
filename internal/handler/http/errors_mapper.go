// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/internal/service"
	"github.com/MKhiriev/go-user-config/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	ErrInvalidJSONBody: {http.StatusBadRequest, msgInvalidJSON},
	ErrMissingRole:     {http.StatusBadRequest, msgMissingRole},

	service.ErrMissingAuthorization:    {http.StatusUnauthorized, msgMissingAuthorization},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, msgInvalidToken},

	service.ErrValidationNoRole:                         {http.StatusBadRequest, msgMissingRole},
	service.ErrValidationNoUID:                          {http.StatusUnauthorized, msgInvalidToken},
	service.ErrUnauthorizedAccessToDifferentUserConfigs: {http.StatusForbidden, msgForbidden},
	service.ErrUserConfigNotFound:                       {http.StatusNotFound, msgUserConfigNotFound},
}

// responseFromError maps err to the status code and client message. Anything
// unknown is an internal failure; its text is never sent to the client.
func responseFromError(err error) errorResponse {
	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			return response
		}
	}
	return errorResponse{http.StatusInternalServerError, msgOperationFailed}
}

// writeError logs err and writes the mapped JSON error body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	response := responseFromError(err)

	event := log.Warn()
	if response.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", response.status).Msg("request failed")

	utils.WriteError(w, response.message, response.status)
}
