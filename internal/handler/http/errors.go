// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Client-facing messages. These strings are part of the wire contract.
const (
	msgMissingAuthorization = "Missing or invalid Authorization header"
	msgInvalidToken         = "Invalid or expired token"
	msgMissingRole          = "Missing 'role' in query or body."
	msgInvalidJSON          = "Invalid JSON body."
	msgUserConfigNotFound   = "User config not found."
	msgMethodNotAllowed     = "Method Not Allowed."
	msgOperationFailed      = "Operation failed."
	msgForbidden            = "Forbidden."
	msgNotFound             = "Not Found"

	msgCreated = "Created successfully."
	msgUpdated = "Updated successfully."
	msgDeleted = "Deleted successfully."
)

var (
	// ErrInvalidJSONBody is returned when a POST or PATCH body is not a JSON
	// object of string fields.
	ErrInvalidJSONBody = errors.New("invalid JSON body")

	// ErrMissingRole is returned when neither the query string nor the body
	// names a role.
	ErrMissingRole = errors.New("missing role in query or body")
)
