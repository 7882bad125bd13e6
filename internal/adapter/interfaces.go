// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the user-config endpoint.
//
// [UserConfigAdapter] hides the HTTP transport from the command-line
// client. Non-2xx responses are mapped to the sentinel errors in errors.go
// so callers can use [errors.Is] (for example [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-config/models"
)

// UserConfigAdapter performs the four user-config operations for the
// caller identified by the bearer token.
type UserConfigAdapter interface {
	// SetToken stores the bearer token sent with every request.
	SetToken(token string)

	// Create writes the caller's record in role, replacing any existing one.
	Create(ctx context.Context, role string, payload models.UserConfigPayload) (models.SuccessResponse, error)

	// Get reads the caller's record in role.
	Get(ctx context.Context, role string) (models.UserConfig, error)

	// Update changes the provided fields of the caller's record in role.
	Update(ctx context.Context, role string, payload models.UserConfigPayload) (models.SuccessResponse, error)

	// Delete removes the caller's record in role. Deleting a missing record
	// succeeds.
	Delete(ctx context.Context, role string) (models.SuccessResponse, error)
}
