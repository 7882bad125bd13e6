// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-user-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserConfigRepository persists user configuration documents keyed by
// (role, uid).
type UserConfigRepository interface {
	// Set writes the full record, replacing any existing one.
	Set(ctx context.Context, config models.UserConfig) error
	// Get returns the stored record. found is false when there is none.
	Get(ctx context.Context, key models.UserConfigKey) (config models.UserConfig, found bool, err error)
	// Update merges the provided fields into an existing record and returns
	// ErrUserConfigNotFound when the record does not exist.
	Update(ctx context.Context, key models.UserConfigKey, update models.UserConfigUpdate) error
	// Delete removes the record. Deleting a missing record is not an error.
	Delete(ctx context.Context, key models.UserConfigKey) error
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
