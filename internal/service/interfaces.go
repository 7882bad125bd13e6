// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserConfigService applies the record rules of the user-config endpoint on
// top of a document store.
type UserConfigService interface {
	// Create builds a record from payload and writes it at key, replacing
	// any previous record.
	Create(ctx context.Context, key models.UserConfigKey, payload models.UserConfigPayload) error
	// Get returns the record at key or ErrUserConfigNotFound.
	Get(ctx context.Context, key models.UserConfigKey) (models.UserConfig, error)
	// Update applies the provided fields of payload to the record at key.
	Update(ctx context.Context, key models.UserConfigKey, payload models.UserConfigPayload) error
	// Delete removes the record at key. It succeeds when there is none.
	Delete(ctx context.Context, key models.UserConfigKey) error
}

// AuthService turns the Authorization header of a request into a verified
// identity.
type AuthService interface {
	Authenticate(ctx context.Context, authorizationHeader string) (models.Identity, error)
}

// TokenVerifier verifies a bearer token against an identity provider.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (models.Identity, error)
}

// HealthService reports whether the service can serve requests.
type HealthService interface {
	Check(ctx context.Context) error
}

// UserConfigServiceWrapper defines middleware composition for
// UserConfigService. Implementations wrap an existing UserConfigService to
// add behavior such as validation.
type UserConfigServiceWrapper interface {
	Wrap(UserConfigService) UserConfigService
}
