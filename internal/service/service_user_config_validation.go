// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-config/internal/utils"
	"github.com/MKhiriev/go-user-config/models"
)

// userConfigValidationService checks the document key before delegating to
// the wrapped service. The uid of the key must be the authenticated caller.
type userConfigValidationService struct {
	inner UserConfigService
}

// NewUserConfigValidationService returns a wrapper that validates keys.
func NewUserConfigValidationService() UserConfigServiceWrapper {
	return &userConfigValidationService{}
}

func (v *userConfigValidationService) Create(ctx context.Context, key models.UserConfigKey, payload models.UserConfigPayload) error {
	if err := v.validateKey(ctx, key); err != nil {
		return err
	}

	return v.inner.Create(ctx, key, payload)
}

func (v *userConfigValidationService) Get(ctx context.Context, key models.UserConfigKey) (models.UserConfig, error) {
	if err := v.validateKey(ctx, key); err != nil {
		return models.UserConfig{}, err
	}

	return v.inner.Get(ctx, key)
}

func (v *userConfigValidationService) Update(ctx context.Context, key models.UserConfigKey, payload models.UserConfigPayload) error {
	if err := v.validateKey(ctx, key); err != nil {
		return err
	}

	return v.inner.Update(ctx, key, payload)
}

func (v *userConfigValidationService) Delete(ctx context.Context, key models.UserConfigKey) error {
	if err := v.validateKey(ctx, key); err != nil {
		return err
	}

	return v.inner.Delete(ctx, key)
}

func (v *userConfigValidationService) Wrap(inner UserConfigService) UserConfigService {
	v.inner = inner
	return v
}

func (v *userConfigValidationService) validateKey(ctx context.Context, key models.UserConfigKey) error {
	if key.Role == "" {
		return ErrValidationNoRole
	}
	if key.UID == "" {
		return ErrValidationNoUID
	}

	uid, ok := utils.GetUIDFromContext(ctx)
	if !ok {
		return ErrValidationNoUID
	}
	if uid != key.UID {
		return ErrUnauthorizedAccessToDifferentUserConfigs
	}

	return nil
}
