// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-config/internal/mock"
	"github.com/MKhiriev/go-user-config/internal/service"
	"github.com/MKhiriev/go-user-config/internal/utils"
	"github.com/MKhiriev/go-user-config/models"
)

func ctxWithUID(uid string) context.Context {
	return utils.WithUID(context.Background(), uid)
}

func newValidationService(t *testing.T) (service.UserConfigService, *mock.MockUserConfigService) {
	t.Helper()

	inner := mock.NewMockUserConfigService(gomock.NewController(t))
	return service.NewUserConfigValidationService().Wrap(inner), inner
}

func TestValidation_RejectsBadKeys(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		key     models.UserConfigKey
		wantErr error
	}{
		{
			name:    "no role",
			ctx:     ctxWithUID("uid-1"),
			key:     models.UserConfigKey{UID: "uid-1"},
			wantErr: service.ErrValidationNoRole,
		},
		{
			name:    "no uid in key",
			ctx:     ctxWithUID("uid-1"),
			key:     models.UserConfigKey{Role: "customers"},
			wantErr: service.ErrValidationNoUID,
		},
		{
			name:    "no uid in context",
			ctx:     context.Background(),
			key:     testKey,
			wantErr: service.ErrValidationNoUID,
		},
		{
			name:    "different caller",
			ctx:     ctxWithUID("uid-2"),
			key:     testKey,
			wantErr: service.ErrUnauthorizedAccessToDifferentUserConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the inner service must never be reached
			svc, _ := newValidationService(t)

			assert.ErrorIs(t, svc.Create(tt.ctx, tt.key, models.UserConfigPayload{}), tt.wantErr)
			_, err := svc.Get(tt.ctx, tt.key)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, svc.Update(tt.ctx, tt.key, models.UserConfigPayload{}), tt.wantErr)
			assert.ErrorIs(t, svc.Delete(tt.ctx, tt.key), tt.wantErr)
		})
	}
}

func TestValidation_DelegatesValidKeys(t *testing.T) {
	svc, inner := newValidationService(t)
	ctx := ctxWithUID("uid-1")
	payload := models.UserConfigPayload{FirstName: strPtr("Ada")}
	record := models.UserConfig{Role: "customers", UID: "uid-1", FirstName: strPtr("Ada")}

	inner.EXPECT().Create(ctx, testKey, payload).Return(nil)
	inner.EXPECT().Get(ctx, testKey).Return(record, nil)
	inner.EXPECT().Update(ctx, testKey, payload).Return(service.ErrUserConfigNotFound)
	inner.EXPECT().Delete(ctx, testKey).Return(nil)

	require.NoError(t, svc.Create(ctx, testKey, payload))

	got, err := svc.Get(ctx, testKey)
	require.NoError(t, err)
	assert.Equal(t, record, got)

	assert.ErrorIs(t, svc.Update(ctx, testKey, payload), service.ErrUserConfigNotFound)
	assert.NoError(t, svc.Delete(ctx, testKey))
}
