// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-config/internal/config"
	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/internal/mock"
	"github.com/MKhiriev/go-user-config/internal/service"
	"github.com/MKhiriev/go-user-config/internal/utils"
	"github.com/MKhiriev/go-user-config/models"
)

func TestAuthService_Authenticate_HeaderErrors(t *testing.T) {
	verifier := mock.NewMockTokenVerifier(gomock.NewController(t))
	auth := service.NewAuthServiceWithVerifier(verifier, logger.Nop())

	for _, header := range []string{"", "Basic abc", "bearer abc", "Bearer "} {
		t.Run(header, func(t *testing.T) {
			_, err := auth.Authenticate(context.Background(), header)
			assert.ErrorIs(t, err, service.ErrMissingAuthorization)
		})
	}
}

func TestAuthService_Authenticate_Verifier(t *testing.T) {
	tests := []struct {
		name     string
		identity models.Identity
		err      error
		wantUID  string
		wantErr  error
	}{
		{name: "verified", identity: models.Identity{UID: "uid-1"}, wantUID: "uid-1"},
		{name: "rejected", err: errors.New("token has expired"), wantErr: service.ErrTokenIsExpiredOrInvalid},
		{name: "empty uid", identity: models.Identity{}, wantErr: service.ErrTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := mock.NewMockTokenVerifier(gomock.NewController(t))
			auth := service.NewAuthServiceWithVerifier(verifier, logger.Nop())

			verifier.EXPECT().VerifyToken(gomock.Any(), "abc.def.ghi").Return(tt.identity, tt.err)

			identity, err := auth.Authenticate(context.Background(), "Bearer abc.def.ghi")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUID, identity.UID)
		})
	}
}

func TestNewAuthService_JWT(t *testing.T) {
	cfg := config.App{TokenSignKey: "key", TokenIssuer: "user-config"}
	auth := service.NewAuthService(cfg, logger.Nop())

	token, err := utils.GenerateJWTToken("user-config", "uid-42", time.Hour, "key")
	require.NoError(t, err)

	identity, err := auth.Authenticate(context.Background(), "Bearer "+token.String())
	require.NoError(t, err)
	assert.Equal(t, "uid-42", identity.UID)

	forged, err := utils.GenerateJWTToken("user-config", "uid-42", time.Hour, "other-key")
	require.NoError(t, err)

	_, err = auth.Authenticate(context.Background(), "Bearer "+forged.String())
	assert.ErrorIs(t, err, service.ErrTokenIsExpiredOrInvalid)
}

func TestNewAuthService_Bypass(t *testing.T) {
	cfg := config.App{AuthDisabled: true, AuthTestUID: "TEST_UID"}
	auth := service.NewAuthService(cfg, logger.Nop())

	identity, err := auth.Authenticate(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "TEST_UID", identity.UID)
}

func TestHealthService_Check(t *testing.T) {
	pinger := mock.NewMockPinger(gomock.NewController(t))
	health := service.NewHealthService(pinger)

	gomock.InOrder(
		pinger.EXPECT().PingContext(gomock.Any()).Return(nil),
		pinger.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused")),
	)

	assert.NoError(t, health.Check(context.Background()))
	assert.ErrorIs(t, health.Check(context.Background()), service.ErrStoreIsNotAvailable)
}
