// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-user-config/internal/config"
	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/internal/store"
)

type Services struct {
	UserConfigService UserConfigService
	AuthService       AuthService
	HealthService     HealthService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		UserConfigService: NewUserConfigValidationService().
			Wrap(NewUserConfigService(storages.UserConfigRepository, cfg, logger)),
		AuthService:   NewAuthService(cfg, logger),
		HealthService: NewHealthService(storages.DB),
	}
}
