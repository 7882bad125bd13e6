// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the user-config
// service: the HTTP user-config endpoint and the gRPC health service.
package handler

import (
	"github.com/MKhiriev/go-user-config/internal/config"
	"github.com/MKhiriev/go-user-config/internal/handler/grpc"
	"github.com/MKhiriev/go-user-config/internal/handler/http"
	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/internal/service"
)

// Handlers holds one handler per configured transport. A transport whose
// address is empty has a nil handler.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the handlers for every transport with a non-empty
// address in cfg.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
