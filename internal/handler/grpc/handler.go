// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health protocol for the
// user-config service. Orchestrators poll it while the HTTP listener
// serves the user-config endpoint.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/internal/service"
)

// ServiceName is the health service name that reports the user-config
// endpoint. The empty name reports the server as a whole.
const ServiceName = "userconfig.UserConfig"

// Handler is the root gRPC transport handler.
//
// It answers grpc.health.v1.Health/Check by probing the document store
// through the health service.
type Handler struct {
	healthpb.UnimplementedHealthServer

	services *service.Services
	logger   *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the health service and server reflection to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h)
	reflection.Register(s)
}

// Check reports SERVING while the store answers and NOT_SERVING otherwise.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", ServiceName:
	default:
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}

	if err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Warn().Err(err).Str("service", req.GetService()).Msg("health check failed")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
