// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-user-config/internal/config"
	myGRPC "github.com/MKhiriev/go-user-config/internal/handler/grpc"
	"github.com/MKhiriev/go-user-config/internal/logger"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener
	logger   *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen grpc %s: %w", cfg.GRPCAddress, err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			loggingInterceptor(logger),
			recoveryInterceptor(),
		),
	)
	handler.Register(srv)

	return &grpcServer{
		server:   srv,
		listener: lis,
		logger:   logger,
	}, nil
}

func (g *grpcServer) addr() string {
	return g.listener.Addr().String()
}

func (g *grpcServer) serve() error {
	if err := g.server.Serve(g.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc serve: %w", err)
	}

	return nil
}

func (g *grpcServer) shutdown() {
	g.server.GracefulStop()
}
