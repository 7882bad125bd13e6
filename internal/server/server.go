// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-user-config/internal/config"
	"github.com/MKhiriev/go-user-config/internal/handler"
	"github.com/MKhiriev/go-user-config/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	stopped      chan struct{}
	shutdownOnce sync.Once

	logger *logger.Logger
}

// NewServer binds a listener for every transport with a non-empty address
// in cfg. Serving starts with RunServer.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		stopped: make(chan struct{}),
		logger:  logger,
	}

	if cfg.HTTPAddress != "" {
		if handlers.HTTP == nil {
			return nil, errMissingHandler
		}
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" {
		if handlers.GRPC == nil {
			servers.closeListeners()
			return nil, errMissingHandler
		}
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.closeListeners()
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		close(s.stopped)

		if s.httpServer != nil {
			s.logger.Info().Msg("HTTP server shutdown")
			s.httpServer.shutdown()
		}
		if s.gRPCServer != nil {
			s.logger.Info().Msg("gRPC server shutdown")
			s.gRPCServer.shutdown()
		}
	})
}

// run serves every transport until ctx is done, Shutdown is called or a
// listener fails. A failing listener stops the others.
func (s *server) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.addr()).Msg("launching HTTP server")
		g.Go(s.httpServer.serve)
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.addr()).Msg("launching gRPC server")
		g.Go(s.gRPCServer.serve)
	}

	g.Go(func() error {
		select {
		case <-ctx.Done():
		case <-s.stopped:
		}
		s.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) closeListeners() {
	if s.httpServer != nil {
		_ = s.httpServer.listener.Close()
	}
	if s.gRPCServer != nil {
		_ = s.gRPCServer.listener.Close()
	}
}
