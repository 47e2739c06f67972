// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/athena-accounts/internal/config"
	"github.com/MKhiriev/athena-accounts/internal/handler"
	"github.com/MKhiriev/athena-accounts/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may take to finish
// once shutdown has started.
const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		// the listener failed before any shutdown was requested
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
