// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/handler"
	"github.com/MKhiriev/work-diary/internal/logger"
)

const shutdownTimeout = 10 * time.Second

var errNoTransports = errors.New("neither an HTTP nor a gRPC address is configured")

type server struct {
	transports []transport
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}
	if len(s.transports) == 0 {
		return nil, errNoTransports
	}

	return s, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
		return
	}
	s.logger.Info().Msg("server stopped")
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// reverse start order
	for i := len(s.transports) - 1; i >= 0; i-- {
		t := s.transports[i]
		if err := t.stop(ctx); err != nil {
			s.logger.Error().Err(err).Str("transport", t.name()).Msg("transport did not stop cleanly")
		}
	}
}

// run starts every transport and returns once ctx is done or the first
// transport fails. All transports are stopped before it returns.
func (s *server) run(ctx context.Context) error {
	failed := make(chan error, len(s.transports))
	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.name()).Msg("starting")
		go func() {
			if err := t.serve(); err != nil {
				failed <- fmt.Errorf("%s: %w", t.name(), err)
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-failed:
	}

	s.Shutdown()
	return err
}
