// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/handler"
	"github.com/MKhiriev/timeline/internal/logger"
)

// ShutdownTimeout bounds the drain of in-flight requests.
const ShutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer

	// closers are closed in order after the HTTP server drained.
	closers []io.Closer

	shutdownOnce sync.Once
	logger       *logger.Logger
}

// NewServer builds the server. closers are released on shutdown, after the
// last in-flight request finished.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, closers ...io.Closer) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		closers:    closers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	l, err := s.httpServer.listen()
	if err != nil {
		s.Shutdown()
		return fmt.Errorf("listen on %s: %w", s.httpServer.server.Addr, err)
	}

	served := make(chan struct{})
	go func() {
		defer close(served)
		s.httpServer.serve(l)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
	case <-served:
		s.logger.Warn().Msg("HTTP server stopped on its own")
	}

	s.Shutdown()
	<-served

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// Shutdown is safe to call more than once.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		s.httpServer.shutdown(ctx)

		for _, c := range s.closers {
			if c == nil {
				continue
			}
			if err := c.Close(); err != nil {
				s.logger.Err(err).Msg("closing resource")
			}
		}
	})
}
