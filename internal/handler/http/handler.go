// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/metrics"
	"github.com/MKhiriev/timeline/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics is nil when telemetry is disabled.
	metrics *metrics.Metrics

	cfg   config.Server
	debug bool

	authLimiter *rateLimiter

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. m may be nil.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		metrics:     m,
		cfg:         cfg.Server,
		debug:       cfg.App.Debug,
		authLimiter: newRateLimiter(cfg.Server.AuthRateLimit, cfg.Server.AuthRateBurst),
		logger:      logger,
	}
}
