// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/handler/http"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/metrics"
	"github.com/MKhiriev/timeline/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. m is nil when
// telemetry is disabled.
func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, m, cfg, logger),
	}, nil
}
