// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/timeline/internal/cache"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/store"
	"github.com/MKhiriev/timeline/models"
)

// Readiness check names and results.
const (
	CheckBackend = "backend"
	CheckCache   = "cache"

	CheckOK          = "ok"
	CheckUnavailable = "unavailable"
	CheckDisabled    = "disabled"
)

// DefaultCheckTimeout bounds every single readiness check.
const DefaultCheckTimeout = 2 * time.Second

type healthService struct {
	backend      store.Backend
	cache        cache.Cache
	checkTimeout time.Duration

	logger *logger.Logger
}

// NewHealthService builds a HealthService probing backend and, when it is
// enabled, cache. A nil cache is reported as disabled.
func NewHealthService(backend store.Backend, c cache.Cache, logger *logger.Logger) HealthService {
	if c == nil {
		c = cache.NewNop()
	}
	return &healthService{
		backend:      backend,
		cache:        c,
		checkTimeout: DefaultCheckTimeout,
		logger:       logger,
	}
}

func (s *healthService) Liveness(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{Status: models.HealthStatusOK}
}

// Readiness pings the backend and the cache. A cache outage is reported in
// the checks but leaves the service ready.
func (s *healthService) Readiness(ctx context.Context) (models.ReadinessResponse, bool) {
	resp := models.ReadinessResponse{
		Status:  models.HealthStatusReady,
		Backend: string(s.backend.Kind()),
		Checks:  make(map[string]string, 2),
	}

	ready := true
	if err := s.check(ctx, s.backend.Ping); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("backend", resp.Backend).Msg("backend readiness check failed")
		resp.Checks[CheckBackend] = CheckUnavailable
		ready = false
	} else {
		resp.Checks[CheckBackend] = CheckOK
	}

	switch {
	case !s.cache.Enabled():
		resp.Checks[CheckCache] = CheckDisabled
	case s.check(ctx, s.cache.Ping) != nil:
		resp.Checks[CheckCache] = CheckUnavailable
	default:
		resp.Checks[CheckCache] = CheckOK
	}

	if !ready {
		resp.Status = models.HealthStatusNotReady
	}
	return resp, ready
}

func (s *healthService) check(ctx context.Context, ping func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.checkTimeout)
	defer cancel()
	return ping(ctx)
}
