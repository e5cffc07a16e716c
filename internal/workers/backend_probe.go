// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/store"
	"github.com/robfig/cron/v3"
)

// ProbeTimeout bounds a single backend ping.
const ProbeTimeout = 5 * time.Second

// BackendProbe pings the storage backend on a cron schedule, exports the
// result and logs when the backend goes down or comes back.
type BackendProbe struct {
	backend  store.Backend
	observer ProbeObserver
	cron     *cron.Cron

	mu     sync.Mutex
	lastUp *bool

	logger *logger.Logger
}

// NewBackendProbe validates schedule and registers the probe job. observer
// may be nil.
func NewBackendProbe(backend store.Backend, observer ProbeObserver, schedule string, logger *logger.Logger) (*BackendProbe, error) {
	p := &BackendProbe{
		backend:  backend,
		observer: observer,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger,
	}

	if _, err := p.cron.AddFunc(schedule, func() { p.Probe(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid backend probe schedule %q: %w", schedule, err)
	}

	return p, nil
}

func (p *BackendProbe) Run() {
	p.logger.Info().Msg("backend probe started")
	p.cron.Start()
}

func (p *BackendProbe) Stop() {
	<-p.cron.Stop().Done()
	p.logger.Info().Msg("backend probe stopped")
}

// Probe pings the backend once and reports whether it answered.
func (p *BackendProbe) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	kind := string(p.backend.Kind())
	err := p.backend.Ping(ctx)
	up := err == nil

	if p.observer != nil {
		p.observer.ObserveBackendProbe(kind, up)
	}

	p.mu.Lock()
	changed := p.lastUp == nil || *p.lastUp != up
	p.lastUp = &up
	p.mu.Unlock()

	switch {
	case !changed:
		p.logger.Debug().Str("backend", kind).Bool("up", up).Msg("backend probe")
	case up:
		p.logger.Info().Str("backend", kind).Msg("backend is reachable")
	default:
		p.logger.Error().Err(err).Str("backend", kind).Msg("backend is unreachable")
	}

	return up
}
