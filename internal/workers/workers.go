// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/metrics"
	"github.com/MKhiriev/timeline/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg. m may be nil.
func NewWorkers(backend store.Backend, m *metrics.Metrics, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	w := &Workers{}

	if cfg.BackendProbeSchedule != "" {
		var observer ProbeObserver
		if m != nil {
			observer = m
		}

		probe, err := NewBackendProbe(backend, observer, cfg.BackendProbeSchedule, logger)
		if err != nil {
			return nil, err
		}
		w.workers = append(w.workers, probe)
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w, nil
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// Close stops the workers. It lets the server shut them down together with
// the other resources, before the backend is closed.
func (w *Workers) Close() error {
	w.Stop()
	return nil
}
