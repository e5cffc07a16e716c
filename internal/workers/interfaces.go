// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: scheduled workers register their jobs and return.
// Stop blocks until running jobs finished.
type Worker interface {
	Run()
	Stop()
}

// ProbeObserver records the outcome of one backend probe.
type ProbeObserver interface {
	ObserveBackendProbe(backend string, up bool)
}
