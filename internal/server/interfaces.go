// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// Implementations block in [Server.RunServer] until a stop signal arrives
// and release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received and the shutdown finished.
	RunServer()

	// Run serves until ctx is cancelled, then shuts down. It returns early
	// with an error when the listener cannot be opened.
	Run(ctx context.Context) error

	// Shutdown drains in-flight requests and closes the registered closers.
	Shutdown()
}
