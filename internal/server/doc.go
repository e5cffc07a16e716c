// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, signal handling, graceful drain of
// in-flight requests and, once the listener is drained, closing of the
// resources the handlers depend on (storage backend, cache).
package server
