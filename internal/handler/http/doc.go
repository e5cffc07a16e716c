// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the timeline API.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, limits, authentication and tenant selection are
// handled in this package before requests are delegated to the service
// layer. Every error response has the same JSON shape and its status code
// comes from the single table in errors_mapper.go.
package http
