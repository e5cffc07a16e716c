// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newHealthServer(liveStatus, readyStatus int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/health":
			w.WriteHeader(liveStatus)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		case "/api/v1/version":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"name":"timeline","version":"1.2.3","backend":"postgres"}`))
		case "/api/v1/health/ready":
			w.WriteHeader(readyStatus)
			if readyStatus == http.StatusOK {
				_, _ = w.Write([]byte(`{"status":"ready","backend":"postgres","checks":{"backend":"ok"}}`))
				return
			}
			_, _ = w.Write([]byte(`{"status":"not_ready","backend":"postgres","checks":{"backend":"unavailable"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestRun_Liveness(t *testing.T) {
	srv := newHealthServer(http.StatusOK, http.StatusServiceUnavailable)
	defer srv.Close()
	var stdout, stderr bytes.Buffer

	code := run([]string{"-url", srv.URL}, &stdout, &stderr)

	assert.Equal(t, exitHealthy, code)
	assert.Contains(t, stdout.String(), `"status":"ok"`)
	assert.Empty(t, stderr.String())
}

func TestRun_ReadinessReady(t *testing.T) {
	srv := newHealthServer(http.StatusOK, http.StatusOK)
	defer srv.Close()
	var stdout, stderr bytes.Buffer

	code := run([]string{"-url", srv.URL, "-ready"}, &stdout, &stderr)

	assert.Equal(t, exitHealthy, code)
	assert.Contains(t, stdout.String(), `"status":"ready"`)
}

func TestRun_ReadinessNotReady(t *testing.T) {
	srv := newHealthServer(http.StatusOK, http.StatusServiceUnavailable)
	defer srv.Close()
	var stdout, stderr bytes.Buffer

	code := run([]string{"-url", srv.URL, "-ready"}, &stdout, &stderr)

	assert.Equal(t, exitUnhealthy, code)
	assert.Contains(t, stdout.String(), `"backend":"unavailable"`)
	assert.Contains(t, stderr.String(), "unhealthy")
}

func TestRun_Version(t *testing.T) {
	srv := newHealthServer(http.StatusOK, http.StatusOK)
	defer srv.Close()
	var stdout, stderr bytes.Buffer

	code := run([]string{"-url", srv.URL, "-version"}, &stdout, &stderr)

	assert.Equal(t, exitHealthy, code)
	assert.Contains(t, stdout.String(), `"version":"1.2.3"`)
	assert.Contains(t, stdout.String(), `"backend":"postgres"`)
}

func TestRun_ServerDown(t *testing.T) {
	srv := newHealthServer(http.StatusOK, http.StatusOK)
	url := srv.URL
	srv.Close()
	var stdout, stderr bytes.Buffer

	code := run([]string{"-url", url, "-timeout", "500ms"}, &stdout, &stderr)

	assert.Equal(t, exitUnhealthy, code)
}

func TestRun_BadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitUsage, run([]string{"-nope"}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"-url", ""}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"-ready", "-version"}, &stdout, &stderr))
}
