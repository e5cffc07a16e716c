// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_CountsByRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Instrument)
	r.Get("/tenants/{tenantID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tenants/"+id, nil))
	}

	got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/tenants/{tenantID}", "404"))
	assert.Equal(t, 3.0, got)
}

func TestObserveBackendProbe(t *testing.T) {
	m := New()

	m.ObserveBackendProbe("postgres", true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.backendUp.WithLabelValues("postgres")))

	m.ObserveBackendProbe("postgres", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.backendUp.WithLabelValues("postgres")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.backendProbes.WithLabelValues("postgres", "down")))
}

func TestObserveCacheLookup(t *testing.T) {
	m := New()

	m.ObserveCacheLookup("hit")
	m.ObserveCacheLookup("hit")
	m.ObserveCacheLookup("miss")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveBackendProbe("firestore", true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `timeline_backend_up{backend="firestore"} 1`))
	assert.Contains(t, body, "go_goroutines")
}
