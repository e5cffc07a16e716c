// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"

	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/metrics"
	"github.com/MKhiriev/timeline/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
	ws.Stop()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
	ws.Stop()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := &Workers{workers: []Worker{
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	}}
	ws.Run()
	ws.Stop()

	assert.Equal(t, []int{1, 2, 3, -3, -2, -1}, order)
}

func TestWorkers_Stop_CalledOnce(t *testing.T) {
	w := &mockWorker{}
	ws := &Workers{workers: []Worker{w}}

	ws.Run()
	ws.Stop()

	assert.Equal(t, 1, w.runCount)
	assert.Equal(t, 1, w.stopCount)
}

// orderWorker appends its ID on Run and the negated ID on Stop.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, -o.id)
}

// ── NewWorkers ──

func TestNewWorkers_ProbeEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)

	ws, err := NewWorkers(backend, metrics.New(), config.Workers{BackendProbeSchedule: "@every 30s"}, logger.Nop())

	require.NoError(t, err)
	require.Len(t, ws.workers, 1)
	assert.IsType(t, &BackendProbe{}, ws.workers[0])
}

func TestNewWorkers_ProbeDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)

	ws, err := NewWorkers(backend, nil, config.Workers{}, logger.Nop())

	require.NoError(t, err)
	assert.Empty(t, ws.workers)
}

func TestNewWorkers_InvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)

	ws, err := NewWorkers(backend, nil, config.Workers{BackendProbeSchedule: "every now and then"}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, ws)
}

func TestNewWorkers_NilMetricsLeavesObserverUnset(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)

	ws, err := NewWorkers(backend, nil, config.Workers{BackendProbeSchedule: "@every 1m"}, logger.Nop())

	require.NoError(t, err)
	probe := ws.workers[0].(*BackendProbe)
	assert.Nil(t, probe.observer)
}

func TestWorkers_Close_StopsWorkers(t *testing.T) {
	w := &mockWorker{}
	ws := &Workers{workers: []Worker{w}}

	require.NoError(t, ws.Close())
	assert.Equal(t, 1, w.stopCount)
}
