// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/timeline/models"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func Test_mapFirestoreError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		wantIs error
	}{
		{name: "not found", err: status.Error(codes.NotFound, "missing"), wantIs: ErrTenantNotFound},
		{name: "already exists", err: status.Error(codes.AlreadyExists, "dup"), wantIs: ErrTenantAlreadyExists},
		{name: "unavailable", err: status.Error(codes.Unavailable, "down"), wantIs: ErrStoreUnavailable},
		{name: "permission denied", err: status.Error(codes.PermissionDenied, "nope"), wantIs: ErrStoreUnavailable},
		{name: "invalid argument", err: status.Error(codes.InvalidArgument, "bad"), wantIs: ErrExecutingQuery},
		{name: "sentinel from transaction", err: ErrTenantAlreadyExists, wantIs: ErrTenantAlreadyExists},
		{name: "wrapped sentinel", err: fmt.Errorf("tx: %w", ErrUserNotFound), wantIs: ErrUserNotFound},
		{name: "cancelled", err: context.Canceled, wantIs: context.Canceled},
		{name: "plain error", err: errors.New("boom"), wantIs: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapFirestoreError(tt.err, ErrTenantNotFound, ErrTenantAlreadyExists), tt.wantIs)
		})
	}

	assert.NoError(t, mapFirestoreError(nil, ErrTenantNotFound, nil))
	assert.ErrorIs(t, mapFirestoreError(status.Error(codes.NotFound, "x"), nil, nil), ErrExecutingQuery)
}

func Test_pageOf(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, pageOf(items, models.Page{}))
	assert.Equal(t, []int{2, 3}, pageOf(items, models.Page{Skip: 1, Limit: 2}))
	assert.Equal(t, []int{5}, pageOf(items, models.Page{Skip: 4, Limit: 10}))
	assert.Equal(t, []int{}, pageOf(items, models.Page{Skip: 5}))
	assert.Equal(t, []int{1}, pageOf(items, models.Page{Skip: -1, Limit: 1}))
}
