// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "too many connections", err: pgError(pgerrcode.TooManyConnections), want: Retryable},
		{name: "admin shutdown", err: pgError(pgerrcode.AdminShutdown), want: Retryable},
		{name: "wrapped pg error", err: fmt.Errorf("query: %w", pgError(pgerrcode.SerializationFailure)), want: Retryable},
		{name: "bad conn", err: driver.ErrBadConn, want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func Test_mapPostgresError(t *testing.T) {
	c := NewPostgresErrorClassifier()
	notFound := errors.New("not found")
	conflict := errors.New("conflict")

	tests := []struct {
		name   string
		err    error
		wantIs error
	}{
		{name: "nil", err: nil, wantIs: nil},
		{name: "no rows", err: sql.ErrNoRows, wantIs: notFound},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), wantIs: conflict},
		{name: "deadline", err: context.DeadlineExceeded, wantIs: context.DeadlineExceeded},
		{name: "connection lost", err: pgError(pgerrcode.ConnectionException), wantIs: ErrStoreUnavailable},
		{name: "other", err: pgError(pgerrcode.UndefinedTable), wantIs: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapPostgresError(c, tt.err, notFound, conflict)
			if tt.wantIs == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}
}

func Test_mapPostgresError_UniqueViolationWithoutConflictSentinel(t *testing.T) {
	got := mapPostgresError(NewPostgresErrorClassifier(), pgError(pgerrcode.UniqueViolation), ErrTenantNotFound, nil)
	assert.ErrorIs(t, got, ErrExecutingQuery)
}
