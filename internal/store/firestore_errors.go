// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapFirestoreError translates a Firestore (gRPC) error into the store's
// sentinels. Store sentinels returned from inside a transaction pass
// through unchanged.
func mapFirestoreError(err error, notFound, conflict error) error {
	if err == nil {
		return nil
	}
	if isStoreSentinel(err) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	switch status.Code(err) {
	case codes.NotFound:
		if notFound != nil {
			return notFound
		}
	case codes.AlreadyExists:
		if conflict != nil {
			return conflict
		}
	case codes.Unavailable, codes.ResourceExhausted, codes.Aborted, codes.DeadlineExceeded, codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func isStoreSentinel(err error) bool {
	for _, sentinel := range []error{
		ErrTenantNotFound,
		ErrTenantAlreadyExists,
		ErrUserNotFound,
		ErrUserAlreadyExists,
		ErrStoreUnavailable,
		ErrDecodingDocument,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
