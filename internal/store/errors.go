// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Both backends return the same sentinels; callers should use
// [errors.Is] to match against these values.
var (
	// ErrTenantNotFound is returned when no tenant matches the given ID or code.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrTenantAlreadyExists is returned when a tenant with the same code
	// already exists.
	ErrTenantAlreadyExists = errors.New("tenant already exists")

	// ErrUserNotFound is returned when no user matches the given ID or
	// username inside the given tenant. A user of another tenant is reported
	// as not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the username or email is already
	// taken inside the tenant.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrStoreUnavailable is returned when the backend cannot be reached or
	// reports a transient failure (connection loss, deadlock, shutdown).
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnknownBackend is returned by NewStorages for a backend kind other
	// than firestore or postgres.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level operation errors. These are returned (or wrapped) by repository
// methods when a backend operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query against the backend fails
	// for a reason that is neither a domain condition nor transient.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrDecodingDocument is returned when a stored document cannot be
	// decoded into its model.
	ErrDecodingDocument = errors.New("failed to decode document")
)
