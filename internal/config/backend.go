// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Backend identifies the persistence backend serving the process. It is
// chosen once at startup and never changes afterwards.
type Backend string

const (
	// BackendFirestore selects the Google Cloud Firestore document store.
	BackendFirestore Backend = "firestore"
	// BackendPostgres selects the PostgreSQL relational store.
	BackendPostgres Backend = "postgres"
)

// ParseBackend converts a user supplied value (case-insensitive, surrounding
// whitespace ignored) into a [Backend].
//
// Returns [ErrMissingBackend] for an empty value and [ErrUnknownBackend] for
// anything other than "firestore" or "postgres".
func ParseBackend(s string) (Backend, error) {
	v := Backend(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case BackendFirestore, BackendPostgres:
		return v, nil
	case "":
		return "", ErrMissingBackend
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so that caarlos0/env,
// flag values and YAML decoding all normalize the backend name the same way.
// Unknown values are kept verbatim and rejected later by validation, which
// reports every violation at once.
func (b *Backend) UnmarshalText(text []byte) error {
	if parsed, err := ParseBackend(string(text)); err == nil {
		*b = parsed
		return nil
	}
	*b = Backend(strings.TrimSpace(string(text)))
	return nil
}

// String returns the backend name.
func (b Backend) String() string {
	return string(b)
}
