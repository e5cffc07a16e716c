// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every request validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for any failed login, whatever the
	// reason (unknown tenant, unknown user, inactive user, wrong password).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRegistrationFailed hides why a self registration was refused, so
	// the endpoint cannot be used to enumerate tenants or usernames.
	ErrRegistrationFailed = errors.New("registration failed")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrForbiddenTenant is returned when the caller's token belongs to a
	// tenant other than the one addressed by the request.
	ErrForbiddenTenant = errors.New("tenant does not match token")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
