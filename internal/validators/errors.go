// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTenantCode   = errors.New("tenant code must be 1-64 characters of letters, digits, '_' or '-'")
	ErrInvalidTenantName   = errors.New("tenant name must be 1-255 characters")
	ErrInvalidTenantStatus = errors.New("tenant status must be one of active, suspended, archived")
	ErrInvalidUsername     = errors.New("username must be 1-100 characters without spaces")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong     = errors.New("password must be at most 128 characters")
	ErrEmptyPassword       = errors.New("password is required")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
)
