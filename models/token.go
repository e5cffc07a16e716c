// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set of an access token.
//
// The standard "sub" claim carries the user ID; TenantID and Username are
// private claims so that tenant-scoped handlers do not need a lookup to know
// who is calling.
type Claims struct {
	jwt.RegisteredClaims

	TenantID string `json:"tenant_id"`
	Username string `json:"username"`
}

// Validate implements jwt.ClaimsValidator and runs after the registered
// claims (exp, nbf, iat) have been checked.
func (c Claims) Validate() error {
	if c.Subject == "" {
		return errors.New("token has no subject")
	}
	if c.TenantID == "" {
		return errors.New("token has no tenant_id")
	}
	return nil
}

// UserID returns the "sub" claim.
func (c Claims) UserID() string {
	return c.Subject
}

// Token wraps a signed JWT with the claims it was built from.
type Token struct {
	// Claims are the decoded claims of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
