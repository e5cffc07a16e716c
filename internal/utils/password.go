// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when a login names an unknown user, so the
// response time does not reveal whether the user exists.
var dummyHash, _ = bcrypt.GenerateFromPassword(prehash("timeline-dummy-password"), bcrypt.DefaultCost)

// prehash returns base64(SHA-256(password)). bcrypt only reads the first 72
// bytes of its input; the fixed 44-byte digest keeps long passwords whole.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// HashPassword returns the bcrypt hash of the pre-hashed password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(prehash(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches hashedPassword. Malformed
// hashes never match.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), prehash(password)) == nil
}

// BurnPasswordCheck performs a comparison that always fails. It costs the
// same as VerifyPassword.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, prehash(password))
}

// GeneratePassword returns a random URL-safe password made of n random
// bytes.
func GeneratePassword(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating password: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
