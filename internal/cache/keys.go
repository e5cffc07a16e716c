// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"fmt"
	"strings"
)

// KeySeparator joins key components. Components must not contain it, or two
// different lookups could collide on one key.
const KeySeparator = ":"

const prefixTenant = "tenant"

func buildKey(parts ...string) string {
	return strings.Join(parts, KeySeparator)
}

func validateComponent(value, name string) error {
	if strings.Contains(value, KeySeparator) {
		return fmt.Errorf("%w: %s %q", ErrInvalidKeyComponent, name, value)
	}
	return nil
}

// TenantIDKey is the key of a tenant cached by ID: "tenant:id:<id>".
func TenantIDKey(tenantID string) (string, error) {
	if err := validateComponent(tenantID, "tenant_id"); err != nil {
		return "", err
	}
	return buildKey(prefixTenant, "id", tenantID), nil
}

// TenantCodeKey is the key of a tenant cached by code: "tenant:code:<code>".
func TenantCodeKey(code string) (string, error) {
	if err := validateComponent(code, "code"); err != nil {
		return "", err
	}
	return buildKey(prefixTenant, "code", code), nil
}
