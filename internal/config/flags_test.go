// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
	}{
		{name: "localhost", input: "localhost:8080", expectedHost: "localhost", expectedPort: 8080},
		{name: "ipv4", input: "10.0.0.1:80", expectedHost: "10.0.0.1", expectedPort: 80},
		{name: "all interfaces", input: ":8000", expectedHost: "", expectedPort: 8000},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "port not a number", input: "localhost:http", expectError: true},
		{name: "port zero", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "hostname not an ip", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8081",
		"-b", "firestore",
		"-d", "postgres://flags/db",
		"-config", "/etc/timeline.yaml",
		"-env-file", "/etc/timeline.env",
		"-log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, BackendFirestore, cfg.Storage.Backend)
	assert.Equal(t, "postgres://flags/db", cfg.Storage.DB.URL.Reveal())
	assert.Equal(t, "/etc/timeline.yaml", cfg.FilePath)
	assert.Equal(t, "/etc/timeline.env", cfg.DotEnvPath)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Invalid(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.ErrorIs(t, err, ErrInvalidFlags)

	_, err = parseFlags([]string{"-unknown"})
	assert.ErrorIs(t, err, ErrInvalidFlags)
}
