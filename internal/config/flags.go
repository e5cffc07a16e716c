// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command-line flags from args (without the
// program name). Unset flags leave their fields zero so that lower-priority
// sources keep their values after merging.
//
// Flags:
//
//	-a          HTTP listen address in format [host]:port
//	-b          persistence backend (firestore | postgres)
//	-d          PostgreSQL connection URL
//	-c/-config  JSON or YAML config file path
//	-env-file   .env file path
//	-log-level  zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress NetAddress
		backend       string
		databaseURL   string
		filePath      string
		dotEnvPath    string
		logLevel      string
	)

	fs := flag.NewFlagSet("timeline", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address [host]:port")
	fs.StringVar(&backend, "b", "", "Persistence backend (firestore | postgres)")
	fs.StringVar(&databaseURL, "d", "", "PostgreSQL connection URL")
	fs.StringVar(&filePath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&filePath, "config", "", "Config file path (alias)")
	fs.StringVar(&dotEnvPath, "env-file", "", ".env file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				URL: Secret(databaseURL),
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		FilePath:   filePath,
		DotEnvPath: dotEnvPath,
	}
	if backend != "" {
		if err := cfg.Storage.Backend.UnmarshalText([]byte(backend)); err != nil {
			return nil, errors.Join(ErrInvalidFlags, err)
		}
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host listens on all interfaces. It validates the port
// range, checks IP correctness unless host is "localhost", and returns an
// error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
