// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command healthcheck probes a running timeline server and exits non-zero
// when it is not healthy. It is meant as a container HEALTHCHECK.
//
//	healthcheck -url http://localhost:8000 [-ready | -version] [-timeout 3s]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/timeline/internal/adapter"
	"github.com/MKhiriev/timeline/internal/logger"
)

const (
	exitHealthy   = 0
	exitUnhealthy = 1
	exitUsage     = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)

	address := fs.String("url", "http://localhost:8000", "base URL of the timeline server")
	ready := fs.Bool("ready", false, "check readiness (backend reachable) instead of liveness")
	version := fs.Bool("version", false, "print the server name, version and backend")
	timeout := fs.Duration("timeout", 3*time.Second, "request timeout")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *ready && *version {
		fmt.Fprintln(stderr, "-ready and -version are mutually exclusive")
		return exitUsage
	}

	client, err := adapter.NewHTTPServerAdapter(*address, *timeout, logger.Nop())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var body any
	switch {
	case *ready:
		body, err = client.Readiness(ctx)
	case *version:
		body, err = client.Version(ctx)
	default:
		body, err = client.Liveness(ctx)
	}

	if encoded, encErr := json.Marshal(body); encErr == nil {
		fmt.Fprintln(stdout, string(encoded))
	}
	if err != nil {
		fmt.Fprintln(stderr, "unhealthy:", err)
		return exitUnhealthy
	}
	return exitHealthy
}
