// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command migrate applies the PostgreSQL schema of the timeline service.
//
//	migrate up      apply every pending migration
//	migrate down    roll back the most recent migration
//	migrate status  print the applied state of every migration
//
// The database is taken from --database-url or DATABASE_URL (also read from
// a .env file).
package main

import (
	"os"

	"github.com/MKhiriev/timeline/internal/logger"
)

func main() {
	log := logger.NewLogger("migrate", "info")

	if err := newRootCmd(defaultRunner(log), log).Execute(); err != nil {
		log.Error().Err(err).Msg("migration command failed")
		os.Exit(1)
	}
}
