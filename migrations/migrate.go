// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the PostgreSQL schema of the timeline service as
// embedded goose migrations.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

func prepare(db *sql.DB) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}
	return nil
}

// Migrate applies every pending migration.
func Migrate(db *sql.DB) error {
	if err := prepare(db); err != nil {
		return err
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Down rolls back the most recent migration.
func Down(db *sql.DB) error {
	if err := prepare(db); err != nil {
		return err
	}

	if err := goose.Down(db, "."); err != nil {
		return fmt.Errorf("migration rollback error: %w", err)
	}

	return nil
}

// Status logs the applied state of every migration through goose's logger.
func Status(db *sql.DB) error {
	if err := prepare(db); err != nil {
		return err
	}

	if err := goose.Status(db, "."); err != nil {
		return fmt.Errorf("migration status error: %w", err)
	}

	return nil
}

// Files lists the embedded migration files in apply order.
func Files() ([]string, error) {
	entries, err := embedMigrations.ReadDir(".")
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		files = append(files, e.Name())
	}
	return files, nil
}
