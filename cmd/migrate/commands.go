// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/store"
	"github.com/MKhiriev/timeline/migrations"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const connectTimeout = 10 * time.Second

var errNoDatabaseURL = errors.New("database URL is required (--database-url or DATABASE_URL)")

// migrationFunc is one of migrations.Migrate, migrations.Down or
// migrations.Status.
type migrationFunc func(db *sql.DB) error

// runner opens the database described by cfg and runs fn against it.
type runner func(ctx context.Context, cfg config.DB, fn migrationFunc) error

func defaultRunner(log *logger.Logger) runner {
	return func(ctx context.Context, cfg config.DB, fn migrationFunc) error {
		ctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		db, err := store.NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		return fn(db.DB.DB)
	}
}

type options struct {
	databaseURL string
	envFile     string
}

func newRootCmd(run runner, log *logger.Logger) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the timeline PostgreSQL schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "PostgreSQL connection URL (default $DATABASE_URL)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", config.DefaultDotEnvPath, ".env file read before the environment")

	subcommands := []struct {
		use, short string
		fn         migrationFunc
		done       string
	}{
		{use: "up", short: "Apply all pending migrations", fn: migrations.Migrate, done: "migrations applied"},
		{use: "down", short: "Roll back the most recent migration", fn: migrations.Down, done: "migration rolled back"},
		{use: "status", short: "Show migration status", fn: migrations.Status, done: "status printed"},
	}

	for _, sc := range subcommands {
		root.AddCommand(&cobra.Command{
			Use:   sc.use,
			Short: sc.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := opts.dbConfig()
				if err != nil {
					return err
				}

				if err = run(cmd.Context(), cfg, sc.fn); err != nil {
					return fmt.Errorf("migrate %s: %w", sc.use, err)
				}

				log.Info().Str("command", sc.use).Msg(sc.done)
				return nil
			},
		})
	}

	return root
}

// dbConfig resolves the connection settings: the flag wins over the
// environment, which wins over the .env file. Empty variables do not
// override the file.
func (o *options) dbConfig() (config.DB, error) {
	environment := map[string]string{}
	if o.envFile != "" {
		fromFile, err := godotenv.Read(o.envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return config.DB{}, fmt.Errorf("reading %s: %w", o.envFile, err)
		}
		for k, v := range fromFile {
			environment[k] = v
		}
	}
	for k, v := range env.ToMap(os.Environ()) {
		if v != "" {
			environment[k] = v
		}
	}

	var cfg config.DB
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return config.DB{}, fmt.Errorf("parsing database settings: %w", err)
	}

	if o.databaseURL != "" {
		cfg.URL = config.Secret(o.databaseURL)
	}
	if cfg.URL.Reveal() == "" {
		return config.DB{}, errNoDatabaseURL
	}
	if cfg.MaxOpenConns == 0 {
		cfg.MaxOpenConns = 1
	}

	return cfg, nil
}
