// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/timeline/internal/cache"
	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/crypto"
	"github.com/MKhiriev/timeline/internal/handler"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/metrics"
	"github.com/MKhiriev/timeline/internal/server"
	"github.com/MKhiriev/timeline/internal/service"
	"github.com/MKhiriev/timeline/internal/store"
	"github.com/MKhiriev/timeline/internal/workers"
	"github.com/MKhiriev/timeline/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// captured before printBuildInfo fills the blanks with N/A
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(config.DefaultAppName, config.DefaultLogLevel).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(cfg.App.Name, cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	sealer, err := crypto.NewSealer(cfg.Security.SecretKey.Reveal(), cfg.Security.EncryptionSalt.Reveal())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cache sealer")
	}
	tenantCache := cache.Connect(ctx, cfg.Cache, sealer, log)

	var (
		m        *metrics.Metrics
		observer store.CacheLookupObserver
	)
	if cfg.Telemetry.Enabled {
		m = metrics.New()
		observer = m
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, store.StoragesOptions{
		Cache:    tenantCache,
		CacheTTL: cfg.Cache.TenantTTL.Duration(),
		Observer: observer,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, tenantCache, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers, err := workers.NewWorkers(storages, m, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	// workers stop before the backend they probe is closed
	srv, err := server.NewServer(handlers, cfg.Server, log, bgWorkers, storages, tenantCache)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers.Run()
	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
