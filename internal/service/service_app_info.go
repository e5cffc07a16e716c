// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/models"
)

type appInfoService struct {
	appName    string
	appVersion string
	backend    config.Backend
	build      models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns ErrVersionIsNotSpecified when cfg.App.Version is
// empty. build carries the linker-injected build metadata and may be zero.
func NewAppInfoService(cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.App.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appName:    cfg.App.Name,
		appVersion: cfg.App.Version,
		backend:    cfg.Storage.Backend,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.VersionResponse {
	return models.VersionResponse{
		Name:    s.appName,
		Version: s.appVersion,
		Backend: string(s.backend),
		Commit:  s.build.BuildCommit(),
		Date:    s.build.BuildDate(),
	}
}
