// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/timeline/internal/cache"
	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/store"
	"github.com/MKhiriev/timeline/models"
)

// Services groups every service of the API. All of them share the backend
// selected at startup.
type Services struct {
	TenantService  TenantService
	AuthService    AuthService
	UserService    UserService
	HealthService  HealthService
	AppInfoService AppInfoService
}

// NewServices wires the services over backend. c is probed by readiness
// only; tenant caching is done by the backend's repositories.
func NewServices(backend store.Backend, c cache.Cache, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	tenants, users := backend.Tenants(), backend.Users()

	return &Services{
		TenantService:  NewTenantService(tenants, users, logger),
		AuthService:    NewAuthService(tenants, users, cfg, logger),
		UserService:    NewUserService(tenants, users, logger),
		HealthService:  NewHealthService(backend, c, logger),
		AppInfoService: appInfo,
	}, nil
}
