// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/service"
	"github.com/MKhiriev/timeline/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// Hand-written fakes for the service interfaces. Every method delegates to
// an optional function field and panics when the test did not set it, so an
// unexpected call fails loudly.

type fakeAuthService struct {
	register   func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	login      func(ctx context.Context, req models.LoginRequest) (models.Token, error)
	parseToken func(ctx context.Context, tokenString string) (models.Claims, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.register(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	return f.login(ctx, req)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	return f.parseToken(ctx, tokenString)
}

func (f *fakeAuthService) TokenTTL() time.Duration {
	return 30 * time.Minute
}

type fakeTenantService struct {
	create       func(ctx context.Context, req models.CreateTenantRequest) (models.TenantCreated, error)
	get          func(ctx context.Context, tenantID string) (models.Tenant, error)
	list         func(ctx context.Context, page models.Page) ([]models.Tenant, error)
	update       func(ctx context.Context, tenantID string, req models.UpdateTenantRequest) (models.Tenant, error)
	changeStatus func(ctx context.Context, tenantID string, status models.TenantStatus) (models.Tenant, error)
	archive      func(ctx context.Context, tenantID string) error
}

func (f *fakeTenantService) CreateTenant(ctx context.Context, req models.CreateTenantRequest) (models.TenantCreated, error) {
	return f.create(ctx, req)
}

func (f *fakeTenantService) GetTenant(ctx context.Context, tenantID string) (models.Tenant, error) {
	return f.get(ctx, tenantID)
}

func (f *fakeTenantService) ListTenants(ctx context.Context, page models.Page) ([]models.Tenant, error) {
	return f.list(ctx, page)
}

func (f *fakeTenantService) UpdateTenant(ctx context.Context, tenantID string, req models.UpdateTenantRequest) (models.Tenant, error) {
	return f.update(ctx, tenantID, req)
}

func (f *fakeTenantService) ChangeTenantStatus(ctx context.Context, tenantID string, status models.TenantStatus) (models.Tenant, error) {
	return f.changeStatus(ctx, tenantID, status)
}

func (f *fakeTenantService) ArchiveTenant(ctx context.Context, tenantID string) error {
	return f.archive(ctx, tenantID)
}

type fakeUserService struct {
	me           func(ctx context.Context, claims models.Claims) (models.User, error)
	updateMe     func(ctx context.Context, claims models.Claims, req models.UpdateMeRequest) (models.User, error)
	deactivateMe func(ctx context.Context, claims models.Claims) error
	create       func(ctx context.Context, tenantID string, req models.CreateUserRequest) (models.User, error)
	get          func(ctx context.Context, tenantID, userID string) (models.User, error)
	list         func(ctx context.Context, tenantID string, page models.Page) ([]models.User, error)
	setActive    func(ctx context.Context, tenantID, userID string, active bool) (models.User, error)
}

// Me resolves every caller to testUser unless overridden.
func (f *fakeUserService) Me(ctx context.Context, claims models.Claims) (models.User, error) {
	if f.me == nil {
		return testUser, nil
	}
	return f.me(ctx, claims)
}

func (f *fakeUserService) UpdateMe(ctx context.Context, claims models.Claims, req models.UpdateMeRequest) (models.User, error) {
	return f.updateMe(ctx, claims, req)
}

func (f *fakeUserService) DeactivateMe(ctx context.Context, claims models.Claims) error {
	return f.deactivateMe(ctx, claims)
}

func (f *fakeUserService) CreateUser(ctx context.Context, tenantID string, req models.CreateUserRequest) (models.User, error) {
	return f.create(ctx, tenantID, req)
}

func (f *fakeUserService) GetUser(ctx context.Context, tenantID, userID string) (models.User, error) {
	return f.get(ctx, tenantID, userID)
}

func (f *fakeUserService) ListUsers(ctx context.Context, tenantID string, page models.Page) ([]models.User, error) {
	return f.list(ctx, tenantID, page)
}

func (f *fakeUserService) SetUserActive(ctx context.Context, tenantID, userID string, active bool) (models.User, error) {
	return f.setActive(ctx, tenantID, userID, active)
}

type fakeHealthService struct {
	ready bool
}

func (f *fakeHealthService) Liveness(context.Context) models.HealthResponse {
	return models.HealthResponse{Status: models.HealthStatusOK}
}

func (f *fakeHealthService) Readiness(context.Context) (models.ReadinessResponse, bool) {
	if !f.ready {
		return models.ReadinessResponse{
			Status:  models.HealthStatusNotReady,
			Backend: "postgres",
			Checks:  map[string]string{service.CheckBackend: service.CheckUnavailable},
		}, false
	}
	return models.ReadinessResponse{
		Status:  models.HealthStatusReady,
		Backend: "postgres",
		Checks:  map[string]string{service.CheckBackend: service.CheckOK},
	}, true
}

type fakeAppInfoService struct{}

func (fakeAppInfoService) GetAppVersion(context.Context) string { return "1.0.0" }

func (fakeAppInfoService) GetAppInfo(context.Context) models.VersionResponse {
	return models.VersionResponse{Name: "timeline", Version: "1.0.0", Backend: "postgres"}
}

// ── helpers ──

const testToken = "valid-token"

var testClaims = models.Claims{
	RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"},
	TenantID:         "t-1",
	Username:         "alice",
}

func testServerConfig() config.StructuredConfig {
	return config.StructuredConfig{
		Server: config.Server{
			RequestTimeout:      config.Seconds(5 * time.Second),
			MaxBodyBytes:        1024,
			AllowedOrigins:      []string{"http://localhost:3000"},
			TenantHeader:        config.DefaultTenantHeader,
			RequestIDHeader:     config.DefaultRequestIDHeader,
			CorrelationIDHeader: config.DefaultCorrelationIDHeader,
		},
	}
}

// acceptingAuth accepts testToken only.
func acceptingAuth() *fakeAuthService {
	return &fakeAuthService{
		parseToken: func(_ context.Context, tokenString string) (models.Claims, error) {
			if tokenString != testToken {
				return models.Claims{}, service.ErrTokenIsInvalid
			}
			return testClaims, nil
		},
	}
}

// newTestServices fills every service with a fake. Callers override the
// ones they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		TenantService:  &fakeTenantService{},
		AuthService:    acceptingAuth(),
		UserService:    &fakeUserService{},
		HealthService:  &fakeHealthService{ready: true},
		AppInfoService: fakeAppInfoService{},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, nil, testServerConfig(), logger.Nop())
}

// do sends a request through the full router.
func do(t *testing.T, h *Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// serveDirect calls one handler func without the router or middleware.
func serveDirect(handler http.HandlerFunc, method, path string, body io.Reader) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(method, path, body))
	return rr
}

func authHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

func tenantHeaders(tenantID string) map[string]string {
	headers := authHeaders()
	headers[config.DefaultTenantHeader] = tenantID
	return headers
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp
}

func decodeInto[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
