// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/timeline/internal/logger"
	"github.com/MKhiriev/timeline/internal/utils"
	"github.com/MKhiriev/timeline/models"
	"github.com/go-resty/resty/v2"
)

// APIPrefix is the path prefix of every API route.
const APIPrefix = "/api/v1"

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. address may omit the scheme, in which case http:// is
// assumed.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL+APIPrefix, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("address %q has no host", raw)
	}

	return strings.TrimRight(u.Scheme+"://"+u.Host+u.Path, "/"), nil
}

func (h *httpServerAdapter) Liveness(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return health, fmt.Errorf("liveness request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return health, err
	}

	return health, decode(resp, &health)
}

func (h *httpServerAdapter) Readiness(ctx context.Context) (models.ReadinessResponse, error) {
	var ready models.ReadinessResponse
	resp, err := h.client.R().SetContext(ctx).Get("/health/ready")
	if err != nil {
		return ready, fmt.Errorf("readiness request: %w", err)
	}

	mapped := mapHTTPError(resp)
	if mapped != nil && !errors.Is(mapped, ErrUnavailable) {
		return ready, mapped
	}

	// a not ready answer still carries the check results
	if err = decode(resp, &ready); err != nil {
		return ready, err
	}
	if mapped != nil {
		h.logger.Debug().Str("status", ready.Status).Any("checks", ready.Checks).Msg("server not ready")
	}
	return ready, mapped
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return version, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return version, err
	}

	return version, decode(resp, &version)
}

func decode(resp *resty.Response, dst any) error {
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decoding %s response: %w", resp.Request.URL, err)
	}
	return nil
}
