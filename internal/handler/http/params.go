// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/timeline/internal/utils"
	"github.com/MKhiriev/timeline/models"
)

// decodeBody decodes the JSON body into dst. Syntax errors, unknown fields
// and trailing data are reported as ErrMalformedBody.
func decodeBody(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r, dst)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.Is(err, utils.ErrEmptyBody) || errors.As(err, &maxBytesErr) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrMalformedBody, err)
}

// pageFromQuery reads ?skip= and ?limit=. Missing values take their
// defaults; out of range values are rejected rather than clamped.
func pageFromQuery(r *http.Request) (models.Page, error) {
	page := models.Page{Skip: 0, Limit: models.DefaultPageLimit}
	query := r.URL.Query()

	if raw := query.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return models.Page{}, ErrInvalidPagination
		}
		page.Skip = skip
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > models.MaxPageLimit {
			return models.Page{}, ErrInvalidPagination
		}
		page.Limit = limit
	}

	return page, nil
}
