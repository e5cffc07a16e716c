// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/timeline/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenParams describes an access token to be issued.
type TokenParams struct {
	Issuer    string
	UserID    string
	TenantID  string
	Username  string
	TTL       time.Duration
	SignKey   string
	Algorithm string // HS256, HS384 or HS512
}

// GenerateJWTToken creates a signed HMAC JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus TTL
//   - tenant_id and username private claims
//
// Returns an error if any required parameter is empty or the algorithm is
// not an HMAC one.
func GenerateJWTToken(p TokenParams) (models.Token, error) {
	if p.UserID == "" || p.TenantID == "" || p.TTL <= 0 || p.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method, err := hmacMethod(p.Algorithm)
	if err != nil {
		return models.Token{}, err
	}

	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   p.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(p.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		TenantID: p.TenantID,
		Username: p.Username,
	}

	tokenString, err := jwt.NewWithClaims(method, claims).SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes signature verification with signKey restricted to
// algorithm, the expiration claim, the issuer claim when issuer is not empty,
// and presence of the sub and tenant_id claims.
//
// Errors wrap jwt.ErrTokenExpired when the token is expired, so callers can
// tell expiry apart from other failures with errors.Is.
func ValidateAndParseJWTToken(tokenString, signKey, algorithm, issuer string) (models.Token, error) {
	method, err := hmacMethod(algorithm)
	if err != nil {
		return models.Token{}, err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	var claims models.Claims
	_, err = jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func hmacMethod(algorithm string) (*jwt.SigningMethodHMAC, error) {
	switch algorithm {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
}
