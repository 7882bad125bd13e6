// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-user-config/models"
)

// BearerPrefix is the scheme prefix an Authorization header must start with.
const BearerPrefix = "Bearer "

var (
	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// header is missing, lacks the bearer prefix or carries an empty token.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	errEmptySubject = errors.New("empty subject error")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token carries the issuer (iss), subject (sub), issued-at (iat) and
// expiry (exp) claims. All parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("user-config", "uid-42", time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns the identity it
// carries.
//
// Validation includes:
//   - HS256 signature check against tokenSignKey
//   - issuer (iss) equal to tokenIssuer
//   - a present, unexpired exp claim
//   - a non-empty subject (sub), returned as the identity UID
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return models.Identity{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.Identity{}, errEmptySubject
	}

	return models.Identity{Token: token, UID: subject}, nil
}

// ParseBearerToken extracts the token from an Authorization header of the
// form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	if !strings.HasPrefix(authorizationHeader, BearerPrefix) {
		return "", ErrInvalidAuthorizationHeader
	}

	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, BearerPrefix))
	if token == "" {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
