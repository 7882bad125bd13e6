// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-config/internal/config"
	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/internal/utils"
	"github.com/MKhiriev/go-user-config/models"
)

// authService extracts the bearer token from the Authorization header and
// hands it to a TokenVerifier.
type authService struct {
	verifier TokenVerifier
	logger   *logger.Logger
}

// NewAuthService returns the AuthService selected by cfg.
//
// With cfg.AuthDisabled set, every request is attributed to cfg.AuthTestUID
// without looking at the Authorization header. That mode exists for local
// testing only and is off unless configured explicitly.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	if cfg.AuthDisabled {
		logger.Warn().Str("uid", cfg.AuthTestUID).Msg("authentication is DISABLED: every request uses the test uid")
		return &bypassAuthService{uid: cfg.AuthTestUID}
	}

	return NewAuthServiceWithVerifier(NewJWTVerifier(cfg.TokenSignKey, cfg.TokenIssuer), logger)
}

// NewAuthServiceWithVerifier wires an AuthService to an arbitrary identity
// provider.
func NewAuthServiceWithVerifier(verifier TokenVerifier, logger *logger.Logger) AuthService {
	return &authService{
		verifier: verifier,
		logger:   logger,
	}
}

// Authenticate returns ErrMissingAuthorization when the header is absent or
// not a bearer credential, and ErrTokenIsExpiredOrInvalid (wrapping the cause)
// when verification fails.
func (a *authService) Authenticate(ctx context.Context, authorizationHeader string) (models.Identity, error) {
	token, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrMissingAuthorization, err)
	}

	identity, err := a.verifier.VerifyToken(ctx, token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	if identity.UID == "" {
		return models.Identity{}, fmt.Errorf("%w: empty uid", ErrTokenIsExpiredOrInvalid)
	}

	return identity, nil
}

// bypassAuthService attributes every request to a fixed uid.
type bypassAuthService struct {
	uid string
}

func (b *bypassAuthService) Authenticate(_ context.Context, _ string) (models.Identity, error) {
	return models.Identity{UID: b.uid}, nil
}

// jwtVerifier verifies HS256 tokens signed with a shared key.
type jwtVerifier struct {
	tokenSignKey string
	tokenIssuer  string
}

// NewJWTVerifier constructs a TokenVerifier for HS256 tokens carrying the
// given issuer.
func NewJWTVerifier(tokenSignKey, tokenIssuer string) TokenVerifier {
	return &jwtVerifier{
		tokenSignKey: tokenSignKey,
		tokenIssuer:  tokenIssuer,
	}
}

func (j *jwtVerifier) VerifyToken(_ context.Context, token string) (models.Identity, error) {
	return utils.ValidateAndParseJWTToken(token, j.tokenSignKey, j.tokenIssuer)
}
