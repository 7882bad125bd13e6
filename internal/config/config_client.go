// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientAuth holds the credentials the client presents to the service.
type ClientAuth struct {
	// Token is a ready bearer token. When empty, a token is minted from
	// SignKey, Issuer, Duration and Subject.
	Token string
	// SignKey is the HMAC key used to mint development tokens.
	SignKey string
	// Issuer is the "iss" claim of minted tokens.
	Issuer string
	// Duration is the lifetime of minted tokens.
	Duration time.Duration
	// Subject is the uid carried by minted tokens.
	Subject string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Auth contains the bearer credentials.
	Auth ClientAuth
}

// GetClientConfig builds and validates a client-specific config view.
//
// Command-line flags belong to the client itself, so only environment
// variables and the JSON file (CONFIG) are consulted.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Auth: ClientAuth{
			Token:    cfg.Adapter.Token,
			SignKey:  cfg.App.TokenSignKey,
			Issuer:   cfg.App.TokenIssuer,
			Duration: cfg.App.TokenDuration,
			Subject:  cfg.Adapter.Subject,
		},
	}
}
