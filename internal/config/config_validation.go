// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks that the final merged [StructuredConfig] can start the
// server: a supported driver with a DSN, and either token verification
// settings or an explicitly enabled auth bypass with a test uid.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.AuthDisabled {
		if cfg.App.AuthTestUID == "" {
			return fmt.Errorf("%w: auth is disabled but no test uid is set", ErrInvalidAuthConfigs)
		}
		return nil
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAuthConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 10 * time.Second
	}

	if cfg.Auth.Token != "" {
		return nil
	}

	if cfg.Auth.SignKey == "" || cfg.Auth.Issuer == "" || cfg.Auth.Subject == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.Duration == 0 {
		cfg.Auth.Duration = time.Hour
	}

	return nil
}
