// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-config/internal/config"
	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/migrations"
)

// DB wraps a *sql.DB together with the driver-specific pieces the
// repositories need: placeholder format, migration dialect and error
// classifier.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a connection using the configured driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema for the current driver.
func (db *DB) Migrate() error {
	dialect := migrations.DialectPostgres
	if db.driver == config.DriverSQLite {
		dialect = migrations.DialectSQLite
	}

	return migrations.Migrate(db.DB, dialect)
}

// builder returns a squirrel statement builder with the placeholder format
// of the current driver.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == config.DriverSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// retryable reports whether err was classified as transient.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}

	return db.errorClassificator.Classify(err) == Retryable
}
