// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/models"
)

// userConfigRepository is the SQL implementation of [UserConfigRepository].
// Each document is a row of the user_configs table keyed by (role, uid).
type userConfigRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserConfigRepository constructs a [UserConfigRepository] backed by db.
func NewUserConfigRepository(db *DB, logger *logger.Logger) UserConfigRepository {
	logger.Debug().Msg("creating user config repository")
	return &userConfigRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userConfigRepository) Set(ctx context.Context, config models.UserConfig) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetUserConfigQuery(r.db.builder(), config)
	if err != nil {
		log.Err(err).Str("func", "*userConfigRepository.Set").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userConfigRepository.Set").
			Bool("retryable", r.db.retryable(err)).
			Msg("error writing user config")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *userConfigRepository) Get(ctx context.Context, key models.UserConfigKey) (models.UserConfig, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserConfigQuery(r.db.builder(), key)
	if err != nil {
		log.Err(err).Str("func", "*userConfigRepository.Get").Msg("error building query")
		return models.UserConfig{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var config models.UserConfig
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&config.Role,
		&config.UID,
		&config.FirstName,
		&config.LastName,
		&config.PhoneNumber,
		&config.Email,
		&config.Password,
		&config.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserConfig{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*userConfigRepository.Get").
			Bool("retryable", r.db.retryable(err)).
			Msg("error reading user config")
		return models.UserConfig{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return config, true, nil
}

func (r *userConfigRepository) Update(ctx context.Context, key models.UserConfigKey, update models.UserConfigUpdate) error {
	log := logger.FromContext(ctx)

	// nothing to set: the update only has to prove the record exists
	if update.IsEmpty() {
		return r.exists(ctx, key)
	}

	query, args, err := buildUpdateUserConfigQuery(r.db.builder(), key, update)
	if err != nil {
		log.Err(err).Str("func", "*userConfigRepository.Update").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userConfigRepository.Update").
			Bool("retryable", r.db.retryable(err)).
			Msg("error updating user config")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userConfigRepository.Update").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserConfigNotFound
	}

	return nil
}

func (r *userConfigRepository) Delete(ctx context.Context, key models.UserConfigKey) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserConfigQuery(r.db.builder(), key)
	if err != nil {
		log.Err(err).Str("func", "*userConfigRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// zero affected rows is fine: delete is idempotent
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userConfigRepository.Delete").
			Bool("retryable", r.db.retryable(err)).
			Msg("error deleting user config")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *userConfigRepository) exists(ctx context.Context, key models.UserConfigKey) error {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsUserConfigQuery(r.db.builder(), key)
	if err != nil {
		log.Err(err).Str("func", "*userConfigRepository.exists").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserConfigNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userConfigRepository.exists").Msg("error checking user config")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
