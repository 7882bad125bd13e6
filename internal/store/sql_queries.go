// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-config/models"
)

const (
	userConfigsTable = "user_configs"

	whereKey = "role = ? AND uid = ?"

	// upsertUserConfigSuffix turns the INSERT into a full overwrite of an
	// existing document, including a fresh created_at.
	upsertUserConfigSuffix = `ON CONFLICT (role, uid) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		phone_number = EXCLUDED.phone_number,
		email = EXCLUDED.email,
		password = EXCLUDED.password,
		created_at = EXCLUDED.created_at`
)

var userConfigColumns = []string{
	"role",
	"uid",
	"first_name",
	"last_name",
	"phone_number",
	"email",
	"password",
	"created_at",
}

// buildSetUserConfigQuery builds an upsert of the whole record. created_at is
// taken from the database clock.
func buildSetUserConfigQuery(b sq.StatementBuilderType, config models.UserConfig) (string, []any, error) {
	return b.Insert(userConfigsTable).
		Columns(userConfigColumns...).
		Values(
			config.Role,
			config.UID,
			config.FirstName,
			config.LastName,
			config.PhoneNumber,
			config.Email,
			config.Password,
			sq.Expr("CURRENT_TIMESTAMP"),
		).
		Suffix(upsertUserConfigSuffix).
		ToSql()
}

func buildGetUserConfigQuery(b sq.StatementBuilderType, key models.UserConfigKey) (string, []any, error) {
	return b.Select(userConfigColumns...).
		From(userConfigsTable).
		Where(whereKey, key.Role, key.UID).
		ToSql()
}

// buildUpdateUserConfigQuery builds an UPDATE of the non-nil fields only.
// The caller must not pass an empty update.
func buildUpdateUserConfigQuery(b sq.StatementBuilderType, key models.UserConfigKey, update models.UserConfigUpdate) (string, []any, error) {
	query := b.Update(userConfigsTable)

	if update.FirstName != nil {
		query = query.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		query = query.Set("last_name", *update.LastName)
	}
	if update.PhoneNumber != nil {
		query = query.Set("phone_number", *update.PhoneNumber)
	}
	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.Password != nil {
		query = query.Set("password", *update.Password)
	}

	return query.Where(whereKey, key.Role, key.UID).ToSql()
}

func buildExistsUserConfigQuery(b sq.StatementBuilderType, key models.UserConfigKey) (string, []any, error) {
	return b.Select("1").
		From(userConfigsTable).
		Where(whereKey, key.Role, key.UID).
		ToSql()
}

func buildDeleteUserConfigQuery(b sq.StatementBuilderType, key models.UserConfigKey) (string, []any, error) {
	return b.Delete(userConfigsTable).
		Where(whereKey, key.Role, key.UID).
		ToSql()
}
