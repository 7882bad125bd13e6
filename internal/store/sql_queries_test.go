// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-config/models"
)

func strPtr(s string) *string { return &s }

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	testKey  = models.UserConfigKey{Role: "customers", UID: "uid-1"}
)

func TestBuildSetUserConfigQuery(t *testing.T) {
	config := models.UserConfig{
		Role:      "customers",
		UID:       "uid-1",
		FirstName: strPtr("Ada"),
		Email:     strPtr("ada@example.com"),
	}

	query, args, err := buildSetUserConfigQuery(dollar, config)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into user_configs")
	require.Contains(t, q, "current_timestamp")
	require.Contains(t, q, "on conflict (role, uid) do update set")
	require.Contains(t, q, "created_at = excluded.created_at")
	require.Contains(t, query, "$7")
	require.NotContains(t, query, "$8")

	// created_at is not a bind argument
	require.Len(t, args, 7)
	require.Equal(t, "customers", args[0])
	require.Equal(t, "uid-1", args[1])
	require.Equal(t, config.FirstName, args[2])
	require.Nil(t, args[3])
	require.Equal(t, config.Email, args[5])
	require.Nil(t, args[6])
}

func TestBuildGetUserConfigQuery(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{name: "postgres placeholders", builder: dollar, placeholder: "role = $1 AND uid = $2"},
		{name: "sqlite placeholders", builder: question, placeholder: "role = ? AND uid = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetUserConfigQuery(tt.builder, testKey)
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "select")
			require.Contains(t, q, "from user_configs")
			for _, column := range userConfigColumns {
				require.Contains(t, q, column)
			}
			require.Contains(t, query, tt.placeholder)
			require.Equal(t, []any{"customers", "uid-1"}, args)
		})
	}
}

func TestBuildUpdateUserConfigQuery(t *testing.T) {
	tests := []struct {
		name       string
		update     models.UserConfigUpdate
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "single field",
			update: models.UserConfigUpdate{LastName: strPtr("Lovelace")},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "UPDATE user_configs SET last_name = $1")
				require.Contains(t, query, "WHERE role = $2 AND uid = $3")
				require.Equal(t, []any{"Lovelace", "customers", "uid-1"}, args)
			},
		},
		{
			name: "every field in column order",
			update: models.UserConfigUpdate{
				FirstName:   strPtr("Ada"),
				LastName:    strPtr("Lovelace"),
				PhoneNumber: strPtr("+100"),
				Email:       strPtr("ada@example.com"),
				Password:    strPtr("secret"),
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Less(t, strings.Index(q, "first_name"), strings.Index(q, "last_name"))
				require.Less(t, strings.Index(q, "phone_number"), strings.Index(q, "email"))
				require.Contains(t, q, "password = $5")
				require.Len(t, args, 7)
			},
		},
		{
			name:   "created_at is never touched",
			update: models.UserConfigUpdate{Email: strPtr("ada@example.com")},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.NotContains(t, query, "created_at")
				require.NotContains(t, query, "password")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserConfigQuery(dollar, testKey, tt.update)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func TestBuildDeleteUserConfigQuery(t *testing.T) {
	query, args, err := buildDeleteUserConfigQuery(dollar, testKey)
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM user_configs WHERE role = $1 AND uid = $2", query)
	require.Equal(t, []any{"customers", "uid-1"}, args)
}

func TestBuildExistsUserConfigQuery(t *testing.T) {
	query, args, err := buildExistsUserConfigQuery(question, testKey)
	require.NoError(t, err)
	require.Equal(t, "SELECT 1 FROM user_configs WHERE role = ? AND uid = ?", query)
	require.Len(t, args, 2)
}
