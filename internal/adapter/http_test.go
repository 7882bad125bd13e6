// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-config/internal/config"
	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/models"
)

func strPtr(s string) *string { return &s }

// newTestAdapter returns an adapter pointed at srv with token "t0k3n".
func newTestAdapter(t *testing.T, srv *httptest.Server) UserConfigAdapter {
	t.Helper()

	a, err := NewHTTPUserConfigAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)
	a.SetToken(" t0k3n ")

	return a
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewHTTPUserConfigAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
		wantErr bool
	}{
		{name: "host and port", address: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", address: "https://config.example.com/", want: "https://config.example.com"},
		{name: "empty", address: "  ", wantErr: true},
		{name: "no host", address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.address)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NewHTTPUserConfigAdapter(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, errEmptyAddress)
}

func TestCreate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/userConfig", r.URL.Path)
		assert.Equal(t, "customers", r.URL.Query().Get("role"))
		assert.Equal(t, "Bearer t0k3n", r.Header.Get("Authorization"))

		var payload models.UserConfigPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Ann", *payload.FirstName)
		assert.Nil(t, payload.Password)

		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true, Message: "Created successfully."})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv).Create(context.Background(), "customers", models.UserConfigPayload{FirstName: strPtr("Ann")})

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "Created successfully.", got.Message)
}

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)

		_, _ = io.WriteString(w, `{"firstName":"Ann","email":"a@x.io","createdAt":"2026-01-02T03:04:05Z"}`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv).Get(context.Background(), "customers")

	require.NoError(t, err)
	assert.Equal(t, "customers", got.Role)
	assert.Equal(t, "Ann", *got.FirstName)
	assert.Equal(t, "a@x.io", *got.Email)
	assert.Nil(t, got.Password)
	assert.Equal(t, 2026, got.CreatedAt.Year())
}

func TestUpdateAndDelete_Methods(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true, Message: "ok"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	_, err := a.Update(context.Background(), "drivers", models.UserConfigPayload{LastName: strPtr("Lee")})
	require.NoError(t, err)
	_, err = a.Delete(context.Background(), "drivers")
	require.NoError(t, err)

	assert.Equal(t, []string{http.MethodPatch, http.MethodDelete}, methods)
}

func TestErrors_Mapped(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "unauthenticated", status: http.StatusUnauthorized, body: `{"error":"Invalid or expired token."}`, wantErr: ErrUnauthorized, wantMsg: "Invalid or expired token."},
		{name: "missing role", status: http.StatusBadRequest, body: `{"error":"Missing 'role' in query or body."}`, wantErr: ErrBadRequest, wantMsg: "Missing 'role'"},
		{name: "not found json", status: http.StatusNotFound, body: `{"error":"User config not found."}`, wantErr: ErrNotFound, wantMsg: "User config not found."},
		{name: "not found text", status: http.StatusNotFound, body: "Not Found", wantErr: ErrNotFound, wantMsg: "Not Found"},
		{name: "store failure", status: http.StatusInternalServerError, body: `{"error":"Operation failed."}`, wantErr: ErrInternalServerError, wantMsg: "Operation failed."},
		{name: "unmapped", status: http.StatusBadGateway, wantMsg: "http 502: Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv).Get(context.Background(), "customers")

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestEmptyRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv).Delete(context.Background(), "")
	assert.ErrorIs(t, err, errEmptyRole)
}
