// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package userconfig

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetHandler drops the cached handler and restores the builder when the
// test ends.
func resetHandler(t *testing.T) {
	t.Helper()

	mu.Lock()
	handler = nil
	mu.Unlock()

	build := buildHandler
	t.Cleanup(func() {
		mu.Lock()
		handler = nil
		buildHandler = build
		mu.Unlock()
	})
}

func invoke(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	UserConfig(rr, req)
	return rr
}

func TestUserConfig_ServesEndpoint(t *testing.T) {
	resetHandler(t)
	t.Setenv("CONFIG", "")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite3")
	t.Setenv("STORAGE_DB_DATABASE_URI", ":memory:")
	t.Setenv("APP_AUTH_DISABLED", "true")
	t.Setenv("APP_AUTH_TEST_UID", "uid-fn")

	rr := invoke(http.MethodOptions, "/userConfig", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = invoke(http.MethodPost, "/userConfig", `{"role":"customers","firstName":"Ada"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"success":true,"message":"Created successfully."}`, rr.Body.String())

	// the same store serves the next invocation
	rr = invoke(http.MethodGet, "/?role=customers", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"firstName":"Ada"`)

	rr = invoke("FOO", "/userConfig?role=customers", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"error":"Method Not Allowed."}`, rr.Body.String())
}

func TestUserConfig_InitFailure(t *testing.T) {
	resetHandler(t)

	calls := 0
	buildHandler = func(context.Context) (http.Handler, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("store unavailable")
		}
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}), nil
	}

	rr := invoke(http.MethodGet, "/userConfig?role=customers", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Operation failed."}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	// a failed build is retried, a successful one is cached
	assert.Equal(t, http.StatusTeapot, invoke(http.MethodGet, "/userConfig", "").Code)
	assert.Equal(t, http.StatusTeapot, invoke(http.MethodGet, "/userConfig", "").Code)
	assert.Equal(t, 2, calls)
}
