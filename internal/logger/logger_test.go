// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captured redirects l into a buffer and returns the decoded entries after
// emit ran.
func captured(t *testing.T, l *Logger, emit func(l *Logger)) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	emit(l)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	entry := captured(t, NewLogger("user-config-server"), func(l *Logger) {
		l.Info().Msg("started")
	})

	assert.Equal(t, "user-config-server", entry["role"])
	assert.Equal(t, "started", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewConsoleLogger(t *testing.T) {
	l := NewConsoleLogger("user-config-client")

	require.NotNil(t, l)
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_TraceIDDoesNotLeak(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := NewLogger("user-config-server")
	parent.Logger = parent.Output(&parentBuf)

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "0190-abc")
	})
	child.Logger = child.Output(&childBuf)

	child.Info().Msg("request")
	parent.Info().Msg("startup")

	var childEntry, parentEntry map[string]any
	require.NoError(t, json.Unmarshal(childBuf.Bytes(), &childEntry))
	require.NoError(t, json.Unmarshal(parentBuf.Bytes(), &parentEntry))

	assert.NotSame(t, parent, child)
	assert.Equal(t, "0190-abc", childEntry["trace_id"])
	assert.Equal(t, "user-config-server", childEntry["role"])
	assert.NotContains(t, parentEntry, "trace_id")
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()

	FromContext(zl.WithContext(context.Background())).Warn().Msg("store failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "t-1", entry["trace_id"])
	assert.Equal(t, "warn", entry["level"])
}

func TestFromRequest(t *testing.T) {
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/userConfig", nil)))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()
	req := httptest.NewRequest(http.MethodPatch, "/userConfig?role=drivers", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("updated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "t-2", entry["trace_id"])
}
