package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("plusminus-server", &buf)

	l.Info().Str("user_id", "7").Msg("signed in")

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "plusminus-server", entry["role"])
	assert.Equal(t, "signed in", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields", "the caller is logged as a function name")
}

func TestNewLogger_DefaultsToDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("test", &buf)

	l.Trace().Msg("hidden")
	l.Debug().Msg("shown")

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
}

func TestSetLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    []string
		wantErr bool
	}{
		{level: "", want: []string{"debug", "info", "warn"}},
		{level: "trace", want: []string{"trace", "debug", "info", "warn"}},
		{level: "info", want: []string{"info", "warn"}},
		{level: "WARN", want: []string{"warn"}},
		{level: "loud", want: []string{"debug", "info", "warn"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger("test", &buf)

			err := l.SetLevel(tt.level)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			l.Trace().Msg("trace")
			l.Debug().Msg("debug")
			l.Info().Msg("info")
			l.Warn().Msg("warn")

			var got []string
			for _, e := range decodeEntries(t, &buf) {
				got = append(got, e["message"].(string))
			}
			if tt.wantErr {
				// A rejected level leaves the logger as it was.
				assert.Equal(t, []string{"debug", "info", "warn"}, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithComponent_KeepsParentFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger("plusminus-client", &buf)

	parent.WithComponent("auth_service").Info().Msg("child")
	parent.Info().Msg("parent")

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "auth_service", entries[0]["component"])
	assert.Equal(t, "plusminus-client", entries[0]["role"])
	assert.NotContains(t, entries[1], "component")
}

func TestGetChildLogger_IsIndependent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger("test", &buf)

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("trace_id", "abc").Logger()

	child.Info().Msg("child")
	parent.Info().Msg("parent")

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0]["trace_id"])
	assert.NotContains(t, entries[1], "trace_id")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("test", &buf)

	ctx := l.With().Str("trace_id", "t-1").Logger().WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	req := httptest.NewRequest("GET", "/api/profile/", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "t-1", e["trace_id"])
	}
}

func TestFromContext_WithoutLogger(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestNop_WritesNothing(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Error().Msg("dropped")
	assert.NoError(t, l.SetLevel("info"))
}
