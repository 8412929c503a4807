package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	l.Info().Int64("account_id", 7).Msg("account registered")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "account registered", entry["message"])
	assert.Equal(t, float64(7), entry["account_id"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_WritesNothing(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	assert.NotPanics(t, func() { l.Error().Str("username", "ada_l").Msg("ignored") })
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_DoesNotLeakFieldsToParent(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "t-1")
	})

	child.Info().Msg("child")
	assert.Equal(t, "t-1", decodeEntry(t, buf.Bytes())["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, buf.Bytes()), "trace_id")
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()
	ctx := attached.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "t-2", decodeEntry(t, buf.Bytes())["trace_id"])

	buf.Reset()
	req := httptest.NewRequest("GET", "/api/version", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "t-2", decodeEntry(t, buf.Bytes())["trace_id"])
}

func TestFromContext_WithoutLogger(t *testing.T) {
	l := FromContext(context.Background())

	require.NotNil(t, l)
	require.Nil(t, zerolog.DefaultContextLogger)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
	assert.NotPanics(t, func() { l.Info().Msg("dropped") })
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("client", path)
	l.Info().Str("username", "ada_l").Msg("registered")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	entry := decodeEntry(t, data)
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "ada_l", entry["username"])
}

func TestNewClientLogger_UnwritablePath(t *testing.T) {
	l := NewClientLogger("client", filepath.Join(t.TempDir(), "missing", "dir", "client.log"))

	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("discarded") })
}
