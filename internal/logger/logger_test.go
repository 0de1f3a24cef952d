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

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNew_Fields verifies that entries carry role, timestamp and caller.
func TestNew_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "notifier")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "notifier", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("server"))
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

// TestGetChildLogger_InheritsFields verifies that a child keeps the parent's
// fields and that enriching it leaves the parent untouched.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "server")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.With().Str("trace_id", "abc").Logger()

	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "server")
	l.Logger = l.With().Str("trace_id", "t-1").Logger()

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil.
func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, &buf)["req-key"])
}
