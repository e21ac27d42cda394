package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/tokennet/internal/log"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := log.New(log.Options{
		Level:  "debug",
		Format: log.FormatJSON,
		Output: &buf,
		Attrs:  []slog.Attr{slog.String("service", "demo")},
	})
	require.NoError(t, err)

	l.Debug("fired", log.Transition("inc0"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "fired", rec["msg"])
	assert.Equal(t, "inc0", rec["transition"])
	assert.Equal(t, "demo", rec["service"])
}

func TestNewTextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := log.New(log.Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewInvalid(t *testing.T) {
	_, err := log.New(log.Options{Format: "xml"})
	assert.ErrorContains(t, err, "invalid log format")

	_, err = log.New(log.Options{Level: "loud"})
	assert.ErrorContains(t, err, "invalid log level")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := log.ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestDiscard(t *testing.T) {
	assert.False(t, log.Discard().Enabled(t.Context(), slog.LevelError))
}
