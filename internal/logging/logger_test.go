package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/docbridge/internal/logging"
)

func noColor() *bool {
	b := false
	return &b
}

func TestConsoleLoggerFormatsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf, Color: noColor()})
	require.NoError(t, err)

	logger.With("source", "page.html").WithGroup("ops").Info("converted", "count", 12, "note", "two words")

	line := buf.String()
	assert.Contains(t, line, " INFO converted")
	assert.Contains(t, line, "source=page.html")
	assert.Contains(t, line, "ops.count=12")
	assert.Contains(t, line, `ops.note="two words"`)
	assert.NotContains(t, line, ".go:", "info lines carry no caller")
	assert.NotContains(t, line, "\x1b[")
}

func TestConsoleLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Writer: &buf, Color: noColor()})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN shown")
}

func TestConsoleLoggerColor(t *testing.T) {
	var buf bytes.Buffer
	on := true
	logger, err := logging.New(logging.Options{Writer: &buf, Color: &on})
	require.NoError(t, err)

	logger.Error("boom")
	assert.Contains(t, buf.String(), "\x1b[31mERROR\x1b[0m")
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	require.NoError(t, err)

	logger.Debug("pushing", "requests", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "pushing", entry["msg"])
	assert.EqualValues(t, 3, entry["requests"])
	assert.Contains(t, entry, "ts")
	assert.Contains(t, entry["source"], "logger_test.go:")
}

func TestNewRejectsUnknownValues(t *testing.T) {
	_, err := logging.New(logging.Options{Format: "xml"})
	assert.Error(t, err)

	_, err = logging.New(logging.Options{Level: "loud"})
	assert.Error(t, err)
}

func TestWithContextAddsConversionID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf, Color: noColor()})
	require.NoError(t, err)

	ctx := logging.WithConversionID(context.Background(), "abc-123")
	logging.WithContext(ctx, logger).Info("started")
	logging.WithContext(context.Background(), logger).Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "conversion_id=abc-123")
	assert.NotContains(t, lines[1], "conversion_id")
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	logging.WithContext(context.Background(), nil).Info("ignored")
}
