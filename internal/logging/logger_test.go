package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	logger.WithComponent("normalizer").
		With("breakpoints", 5).
		Warn(context.Background(), errors.New("bad value"), "Breakpoint rejected", "name", "sm")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Breakpoint rejected", entry["msg"])
	assert.Equal(t, "normalizer", entry["component"])
	assert.Equal(t, "bad value", entry["error"])
	assert.Equal(t, float64(5), entry["breakpoints"])
	assert.Equal(t, "sm", entry["name"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Format: "text", Output: &buf})
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	assert.Empty(t, buf.String())

	logger.Warn(ctx, nil, "warn message")
	logger.Error(ctx, nil, "error message")
	out := buf.String()
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestWithDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&LoggerConfig{Level: LevelInfo, Format: "text", Output: &buf})

	_ = base.With("request", "one")
	base.Info(context.Background(), "plain")
	assert.NotContains(t, buf.String(), "request=one")
}

func TestStartOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "text", Output: &buf})

	op := logger.StartOperation("synthesize")
	op.End(context.Background())

	out := buf.String()
	assert.Contains(t, out, "operation=synthesize")
	assert.Contains(t, out, "duration=")
}
