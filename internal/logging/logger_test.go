package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Out: &buf})

	logger.Debug().Msg("hidden")
	logger.Info().Str("mode", "dark").Msg("theme mode set")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "dark", entry["mode"])
	assert.Equal(t, "theme mode set", entry["message"])
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "console", Out: &buf})
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestComponentUsesBase(t *testing.T) {
	t.Cleanup(func() { SetBase(zerolog.Nop()) })

	var buf bytes.Buffer
	Init(Config{Level: zerolog.InfoLevel, Format: "json", Out: &buf})
	l := Component("theme")
	l.Info().Msg("ready")

	assert.Contains(t, buf.String(), `"component":"theme"`)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Out: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "audit")
	ctx = WithMode(ctx, "high-contrast")
	FromContext(ctx).Info().Msg("checked")

	assert.Contains(t, buf.String(), `"component":"audit"`)
	assert.Contains(t, buf.String(), `"mode":"high-contrast"`)

	// A bare context yields a disabled logger rather than nil.
	assert.NotNil(t, FromContext(context.Background()))
}
