// Package logging configures zerolog for themekit.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Out        io.Writer
}

// DefaultConfig returns the CLI defaults: warnings and above, console format on stderr.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.WarnLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
		Out:        os.Stderr,
	}
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "", "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// New creates a logger with the given configuration.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format != "json" {
		timeFormat := cfg.TimeFormat
		if timeFormat == "" {
			timeFormat = time.RFC3339
		}
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

var (
	baseMu sync.RWMutex
	base   = zerolog.Nop()
)

// Init installs the process logger used by Component.
func Init(cfg Config) zerolog.Logger {
	logger := New(cfg)
	SetBase(logger)
	return logger
}

// SetBase replaces the process logger.
func SetBase(logger zerolog.Logger) {
	baseMu.Lock()
	defer baseMu.Unlock()
	base = logger
}

// Component returns the process logger tagged with a component name.
// Before Init it returns a no-op logger.
func Component(name string) zerolog.Logger {
	baseMu.RLock()
	defer baseMu.RUnlock()
	return base.With().Str("component", name).Logger()
}
