// Package models defines the core data types shared across themekit.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a mode name or value is not one of the known modes.
var ErrInvalidMode = errors.New("invalid theme mode")

// Mode identifies one of the visual themes. The set is closed: only the
// constants below are valid.
type Mode uint8

const (
	ModeLight Mode = iota
	ModeDark
	ModeHighContrast

	// ModeCount is the number of valid modes.
	ModeCount = int(ModeHighContrast) + 1
)

var modeNames = [ModeCount]string{
	ModeLight:        "light",
	ModeDark:         "dark",
	ModeHighContrast: "high-contrast",
}

// AllModes returns every valid mode in declaration order.
func AllModes() []Mode {
	return []Mode{ModeLight, ModeDark, ModeHighContrast}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return int(m) < ModeCount
}

// String returns the canonical mode name.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode converts a mode name into a Mode.
// Matching is case-insensitive; "high_contrast" and "highcontrast" are accepted aliases.
func ParseMode(value string) (Mode, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	case "high-contrast", "high_contrast", "highcontrast":
		return ModeHighContrast, nil
	default:
		return ModeLight, fmt.Errorf("%w: %q", ErrInvalidMode, value)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
