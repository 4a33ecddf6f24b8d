// Package colorscheme reports the host's light/dark color scheme preference.
package colorscheme

import "strings"

// Preference is the resolved host preference.
type Preference struct {
	// PrefersDark indicates whether the host asks for a dark scheme.
	PrefersDark bool

	// Source names the detector that answered, or "fallback".
	Source string
}

// Detector reads the host preference from one source.
// Higher priorities are consulted first.
type Detector interface {
	Name() string
	Priority() int
	Available() bool
	// Detect returns the preference and whether detection succeeded.
	Detect() (prefersDark bool, ok bool)
}

// ParseScheme interprets the common scheme spellings used by desktops and config files.
func ParseScheme(value string) (prefersDark bool, ok bool) {
	switch strings.ToLower(strings.Trim(strings.TrimSpace(value), `'"`)) {
	case "dark", "prefer-dark":
		return true, true
	case "light", "prefer-light":
		return false, true
	default:
		return false, false
	}
}
