package colorscheme

import (
	"os"
	"strings"
)

const (
	// DefaultEnvVar is read by EnvDetector when no variable is configured.
	DefaultEnvVar = "THEMEKIT_COLOR_SCHEME"

	detectorNameGTKTheme = "GTK_THEME"
	priorityEnv          = 50
	priorityGTKTheme     = 20
)

// EnvDetector reads an explicit scheme ("dark", "light", "prefer-dark", ...) from an
// environment variable.
type EnvDetector struct {
	variable string
	lookup   func(string) (string, bool)
}

// NewEnvDetector creates a detector for the given variable.
func NewEnvDetector(variable string) *EnvDetector {
	if strings.TrimSpace(variable) == "" {
		variable = DefaultEnvVar
	}
	return &EnvDetector{variable: variable, lookup: os.LookupEnv}
}

func (d *EnvDetector) Name() string { return d.variable }

func (*EnvDetector) Priority() int { return priorityEnv }

func (d *EnvDetector) Available() bool {
	value, ok := d.lookup(d.variable)
	return ok && strings.TrimSpace(value) != ""
}

func (d *EnvDetector) Detect() (bool, bool) {
	value, _ := d.lookup(d.variable)
	return ParseScheme(value)
}

// GTKThemeDetector infers the scheme from GTK_THEME, e.g. "Adwaita:dark".
type GTKThemeDetector struct {
	lookup func(string) (string, bool)
}

// NewGTKThemeDetector creates a GTK_THEME based detector.
func NewGTKThemeDetector() *GTKThemeDetector {
	return &GTKThemeDetector{lookup: os.LookupEnv}
}

func (*GTKThemeDetector) Name() string { return detectorNameGTKTheme }

func (*GTKThemeDetector) Priority() int { return priorityGTKTheme }

func (d *GTKThemeDetector) Available() bool {
	value, ok := d.lookup("GTK_THEME")
	return ok && value != ""
}

// Detect treats any GTK_THEME without "dark" in it as a light theme.
func (d *GTKThemeDetector) Detect() (bool, bool) {
	value, _ := d.lookup("GTK_THEME")
	if value == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(value), "dark"), true
}
