package colorscheme

import (
	"os/exec"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
)

// GsettingsDetector queries GNOME's org.gnome.desktop.interface color-scheme.
type GsettingsDetector struct {
	lookPath func(string) (string, error)
	run      func(name string, args ...string) ([]byte, error)
}

// NewGsettingsDetector creates a gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{
		lookPath: exec.LookPath,
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

func (*GsettingsDetector) Name() string { return detectorNameGsettings }

func (*GsettingsDetector) Priority() int { return priorityGsettings }

func (d *GsettingsDetector) Available() bool {
	_, err := d.lookPath("gsettings")
	return err == nil
}

// Detect maps "prefer-dark"/"prefer-light"; "default" is not an answer.
func (d *GsettingsDetector) Detect() (bool, bool) {
	output, err := d.run("gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err != nil {
		return false, false
	}
	return ParseScheme(strings.TrimSpace(string(output)))
}
