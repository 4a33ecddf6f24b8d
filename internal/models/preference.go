package models

import (
	"strings"
	"time"
)

// DefaultProfile is used when no profile is configured.
const DefaultProfile = "default"

// Preference is the persisted theme choice of a profile.
type Preference struct {
	// Profile identifies whose preference this is.
	Profile string `json:"profile"`

	// Mode is the manual mode. While FollowSystem is true it is kept so that
	// turning system-follow off can restore it.
	Mode Mode `json:"mode"`

	// FollowSystem reports whether the host color scheme drives the mode.
	FollowSystem bool `json:"follow_system"`

	// UpdatedAt is when the preference was last written.
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks if the preference is valid.
func (p *Preference) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(p.Profile) == "" {
		validation.AddMessage("profile", "profile is required")
	}
	if !p.Mode.Valid() {
		validation.AddMessage("mode", "mode must be light, dark or high-contrast")
	}
	return validation.Err()
}
