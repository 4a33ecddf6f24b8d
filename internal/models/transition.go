package models

import (
	"strings"
	"time"
)

// TransitionKind names what moved the theme state.
type TransitionKind string

const (
	TransitionModeSet        TransitionKind = "mode_set"
	TransitionFollowEnabled  TransitionKind = "follow_enabled"
	TransitionFollowDisabled TransitionKind = "follow_disabled"
	TransitionSystemChanged  TransitionKind = "system_changed"
)

// Valid reports whether k is one of the declared kinds.
func (k TransitionKind) Valid() bool {
	switch k {
	case TransitionModeSet, TransitionFollowEnabled, TransitionFollowDisabled, TransitionSystemChanged:
		return true
	}
	return false
}

// Transition is one entry of a profile's mode history.
type Transition struct {
	ID              string         `json:"id"`
	At              time.Time      `json:"at"`
	Profile         string         `json:"profile"`
	Kind            TransitionKind `json:"kind"`
	From            Mode           `json:"from"`
	To              Mode           `json:"to"`
	FollowingSystem bool           `json:"following_system"`
}

// Validate checks the fields a stored transition needs.
func (t *Transition) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(t.Profile) == "" {
		validation.AddMessage("profile", "profile is required")
	}
	if !t.Kind.Valid() {
		validation.AddMessage("kind", "unknown transition kind "+string(t.Kind))
	}
	if !t.From.Valid() {
		validation.AddMessage("from", "invalid mode")
	}
	if !t.To.Valid() {
		validation.AddMessage("to", "invalid mode")
	}
	return validation.Err()
}
