// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/careportal/themekit/internal/models"
	"github.com/careportal/themekit/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional short marker shown before the title.
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actions the user can take.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is a CLI command or key (e.g., "themekit mode follow").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Next:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// AuditPassed is shown when every check for mode passed.
func AuditPassed(mode models.Mode) EmptyState {
	return EmptyState{
		Icon:     "OK",
		Title:    fmt.Sprintf("All %s checks pass", mode),
		Subtitle: "Every role and text pair reaches WCAG AA.",
		Suggestions: []Suggestion{
			{Command: "themekit audit --json", Description: "full report for every mode"},
		},
	}
}

// HostUnknown is shown when no detector reported a host color scheme.
func HostUnknown() EmptyState {
	return EmptyState{
		Icon:     "?",
		Title:    "Host color scheme unknown, using light",
		Subtitle: "System-follow treats an unknown host as light.",
		Suggestions: []Suggestion{
			{Command: "export THEMEKIT_COLOR_SCHEME=dark", Description: "tell themekit the host scheme"},
			{Command: "host.color_scheme: dark", Description: "or set it in config.yaml"},
		},
	}
}

// TerminalTooSmall is shown when the viewport cannot fit the screen.
func TerminalTooSmall(width, height, minWidth, minHeight int) EmptyState {
	return EmptyState{
		Icon:     "!",
		Title:    fmt.Sprintf("Terminal too small (%dx%d).", width, height),
		Subtitle: fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight),
		Suggestions: []Suggestion{
			{Command: "q", Description: "quit"},
		},
	}
}
