// Package styles turns theme tokens into lipgloss styles for terminal output.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/careportal/themekit/internal/models"
	"github.com/careportal/themekit/internal/tokens"
)

// Styles contains lipgloss styles derived from a token set.
type Styles struct {
	Mode    models.Mode
	Tokens  tokens.TokenSet
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Inverse lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Border  lipgloss.Style
	Focus   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Pass    lipgloss.Style
	Fail    lipgloss.Style
}

// ForMode builds styles from the registry entry for mode.
func ForMode(mode models.Mode) Styles {
	return BuildStyles(mode, tokens.Resolve(mode))
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(mode models.Mode, set tokens.TokenSet) Styles {
	c := set.Colors

	return Styles{
		Mode:    mode,
		Tokens:  set,
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text.Primary)).Bold(true),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text.Primary)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text.Muted)),
		Inverse: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text.Inverse)).Background(lipgloss.Color(c.Text.Primary)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Primary.Border)).Bold(true),
		Panel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text.Primary)).
			Background(lipgloss.Color(c.Surface.Alt)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(c.Surface.Border)).
			Padding(0, Cells(set.Spacing, 2)),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Surface.Border)),
		Focus:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Outline.Focus)).Bold(true),
		Success: Role(c.Feedback.Success),
		Warning: Role(c.Feedback.Warning),
		Error:   Role(c.Feedback.Danger),
		Pass:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Feedback.Success.Border)).Bold(true),
		Fail:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Feedback.Danger.Border)).Bold(true),
	}
}

// pixelsPerCell approximates one terminal column in spacing units.
const pixelsPerCell = 8

// Cells converts a spacing step to whole terminal columns, or 0 for a step off the scale.
func Cells(spacing tokens.Spacing, step int) int {
	px, ok := spacing.Step(step)
	if !ok {
		return 0
	}
	return int(px / pixelsPerCell)
}

// Role renders text as a filled badge using a role's background and foreground.
func Role(role tokens.RoleColors) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(role.Foreground)).
		Background(lipgloss.Color(role.Background)).
		Padding(0, 1)
}

// Swatch renders a small block filled with hex.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ")
}

// Sample renders text in fg on bg.
func Sample(fg, bg, text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Render(text)
}
