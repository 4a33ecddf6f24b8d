package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/careportal/themekit/internal/models"
	"github.com/careportal/themekit/internal/tui/styles"
)

// RenderModeBadge renders the effective mode and where it comes from.
func RenderModeBadge(styleSet styles.Styles, mode models.Mode, following bool) string {
	icon, style := modeDescriptor(styleSet, mode)
	source := "manual"
	if following {
		source = "system"
	}
	return style.Render(fmt.Sprintf("%s %s", icon, mode)) + " " + styleSet.Muted.Render("("+source+")")
}

func modeDescriptor(styleSet styles.Styles, mode models.Mode) (string, lipgloss.Style) {
	switch mode {
	case models.ModeLight:
		return "L", styles.Role(styleSet.Tokens.Colors.Primary)
	case models.ModeDark:
		return "D", styles.Role(styleSet.Tokens.Colors.Secondary)
	case models.ModeHighContrast:
		return "HC", styleSet.Inverse.Bold(true).Padding(0, 1)
	default:
		return "-", styleSet.Muted
	}
}
