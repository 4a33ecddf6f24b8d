package cli

import (
	"github.com/careportal/themekit/internal/contrast"
	"github.com/careportal/themekit/internal/tui/styles"
)

func formatPass(s styles.Styles, ok bool) string {
	if ok {
		return s.Pass.Render("PASS")
	}
	return s.Fail.Render("FAIL")
}

func formatLevel(s styles.Styles, level contrast.Level) string {
	switch level {
	case contrast.LevelAAA, contrast.LevelAA:
		return s.Pass.Render(string(level))
	default:
		return s.Fail.Render(string(level))
	}
}

func formatFollowing(following bool) string {
	if following {
		return "following system"
	}
	return "manual"
}
