// Package audit checks a token set against its accessibility rules.
package audit

import (
	"fmt"
	"strings"

	"github.com/careportal/themekit/internal/contrast"
	"github.com/careportal/themekit/internal/models"
	"github.com/careportal/themekit/internal/tokens"
)

// Check names a kind of audit rule.
type Check string

const (
	// CheckContrast requires a foreground/background pair to reach AA.
	CheckContrast Check = "contrast"
	// CheckBorder requires high-contrast borders to be pure black or white.
	CheckBorder Check = "border"
)

// Finding is the outcome of one rule against one token or pair.
type Finding struct {
	Check      Check            `json:"check" yaml:"check"`
	Subject    string           `json:"subject" yaml:"subject"`
	Foreground string           `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Background string           `json:"background,omitempty" yaml:"background,omitempty"`
	Contrast   *contrast.Result `json:"contrast,omitempty" yaml:"contrast,omitempty"`
	Passed     bool             `json:"passed" yaml:"passed"`
	Detail     string           `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Report collects every finding for one mode.
type Report struct {
	Mode     models.Mode `json:"mode" yaml:"mode"`
	Findings []Finding   `json:"findings" yaml:"findings"`
}

// Passed reports whether every finding passed.
func (r Report) Passed() bool {
	for _, f := range r.Findings {
		if !f.Passed {
			return false
		}
	}
	return true
}

// Failures returns the findings that did not pass.
func (r Report) Failures() []Finding {
	var failed []Finding
	for _, f := range r.Findings {
		if !f.Passed {
			failed = append(failed, f)
		}
	}
	return failed
}

type pair struct {
	subject    string
	foreground string
	background string
}

func contrastPairs(c tokens.Colors) []pair {
	roles := []struct {
		name string
		role tokens.RoleColors
	}{
		{"colors.primary", c.Primary},
		{"colors.secondary", c.Secondary},
		{"colors.feedback.success", c.Feedback.Success},
		{"colors.feedback.warning", c.Feedback.Warning},
		{"colors.feedback.danger", c.Feedback.Danger},
	}

	pairs := make([]pair, 0, len(roles)+5)
	for _, r := range roles {
		pairs = append(pairs, pair{subject: r.name, foreground: r.role.Foreground, background: r.role.Background})
	}
	return append(pairs,
		pair{"colors.text.primary on colors.surface.background", c.Text.Primary, c.Surface.Background},
		pair{"colors.text.primary on colors.surface.alt", c.Text.Primary, c.Surface.Alt},
		pair{"colors.text.muted on colors.surface.background", c.Text.Muted, c.Surface.Background},
		pair{"colors.text.muted on colors.surface.alt", c.Text.Muted, c.Surface.Alt},
		pair{"colors.text.inverse on colors.text.primary", c.Text.Inverse, c.Text.Primary},
	)
}

// Run audits set as the token set for mode. The border rule only applies to
// high-contrast. An error means a color token is not a #RRGGBB value.
func Run(mode models.Mode, set tokens.TokenSet) (Report, error) {
	report := Report{Mode: mode}

	for _, p := range contrastPairs(set.Colors) {
		result, err := contrast.Evaluate(p.foreground, p.background)
		if err != nil {
			return Report{}, fmt.Errorf("audit %s: %s: %w", mode, p.subject, err)
		}
		finding := Finding{
			Check:      CheckContrast,
			Subject:    p.subject,
			Foreground: p.foreground,
			Background: p.background,
			Contrast:   &result,
			Passed:     result.MeetsAA,
		}
		if !finding.Passed {
			finding.Detail = fmt.Sprintf("ratio %.2f is below %.1f", result.Ratio, contrast.NormalTextAA)
		}
		report.Findings = append(report.Findings, finding)
	}

	if mode == models.ModeHighContrast {
		for _, entry := range set.ColorEntries() {
			if !strings.HasSuffix(entry.Path, ".border") {
				continue
			}
			finding := Finding{Check: CheckBorder, Subject: entry.Path, Foreground: entry.Value}
			switch strings.ToUpper(entry.Value) {
			case "#000000", "#FFFFFF":
				finding.Passed = true
			default:
				finding.Detail = "border must be #000000 or #FFFFFF"
			}
			report.Findings = append(report.Findings, finding)
		}
	}

	return report, nil
}

// RunMode audits the registry entry for mode.
func RunMode(mode models.Mode) (Report, error) {
	return Run(mode, tokens.Resolve(mode))
}

// RunAll audits every registered mode.
func RunAll() ([]Report, error) {
	modes := tokens.Modes()
	reports := make([]Report, 0, len(modes))
	for _, mode := range modes {
		report, err := RunMode(mode)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
