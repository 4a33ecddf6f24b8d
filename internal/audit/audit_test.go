package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careportal/themekit/internal/contrast"
	"github.com/careportal/themekit/internal/models"
	"github.com/careportal/themekit/internal/tokens"
)

func TestBuiltInModesPass(t *testing.T) {
	reports, err := RunAll()
	require.NoError(t, err)
	require.Len(t, reports, models.ModeCount)

	for _, report := range reports {
		assert.True(t, report.Passed(), "%s failures: %+v", report.Mode, report.Failures())
		assert.Empty(t, report.Failures())
	}
}

func TestTriTuplesMeetAA(t *testing.T) {
	for _, mode := range models.AllModes() {
		report, err := RunMode(mode)
		require.NoError(t, err)

		var tuples int
		for _, f := range report.Findings {
			if f.Check != CheckContrast {
				continue
			}
			require.NotNil(t, f.Contrast)
			assert.GreaterOrEqual(t, f.Contrast.Ratio, contrast.NormalTextAA, "%s %s", mode, f.Subject)
			if f.Subject == "colors.primary" || f.Subject == "colors.feedback.danger" {
				tuples++
			}
		}
		assert.Equal(t, 2, tuples, mode.String())
	}
}

func TestBorderRuleOnlyForHighContrast(t *testing.T) {
	countBorder := func(r Report) int {
		n := 0
		for _, f := range r.Findings {
			if f.Check == CheckBorder {
				n++
			}
		}
		return n
	}

	light, err := RunMode(models.ModeLight)
	require.NoError(t, err)
	assert.Zero(t, countBorder(light))

	hc, err := RunMode(models.ModeHighContrast)
	require.NoError(t, err)
	assert.Equal(t, 6, countBorder(hc))
}

func TestRunReportsFailures(t *testing.T) {
	set := tokens.Resolve(models.ModeHighContrast)
	set.Colors.Primary.Foreground = "#111111"
	set.Colors.Surface.Border = "#808080"

	report, err := Run(models.ModeHighContrast, set)
	require.NoError(t, err)
	assert.False(t, report.Passed())

	failures := report.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, "colors.primary", failures[0].Subject)
	assert.Equal(t, contrast.LevelFail, failures[0].Contrast.Level)
	assert.Contains(t, failures[0].Detail, "below 4.5")
	assert.Equal(t, CheckBorder, failures[1].Check)
	assert.Equal(t, "colors.surface.border", failures[1].Subject)
}

func TestRunRejectsMalformedColor(t *testing.T) {
	set := tokens.Resolve(models.ModeLight)
	set.Colors.Text.Muted = "slate"

	_, err := Run(models.ModeLight, set)
	require.Error(t, err)
	assert.ErrorIs(t, err, contrast.ErrInvalidColorFormat)
	assert.Contains(t, err.Error(), "colors.text.muted")
}
