package tokens

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careportal/themekit/internal/models"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestRegistryCoversEveryMode(t *testing.T) {
	require.Len(t, registry, models.ModeCount)
	for _, mode := range Modes() {
		assert.NotPanics(t, func() { Resolve(mode) }, "mode %s", mode)
	}
}

func TestTokenSetsHaveIdenticalShape(t *testing.T) {
	want := Resolve(models.ModeLight).Paths()
	require.NotEmpty(t, want)

	for _, mode := range Modes() {
		got := Resolve(mode).Paths()
		assert.Equal(t, want, got, "paths differ for %s", mode)
	}

	// JSON keys must match too, since consumers address tokens by path.
	var reference map[string]any
	data, err := json.Marshal(Resolve(models.ModeLight))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &reference))
	for _, mode := range Modes() {
		var other map[string]any
		data, err := json.Marshal(Resolve(mode))
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &other))
		assert.Equal(t, keyPaths(reference, ""), keyPaths(other, ""), "json keys differ for %s", mode)
	}
}

func TestNoTokenIsMissing(t *testing.T) {
	for _, mode := range Modes() {
		for _, entry := range Resolve(mode).Flatten() {
			assert.NotEmpty(t, entry.Value, "%s: %s is empty", mode, entry.Path)
			if entry.Color {
				assert.Regexp(t, hexColor, entry.Value, "%s: %s is not #RRGGBB", mode, entry.Path)
			}
		}
	}
}

func TestExpectedPathsPresent(t *testing.T) {
	paths := []string{
		"colors.primary.background",
		"colors.secondary.border",
		"colors.feedback.success.foreground",
		"colors.feedback.warning.background",
		"colors.feedback.danger.foreground",
		"colors.surface.alt",
		"colors.text.inverse",
		"colors.outline.focus",
		"colors.overlay.backdrop",
		"colors.state.skeleton",
		"typography.fontFamily.semibold",
		"typography.fontSize.5xl",
		"typography.lineHeight.xs",
		"typography.letterSpacing.wide",
		"spacing.20",
		"borderRadius.full",
		"shadows.lg.elevation",
		"borderWidth.thick",
		"opacity.backdrop",
		"focusRing.offset",
	}
	set := Resolve(models.ModeDark)
	for _, path := range paths {
		_, ok := set.Lookup(path)
		assert.True(t, ok, "missing %s", path)
	}

	value, ok := set.Lookup("colors.feedback.danger.foreground")
	require.True(t, ok)
	assert.Equal(t, set.Colors.Feedback.Danger.Foreground, value)

	_, ok = set.Lookup("colors.brand")
	assert.False(t, ok)
}

func TestHighContrastBordersArePureBlackOrWhite(t *testing.T) {
	set := Resolve(models.ModeHighContrast)
	borders := 0
	for _, entry := range set.ColorEntries() {
		if !strings.HasSuffix(entry.Path, ".border") {
			continue
		}
		borders++
		assert.Contains(t, []string{"#000000", "#FFFFFF"}, entry.Value, entry.Path)
	}
	assert.Equal(t, 6, borders)
}

func TestHighContrastRaisesBackdropOpacity(t *testing.T) {
	hc := Resolve(models.ModeHighContrast).Opacity.Backdrop
	assert.Greater(t, hc, Resolve(models.ModeLight).Opacity.Backdrop)
	assert.Greater(t, hc, Resolve(models.ModeDark).Opacity.Backdrop)
}

func TestSpacingUsesFourUnitBase(t *testing.T) {
	spacing := Resolve(models.ModeLight).Spacing
	for _, step := range SpacingSteps {
		value, ok := spacing.Step(step)
		require.True(t, ok, "step %d", step)
		assert.Equal(t, float64(step*4), value, "step %d", step)
	}
	_, ok := spacing.Step(7)
	assert.False(t, ok)
}

func TestResolveReturnsIndependentCopies(t *testing.T) {
	set := Resolve(models.ModeLight)
	set.Colors.Primary.Background = "#123456"
	assert.Equal(t, "#1D4ED8", Resolve(models.ModeLight).Colors.Primary.Background)
}

func keyPaths(node map[string]any, prefix string) []string {
	var paths []string
	for key, value := range node {
		path := joinPath(prefix, key)
		if child, ok := value.(map[string]any); ok {
			paths = append(paths, keyPaths(child, path)...)
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
