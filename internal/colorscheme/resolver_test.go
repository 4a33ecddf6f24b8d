package colorscheme

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDetector implements Detector for testing.
type mockDetector struct {
	name        string
	priority    int
	available   bool
	prefersDark bool
	detectOk    bool
}

func (m *mockDetector) Name() string         { return m.name }
func (m *mockDetector) Priority() int        { return m.priority }
func (m *mockDetector) Available() bool      { return m.available }
func (m *mockDetector) Detect() (bool, bool) { return m.prefersDark, m.detectOk }

func TestResolver_FallbackIsLight(t *testing.T) {
	resolver := NewResolver(zerolog.Nop())

	pref := resolver.Resolve()

	assert.False(t, pref.PrefersDark)
	assert.Equal(t, SourceFallback, pref.Source)
}

func TestResolver_PriorityOrder(t *testing.T) {
	low := &mockDetector{name: "low", priority: 10, available: true, prefersDark: false, detectOk: true}
	high := &mockDetector{name: "high", priority: 90, available: true, prefersDark: true, detectOk: true}
	resolver := NewResolver(zerolog.Nop(), low, high)

	pref := resolver.Resolve()

	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "high", pref.Source)
}

func TestResolver_SkipsUnavailableAndFailedDetectors(t *testing.T) {
	tests := []struct {
		name       string
		detectors  []Detector
		wantDark   bool
		wantSource string
	}{
		{
			name: "unavailable skipped",
			detectors: []Detector{
				&mockDetector{name: "off", priority: 100, available: false, prefersDark: true, detectOk: true},
				&mockDetector{name: "on", priority: 1, available: true, prefersDark: false, detectOk: true},
			},
			wantDark:   false,
			wantSource: "on",
		},
		{
			name: "failed detection skipped",
			detectors: []Detector{
				&mockDetector{name: "broken", priority: 100, available: true, detectOk: false},
				&mockDetector{name: "ok", priority: 1, available: true, prefersDark: true, detectOk: true},
			},
			wantDark:   true,
			wantSource: "ok",
		},
		{
			name: "all fail",
			detectors: []Detector{
				&mockDetector{name: "broken", priority: 100, available: true, detectOk: false},
			},
			wantDark:   false,
			wantSource: SourceFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(zerolog.Nop(), tt.detectors...)
			pref := resolver.Resolve()
			assert.Equal(t, tt.wantDark, pref.PrefersDark)
			assert.Equal(t, tt.wantSource, pref.Source)
		})
	}
}

func TestResolver_RefreshNotifiesOnChange(t *testing.T) {
	detector := &mockDetector{name: "host", priority: 10, available: true, prefersDark: false, detectOk: true}
	resolver := NewResolver(zerolog.Nop(), detector)

	var mu sync.Mutex
	var got []Preference
	unregister := resolver.OnChange(func(p Preference) {
		mu.Lock()
		got = append(got, p)
		mu.Unlock()
	})

	resolver.Refresh() // light -> light: no change
	detector.prefersDark = true
	resolver.Refresh()
	resolver.Refresh() // still dark

	mu.Lock()
	require.Len(t, got, 1)
	assert.True(t, got[0].PrefersDark)
	assert.Equal(t, "host", got[0].Source)
	mu.Unlock()

	unregister()
	detector.prefersDark = false
	resolver.Refresh()

	mu.Lock()
	assert.Len(t, got, 1)
	mu.Unlock()
}

type countingDetector struct {
	mockDetector
	runs int
}

func (c *countingDetector) Detect() (bool, bool) {
	c.runs++
	return c.mockDetector.Detect()
}

func TestResolver_ResolveUsesCachedDetection(t *testing.T) {
	detector := &countingDetector{mockDetector: mockDetector{name: "host", priority: 10, available: true, detectOk: true}}
	resolver := NewResolver(zerolog.Nop(), detector)
	require.Equal(t, 1, detector.runs)

	detector.prefersDark = true
	for i := 0; i < 5; i++ {
		assert.False(t, resolver.Resolve().PrefersDark)
	}
	assert.Equal(t, 1, detector.runs)

	assert.True(t, resolver.Refresh().PrefersDark)
	assert.True(t, resolver.Resolve().PrefersDark)
	assert.Equal(t, 2, detector.runs)
}

func TestResolver_RegisterDetector(t *testing.T) {
	resolver := NewResolver(zerolog.Nop())
	resolver.RegisterDetector(nil)
	resolver.RegisterDetector(&mockDetector{name: "late", priority: 5, available: true, prefersDark: true, detectOk: true})

	assert.Equal(t, "late", resolver.Resolve().Source)
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		value    string
		wantDark bool
		wantOK   bool
	}{
		{"dark", true, true},
		{"'prefer-dark'\n", true, true},
		{"LIGHT", false, true},
		{"prefer-light", false, true},
		{"default", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		dark, ok := ParseScheme(tt.value)
		assert.Equal(t, tt.wantDark, dark, tt.value)
		assert.Equal(t, tt.wantOK, ok, tt.value)
	}
}

func TestEnvDetector(t *testing.T) {
	env := map[string]string{"MY_SCHEME": "prefer-dark"}
	detector := NewEnvDetector("MY_SCHEME")
	detector.lookup = func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}

	require.True(t, detector.Available())
	dark, ok := detector.Detect()
	assert.True(t, ok)
	assert.True(t, dark)

	env["MY_SCHEME"] = "  "
	assert.False(t, detector.Available())

	assert.Equal(t, DefaultEnvVar, NewEnvDetector("").Name())
}

func TestGTKThemeDetector(t *testing.T) {
	detector := NewGTKThemeDetector()
	value := "Adwaita:dark"
	detector.lookup = func(string) (string, bool) { return value, value != "" }

	dark, ok := detector.Detect()
	assert.True(t, ok)
	assert.True(t, dark)

	value = "Adwaita"
	dark, ok = detector.Detect()
	assert.True(t, ok)
	assert.False(t, dark)

	value = ""
	assert.False(t, detector.Available())
}

func TestGsettingsDetector(t *testing.T) {
	detector := NewGsettingsDetector()
	detector.lookPath = func(string) (string, error) { return "/usr/bin/gsettings", nil }

	output := "'prefer-dark'\n"
	var runErr error
	detector.run = func(name string, args ...string) ([]byte, error) {
		assert.Equal(t, "gsettings", name)
		assert.Equal(t, []string{"get", "org.gnome.desktop.interface", "color-scheme"}, args)
		return []byte(output), runErr
	}

	require.True(t, detector.Available())
	dark, ok := detector.Detect()
	assert.True(t, ok)
	assert.True(t, dark)

	output = "'default'\n"
	_, ok = detector.Detect()
	assert.False(t, ok)

	runErr = errors.New("no dbus")
	_, ok = detector.Detect()
	assert.False(t, ok)

	detector.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	assert.False(t, detector.Available())
}

func TestStaticDetector(t *testing.T) {
	assert.False(t, NewStaticDetector("").Available())
	assert.False(t, NewStaticDetector("system").Available())

	detector := NewStaticDetector("dark")
	require.True(t, detector.Available())
	dark, ok := detector.Detect()
	assert.True(t, ok)
	assert.True(t, dark)
}
