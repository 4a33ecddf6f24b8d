package tokens

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/careportal/themekit/internal/models"
)

// registry is indexed by mode; every declared mode has an entry.
var registry = [models.ModeCount]TokenSet{
	models.ModeLight:        lightTokens,
	models.ModeDark:         darkTokens,
	models.ModeHighContrast: highContrastTokens,
}

// Resolve returns the token set for a mode.
// Mode values outside the declared constants are a programming error and panic.
func Resolve(mode models.Mode) TokenSet {
	return registry[mode]
}

// Modes lists the modes the registry serves.
func Modes() []models.Mode {
	return models.AllModes()
}

// Entry is a single flattened token.
type Entry struct {
	Path  string `json:"path" yaml:"path"`
	Value string `json:"value" yaml:"value"`
	Color bool   `json:"-" yaml:"-"`
}

// Flatten lists every leaf token in declaration order, keyed by its dotted path
// (for example "colors.feedback.danger.foreground").
func (t TokenSet) Flatten() []Entry {
	entries := make([]Entry, 0, 128)
	walk(reflect.ValueOf(t), "", &entries)
	return entries
}

// Paths returns just the dotted paths from Flatten.
func (t TokenSet) Paths() []string {
	entries := t.Flatten()
	paths := make([]string, len(entries))
	for i, entry := range entries {
		paths[i] = entry.Path
	}
	return paths
}

// Lookup resolves a dotted path to its formatted value.
func (t TokenSet) Lookup(path string) (string, bool) {
	path = strings.TrimSpace(path)
	for _, entry := range t.Flatten() {
		if entry.Path == path {
			return entry.Value, true
		}
	}
	return "", false
}

// ColorEntries returns only the color tokens.
func (t TokenSet) ColorEntries() []Entry {
	all := t.Flatten()
	colors := make([]Entry, 0, len(all))
	for _, entry := range all {
		if entry.Color {
			colors = append(colors, entry)
		}
	}
	return colors
}

func walk(value reflect.Value, prefix string, out *[]Entry) {
	switch value.Kind() {
	case reflect.Struct:
		typ := value.Type()
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			name := strings.Split(field.Tag.Get("json"), ",")[0]
			if name == "" {
				name = field.Name
			}
			walk(value.Field(i), joinPath(prefix, name), out)
		}
	case reflect.String:
		*out = append(*out, Entry{
			Path:  prefix,
			Value: value.String(),
			Color: strings.HasPrefix(prefix, "colors.") || strings.HasPrefix(value.String(), "#"),
		})
	case reflect.Float64:
		*out = append(*out, Entry{Path: prefix, Value: strconv.FormatFloat(value.Float(), 'f', -1, 64)})
	case reflect.Int:
		*out = append(*out, Entry{Path: prefix, Value: strconv.FormatInt(value.Int(), 10)})
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
