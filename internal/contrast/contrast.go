// Package contrast computes WCAG 2.x contrast ratios between colors.
package contrast

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned when a color is not a #RRGGBB hex string.
var ErrInvalidColorFormat = errors.New("invalid color format")

// Level is the WCAG conformance level a ratio reaches.
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelFail Level = "Fail"
)

// Thresholds for normal and large text.
const (
	NormalTextAA  = 4.5
	NormalTextAAA = 7.0
	LargeTextAA   = 3.0
	LargeTextAAA  = 4.5
)

// Result is the outcome of comparing two colors.
type Result struct {
	// Ratio is rounded to two decimals. Classification uses the unrounded value.
	Ratio    float64 `json:"ratio" yaml:"ratio"`
	MeetsAA  bool    `json:"meets_aa" yaml:"meets_aa"`
	MeetsAAA bool    `json:"meets_aaa" yaml:"meets_aaa"`
	Level    Level   `json:"level" yaml:"level"`
}

type options struct {
	aa  float64
	aaa float64
}

// Option adjusts classification thresholds.
type Option func(*options)

// WithLargeText classifies against the large-text thresholds (AA 3.0, AAA 4.5).
func WithLargeText() Option {
	return func(o *options) {
		o.aa = LargeTextAA
		o.aaa = LargeTextAAA
	}
}

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Evaluate returns the contrast ratio between a and b and its WCAG level.
// The result does not depend on argument order.
func Evaluate(a, b string, opts ...Option) (Result, error) {
	cfg := options{aa: NormalTextAA, aaa: NormalTextAAA}
	for _, opt := range opts {
		opt(&cfg)
	}

	la, err := RelativeLuminance(a)
	if err != nil {
		return Result{}, err
	}
	lb, err := RelativeLuminance(b)
	if err != nil {
		return Result{}, err
	}

	ratio := Ratio(la, lb)
	result := Result{
		Ratio:    math.Round(ratio*100) / 100,
		MeetsAA:  ratio >= cfg.aa,
		MeetsAAA: ratio >= cfg.aaa,
	}
	switch {
	case result.MeetsAAA:
		result.Level = LevelAAA
	case result.MeetsAA:
		result.Level = LevelAA
	default:
		result.Level = LevelFail
	}
	return result, nil
}

// Ratio converts two relative luminances into a contrast ratio (always >= 1).
func Ratio(l1, l2 float64) float64 {
	lighter, darker := l1, l2
	if darker > lighter {
		lighter, darker = darker, lighter
	}
	return (lighter + 0.05) / (darker + 0.05)
}

// RelativeLuminance returns the WCAG relative luminance of a #RRGGBB color.
func RelativeLuminance(hex string) (float64, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B), nil
}

// ParseHex decodes a #RRGGBB string into sRGB channels in [0,1].
func ParseHex(hex string) (colorful.Color, error) {
	if !hexColorRegex.MatchString(hex) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, hex, err)
	}
	return c, nil
}

// linearize applies the sRGB transfer function to a channel in [0,1].
func linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}
