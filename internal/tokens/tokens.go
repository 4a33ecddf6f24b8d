// Package tokens defines the semantic design tokens and the per-mode registry.
package tokens

// TokenSet is the fully resolved set of design values for one mode.
// It is built only from structs of strings and numbers, so copies never share
// state with the registry.
type TokenSet struct {
	Colors       Colors       `json:"colors" yaml:"colors"`
	Typography   Typography   `json:"typography" yaml:"typography"`
	Spacing      Spacing      `json:"spacing" yaml:"spacing"`
	BorderRadius BorderRadius `json:"borderRadius" yaml:"borderRadius"`
	Shadows      Shadows      `json:"shadows" yaml:"shadows"`
	BorderWidth  BorderWidth  `json:"borderWidth" yaml:"borderWidth"`
	Opacity      Opacity      `json:"opacity" yaml:"opacity"`
	FocusRing    FocusRing    `json:"focusRing" yaml:"focusRing"`
}

// RoleColors is the background/foreground/border triple used by interactive roles.
type RoleColors struct {
	Background string `json:"background" yaml:"background"`
	Foreground string `json:"foreground" yaml:"foreground"`
	Border     string `json:"border" yaml:"border"`
}

// FeedbackColors holds status roles.
type FeedbackColors struct {
	Success RoleColors `json:"success" yaml:"success"`
	Warning RoleColors `json:"warning" yaml:"warning"`
	Danger  RoleColors `json:"danger" yaml:"danger"`
}

// SurfaceColors are page and card backgrounds.
type SurfaceColors struct {
	Background string `json:"background" yaml:"background"`
	Alt        string `json:"alt" yaml:"alt"`
	Border     string `json:"border" yaml:"border"`
}

// TextColors are the text hierarchy.
type TextColors struct {
	Primary string `json:"primary" yaml:"primary"`
	Muted   string `json:"muted" yaml:"muted"`
	Inverse string `json:"inverse" yaml:"inverse"`
}

type OutlineColors struct {
	Focus string `json:"focus" yaml:"focus"`
}

type OverlayColors struct {
	Backdrop string `json:"backdrop" yaml:"backdrop"`
}

// StateColors tint interactive elements.
type StateColors struct {
	Hover     string `json:"hover" yaml:"hover"`
	Active    string `json:"active" yaml:"active"`
	Selection string `json:"selection" yaml:"selection"`
	Skeleton  string `json:"skeleton" yaml:"skeleton"`
}

// Colors groups every color role.
type Colors struct {
	Primary   RoleColors     `json:"primary" yaml:"primary"`
	Secondary RoleColors     `json:"secondary" yaml:"secondary"`
	Feedback  FeedbackColors `json:"feedback" yaml:"feedback"`
	Surface   SurfaceColors  `json:"surface" yaml:"surface"`
	Text      TextColors     `json:"text" yaml:"text"`
	Outline   OutlineColors  `json:"outline" yaml:"outline"`
	Overlay   OverlayColors  `json:"overlay" yaml:"overlay"`
	State     StateColors    `json:"state" yaml:"state"`
}

// FontFamily maps weights to font family names.
type FontFamily struct {
	Regular  string `json:"regular" yaml:"regular"`
	Medium   string `json:"medium" yaml:"medium"`
	Semibold string `json:"semibold" yaml:"semibold"`
	Bold     string `json:"bold" yaml:"bold"`
}

// TypeScale is a named size ladder shared by font size and line height.
type TypeScale struct {
	XS   float64 `json:"xs" yaml:"xs"`
	SM   float64 `json:"sm" yaml:"sm"`
	Base float64 `json:"base" yaml:"base"`
	LG   float64 `json:"lg" yaml:"lg"`
	XL   float64 `json:"xl" yaml:"xl"`
	XL2  float64 `json:"2xl" yaml:"2xl"`
	XL3  float64 `json:"3xl" yaml:"3xl"`
	XL4  float64 `json:"4xl" yaml:"4xl"`
	XL5  float64 `json:"5xl" yaml:"5xl"`
}

type LetterSpacing struct {
	Tight  float64 `json:"tight" yaml:"tight"`
	Normal float64 `json:"normal" yaml:"normal"`
	Wide   float64 `json:"wide" yaml:"wide"`
}

type Typography struct {
	FontFamily    FontFamily    `json:"fontFamily" yaml:"fontFamily"`
	FontSize      TypeScale     `json:"fontSize" yaml:"fontSize"`
	LineHeight    TypeScale     `json:"lineHeight" yaml:"lineHeight"`
	LetterSpacing LetterSpacing `json:"letterSpacing" yaml:"letterSpacing"`
}

// Spacing is indexed by step; each value is step times the base unit.
type Spacing struct {
	S0  float64 `json:"0" yaml:"0"`
	S1  float64 `json:"1" yaml:"1"`
	S2  float64 `json:"2" yaml:"2"`
	S3  float64 `json:"3" yaml:"3"`
	S4  float64 `json:"4" yaml:"4"`
	S5  float64 `json:"5" yaml:"5"`
	S6  float64 `json:"6" yaml:"6"`
	S8  float64 `json:"8" yaml:"8"`
	S10 float64 `json:"10" yaml:"10"`
	S12 float64 `json:"12" yaml:"12"`
	S16 float64 `json:"16" yaml:"16"`
	S20 float64 `json:"20" yaml:"20"`
}

// SpacingSteps lists the defined spacing steps in ascending order.
var SpacingSteps = []int{0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20}

// Step returns the spacing value for a step, or false if the step is not on the scale.
func (s Spacing) Step(step int) (float64, bool) {
	switch step {
	case 0:
		return s.S0, true
	case 1:
		return s.S1, true
	case 2:
		return s.S2, true
	case 3:
		return s.S3, true
	case 4:
		return s.S4, true
	case 5:
		return s.S5, true
	case 6:
		return s.S6, true
	case 8:
		return s.S8, true
	case 10:
		return s.S10, true
	case 12:
		return s.S12, true
	case 16:
		return s.S16, true
	case 20:
		return s.S20, true
	default:
		return 0, false
	}
}

type BorderRadius struct {
	None float64 `json:"none" yaml:"none"`
	SM   float64 `json:"sm" yaml:"sm"`
	MD   float64 `json:"md" yaml:"md"`
	LG   float64 `json:"lg" yaml:"lg"`
	XL   float64 `json:"xl" yaml:"xl"`
	XL2  float64 `json:"2xl" yaml:"2xl"`
	Full float64 `json:"full" yaml:"full"` // pill and circle shapes
}

// Shadow describes one elevation preset.
type Shadow struct {
	Color     string  `json:"color" yaml:"color"`
	OffsetX   float64 `json:"offsetX" yaml:"offsetX"`
	OffsetY   float64 `json:"offsetY" yaml:"offsetY"`
	Blur      float64 `json:"blur" yaml:"blur"`
	Opacity   float64 `json:"opacity" yaml:"opacity"`
	Elevation int     `json:"elevation" yaml:"elevation"`
}

type Shadows struct {
	SM Shadow `json:"sm" yaml:"sm"`
	MD Shadow `json:"md" yaml:"md"`
	LG Shadow `json:"lg" yaml:"lg"`
}

type BorderWidth struct {
	Hairline float64 `json:"hairline" yaml:"hairline"`
	Thin     float64 `json:"thin" yaml:"thin"`
	Thick    float64 `json:"thick" yaml:"thick"`
}

type Opacity struct {
	Disabled float64 `json:"disabled" yaml:"disabled"`
	Hover    float64 `json:"hover" yaml:"hover"`
	Pressed  float64 `json:"pressed" yaml:"pressed"`
	Backdrop float64 `json:"backdrop" yaml:"backdrop"`
}

type FocusRing struct {
	Width  float64 `json:"width" yaml:"width"`
	Offset float64 `json:"offset" yaml:"offset"`
}
