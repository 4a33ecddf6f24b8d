package tokens

// highContrastTokens maximizes edge visibility. Borders are pure black or
// white and the backdrop is more opaque than in light or dark.
var highContrastTokens = TokenSet{
	Colors: Colors{
		Primary:   RoleColors{Background: "#000000", Foreground: "#FFFFFF", Border: "#FFFFFF"},
		Secondary: RoleColors{Background: "#FFFFFF", Foreground: "#000000", Border: "#000000"},
		Feedback: FeedbackColors{
			Success: RoleColors{Background: "#000000", Foreground: "#00FF00", Border: "#FFFFFF"},
			Warning: RoleColors{Background: "#000000", Foreground: "#FFFF00", Border: "#FFFFFF"},
			Danger:  RoleColors{Background: "#000000", Foreground: "#FF6B6B", Border: "#FFFFFF"},
		},
		Surface: SurfaceColors{Background: "#000000", Alt: "#1A1A1A", Border: "#FFFFFF"},
		Text:    TextColors{Primary: "#FFFFFF", Muted: "#D4D4D4", Inverse: "#000000"},
		Outline: OutlineColors{Focus: "#FFFF00"},
		Overlay: OverlayColors{Backdrop: "#000000"},
		State:   StateColors{Hover: "#1A1A1A", Active: "#333333", Selection: "#0000CC", Skeleton: "#333333"},
	},
	Typography: Typography{
		FontFamily: FontFamily{
			Regular:  "AtkinsonHyperlegible-Regular",
			Medium:   "AtkinsonHyperlegible-Regular",
			Semibold: "AtkinsonHyperlegible-Bold",
			Bold:     "AtkinsonHyperlegible-Bold",
		},
		FontSize:      fontSizes(),
		LineHeight:    lineHeights(),
		LetterSpacing: LetterSpacing{Tight: 0, Normal: 0.25, Wide: 0.75},
	},
	Spacing:      spacingScale(),
	BorderRadius: radii(),
	Shadows:      shadows("#000000", 0.6, 0.7, 0.8),
	BorderWidth:  BorderWidth{Hairline: 1, Thin: 2, Thick: 3},
	Opacity:      Opacity{Disabled: 0.6, Hover: 0.2, Pressed: 0.3, Backdrop: 0.85},
	FocusRing:    FocusRing{Width: 3, Offset: 2},
}
