package tokens

// darkTokens inverts the role colors: light fills carry dark text.
var darkTokens = TokenSet{
	Colors: Colors{
		Primary:   RoleColors{Background: "#93C5FD", Foreground: "#0F172A", Border: "#60A5FA"},
		Secondary: RoleColors{Background: "#5EEAD4", Foreground: "#0F172A", Border: "#2DD4BF"},
		Feedback: FeedbackColors{
			Success: RoleColors{Background: "#86EFAC", Foreground: "#0F172A", Border: "#4ADE80"},
			Warning: RoleColors{Background: "#FCD34D", Foreground: "#0F172A", Border: "#FBBF24"},
			Danger:  RoleColors{Background: "#FCA5A5", Foreground: "#0F172A", Border: "#F87171"},
		},
		Surface: SurfaceColors{Background: "#0F172A", Alt: "#1E293B", Border: "#334155"},
		Text:    TextColors{Primary: "#F8FAFC", Muted: "#94A3B8", Inverse: "#0F172A"},
		Outline: OutlineColors{Focus: "#60A5FA"},
		Overlay: OverlayColors{Backdrop: "#020617"},
		State:   StateColors{Hover: "#1E293B", Active: "#334155", Selection: "#1E3A8A", Skeleton: "#334155"},
	},
	Typography: Typography{
		FontFamily:    interFamily(),
		FontSize:      fontSizes(),
		LineHeight:    lineHeights(),
		LetterSpacing: letterSpacing(),
	},
	Spacing:      spacingScale(),
	BorderRadius: radii(),
	Shadows:      shadows("#000000", 0.3, 0.4, 0.5),
	BorderWidth:  BorderWidth{Hairline: 0.5, Thin: 1, Thick: 2},
	Opacity:      Opacity{Disabled: 0.4, Hover: 0.12, Pressed: 0.16, Backdrop: 0.6},
	FocusRing:    FocusRing{Width: 2, Offset: 2},
}
