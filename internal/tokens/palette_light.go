package tokens

// lightTokens is the baseline palette.
var lightTokens = TokenSet{
	Colors: Colors{
		Primary:   RoleColors{Background: "#1D4ED8", Foreground: "#FFFFFF", Border: "#1E40AF"},
		Secondary: RoleColors{Background: "#0F766E", Foreground: "#FFFFFF", Border: "#115E59"},
		Feedback: FeedbackColors{
			Success: RoleColors{Background: "#15803D", Foreground: "#FFFFFF", Border: "#166534"},
			Warning: RoleColors{Background: "#B45309", Foreground: "#FFFFFF", Border: "#92400E"},
			Danger:  RoleColors{Background: "#B91C1C", Foreground: "#FFFFFF", Border: "#991B1B"},
		},
		Surface: SurfaceColors{Background: "#FFFFFF", Alt: "#F8FAFC", Border: "#CBD5E1"},
		Text:    TextColors{Primary: "#0F172A", Muted: "#475569", Inverse: "#FFFFFF"},
		Outline: OutlineColors{Focus: "#2563EB"},
		Overlay: OverlayColors{Backdrop: "#0F172A"},
		State:   StateColors{Hover: "#F1F5F9", Active: "#E2E8F0", Selection: "#DBEAFE", Skeleton: "#E2E8F0"},
	},
	Typography: Typography{
		FontFamily:    interFamily(),
		FontSize:      fontSizes(),
		LineHeight:    lineHeights(),
		LetterSpacing: letterSpacing(),
	},
	Spacing:      spacingScale(),
	BorderRadius: radii(),
	Shadows:      shadows("#000000", 0.05, 0.1, 0.15),
	BorderWidth:  BorderWidth{Hairline: 0.5, Thin: 1, Thick: 2},
	Opacity:      Opacity{Disabled: 0.4, Hover: 0.08, Pressed: 0.12, Backdrop: 0.5},
	FocusRing:    FocusRing{Width: 2, Offset: 2},
}
