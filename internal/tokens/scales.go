package tokens

// spacingUnit is the base grid unit in density-independent pixels.
const spacingUnit = 4

func spacingScale() Spacing {
	return Spacing{
		S0:  0 * spacingUnit,
		S1:  1 * spacingUnit,
		S2:  2 * spacingUnit,
		S3:  3 * spacingUnit,
		S4:  4 * spacingUnit,
		S5:  5 * spacingUnit,
		S6:  6 * spacingUnit,
		S8:  8 * spacingUnit,
		S10: 10 * spacingUnit,
		S12: 12 * spacingUnit,
		S16: 16 * spacingUnit,
		S20: 20 * spacingUnit,
	}
}

func fontSizes() TypeScale {
	return TypeScale{XS: 12, SM: 14, Base: 16, LG: 18, XL: 20, XL2: 24, XL3: 30, XL4: 36, XL5: 48}
}

func lineHeights() TypeScale {
	return TypeScale{XS: 16, SM: 20, Base: 24, LG: 28, XL: 28, XL2: 32, XL3: 36, XL4: 40, XL5: 48}
}

func letterSpacing() LetterSpacing {
	return LetterSpacing{Tight: -0.5, Normal: 0, Wide: 0.5}
}

func interFamily() FontFamily {
	return FontFamily{
		Regular:  "Inter-Regular",
		Medium:   "Inter-Medium",
		Semibold: "Inter-SemiBold",
		Bold:     "Inter-Bold",
	}
}

func radii() BorderRadius {
	return BorderRadius{None: 0, SM: 4, MD: 8, LG: 12, XL: 16, XL2: 24, Full: 9999}
}

func shadows(color string, sm, md, lg float64) Shadows {
	return Shadows{
		SM: Shadow{Color: color, OffsetX: 0, OffsetY: 1, Blur: 2, Opacity: sm, Elevation: 1},
		MD: Shadow{Color: color, OffsetX: 0, OffsetY: 4, Blur: 6, Opacity: md, Elevation: 4},
		LG: Shadow{Color: color, OffsetX: 0, OffsetY: 10, Blur: 15, Opacity: lg, Elevation: 8},
	}
}
