package analyzer

// ColorThresholds holds the boundary constants of the personal-color
// decision tree.
type ColorThresholds struct {
	// Warmth is the (r-b)/255 value above which a tone is warm.
	Warmth float64
	// Brightness is the average-luminance ratio above which a tone takes the
	// light (spring/summer) branch instead of the deep (autumn/winter) branch.
	Brightness float64
	// WarmSaturation splits warm tones into bright versus muted variants.
	WarmSaturation float64
	// CoolSaturation splits cool tones into bright versus muted variants.
	CoolSaturation float64
}

// DefaultColorThresholds returns the reference thresholds.
func DefaultColorThresholds() ColorThresholds {
	return ColorThresholds{
		Warmth:         0.08,
		Brightness:     0.6,
		WarmSaturation: 0.3,
		CoolSaturation: 0.25,
	}
}

// ClassifyPersonalColor maps a skin tone to one of the eight seasonal
// categories. Pure function: identical RGB input always yields the same
// category.
func ClassifyPersonalColor(tone SkinTone, t ColorThresholds) PersonalColor {
	r := float64(tone.R)
	g := float64(tone.G)
	b := float64(tone.B)

	warmth := (r - b) / 255
	brightness := (r + g + b) / (3 * 255)

	maxC := max(r, g, b)
	minC := min(r, g, b)
	saturation := 0.0
	if maxC > 0 {
		saturation = (maxC - minC) / maxC
	}

	if warmth > t.Warmth {
		if brightness > t.Brightness {
			if saturation > t.WarmSaturation {
				return SpringWarmBright
			}
			return SpringWarmMuted
		}
		if saturation > t.WarmSaturation {
			return AutumnWarmBright
		}
		return AutumnWarmMuted
	}

	if brightness > t.Brightness {
		if saturation > t.CoolSaturation {
			return SummerCoolBright
		}
		return SummerCoolMuted
	}
	if saturation > t.CoolSaturation {
		return WinterCoolBright
	}
	return WinterCoolMuted
}
