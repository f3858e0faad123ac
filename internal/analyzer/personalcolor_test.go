package analyzer

import "testing"

func TestClassifyPersonalColor(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  int
		expected PersonalColor
	}{
		{
			name: "warm bright light tone is spring warm bright",
			// warmth ~0.27, brightness ~0.72, saturation ~0.32
			r: 220, g: 180, b: 150,
			expected: SpringWarmBright,
		},
		{
			name: "warm light low saturation is spring warm muted",
			r:    200, g: 190, b: 170,
			expected: SpringWarmMuted,
		},
		{
			name: "warm deep saturated is autumn warm bright",
			r:    150, g: 100, b: 60,
			expected: AutumnWarmBright,
		},
		{
			name: "warm deep low saturation is autumn warm muted",
			r:    120, g: 110, b: 95,
			expected: AutumnWarmMuted,
		},
		{
			name: "cool light saturated is summer cool bright",
			r:    170, g: 200, b: 240,
			expected: SummerCoolBright,
		},
		{
			name: "cool light low saturation is summer cool muted",
			r:    200, g: 205, b: 215,
			expected: SummerCoolMuted,
		},
		{
			name: "cool deep saturated is winter cool bright",
			r:    90, g: 110, b: 140,
			expected: WinterCoolBright,
		},
		{
			name: "cool deep low saturation is winter cool muted",
			r:    100, g: 110, b: 120,
			expected: WinterCoolMuted,
		},
		{
			name: "pure black has zero saturation",
			r:    0, g: 0, b: 0,
			expected: WinterCoolMuted,
		},
		{
			// brightness is exactly 0.6 (459/765); the strict comparison
			// keeps it on the deep branch.
			name: "brightness boundary takes the deep branch",
			r:    153, g: 153, b: 153,
			expected: WinterCoolMuted,
		},
	}

	thresholds := DefaultColorThresholds()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPersonalColor(NewSkinTone(tt.r, tt.g, tt.b), thresholds)
			if got != tt.expected {
				t.Errorf("ClassifyPersonalColor(%d, %d, %d) = %v, want %v",
					tt.r, tt.g, tt.b, got, tt.expected)
			}
		})
	}
}

// TestClassifyPersonalColor_Pure checks that repeated calls with the same
// input always return the same category.
func TestClassifyPersonalColor_Pure(t *testing.T) {
	thresholds := DefaultColorThresholds()
	tone := NewSkinTone(187, 143, 122)

	first := ClassifyPersonalColor(tone, thresholds)
	for i := 0; i < 100; i++ {
		if got := ClassifyPersonalColor(tone, thresholds); got != first {
			t.Fatalf("classification changed between calls: %v then %v", first, got)
		}
	}
}

// TestClassifyPersonalColor_Totality checks that every RGB combination in a
// coarse sweep maps to one of the eight seasons.
func TestClassifyPersonalColor_Totality(t *testing.T) {
	valid := make(map[PersonalColor]bool, len(PersonalColors))
	for _, c := range PersonalColors {
		valid[c] = true
	}

	thresholds := DefaultColorThresholds()
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				got := ClassifyPersonalColor(NewSkinTone(r, g, b), thresholds)
				if !valid[got] {
					t.Fatalf("RGB(%d, %d, %d) mapped to invalid category %q", r, g, b, got)
				}
			}
		}
	}
}
