package scoring

import (
	"testing"

	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/analyzer"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/catalog"
)

func detectedAnalysis(shape analyzer.FaceShape, color analyzer.PersonalColor) *analyzer.FaceAnalysisResult {
	return &analyzer.FaceAnalysisResult{
		Detected:      true,
		FaceShape:     shape,
		PersonalColor: color,
	}
}

func TestScore(t *testing.T) {
	cutStyle := &catalog.Style{
		ID:       "bob-cut",
		Category: catalog.CategoryCut,
		FaceShapes: map[analyzer.FaceShape]catalog.Tier{
			analyzer.ShapeRound: catalog.TierGood,
			analyzer.ShapeOval:  catalog.TierExcellent,
		},
		// Irrelevant axis present on purpose: must be ignored for cut styles.
		PersonalColors: map[analyzer.PersonalColor]catalog.Tier{
			analyzer.SpringWarmBright: catalog.TierExcellent,
		},
	}
	colorStyle := &catalog.Style{
		ID:       "ash-grey",
		Category: catalog.CategoryColor,
		PersonalColors: map[analyzer.PersonalColor]catalog.Tier{
			analyzer.WinterCoolBright: catalog.TierExcellent,
		},
	}
	bareStyle := &catalog.Style{
		ID:       "plain-trim",
		Category: catalog.CategoryCut,
	}

	tests := []struct {
		name            string
		result          *analyzer.FaceAnalysisResult
		style           *catalog.Style
		wantScore       int
		wantRecommended bool
		wantTopTier     bool
	}{
		{
			name:            "good tier match scores two",
			result:          detectedAnalysis(analyzer.ShapeRound, analyzer.SummerCoolMuted),
			style:           cutStyle,
			wantScore:       2,
			wantRecommended: true,
			wantTopTier:     false,
		},
		{
			name:            "excellent tier match scores three",
			result:          detectedAnalysis(analyzer.ShapeOval, analyzer.SummerCoolMuted),
			style:           cutStyle,
			wantScore:       3,
			wantRecommended: true,
			wantTopTier:     true,
		},
		{
			name:            "unlisted shape scores zero",
			result:          detectedAnalysis(analyzer.ShapeSquare, analyzer.SummerCoolMuted),
			style:           cutStyle,
			wantScore:       0,
			wantRecommended: false,
			wantTopTier:     false,
		},
		{
			name: "cut style ignores personal color axis",
			// Personal color matches the style's excellent color entry, but
			// the shape axis has no entry: the score must be zero.
			result:          detectedAnalysis(analyzer.ShapeHeart, analyzer.SpringWarmBright),
			style:           cutStyle,
			wantScore:       0,
			wantRecommended: false,
			wantTopTier:     false,
		},
		{
			name:            "color style scores against personal color",
			result:          detectedAnalysis(analyzer.ShapeRound, analyzer.WinterCoolBright),
			style:           colorStyle,
			wantScore:       3,
			wantRecommended: true,
			wantTopTier:     true,
		},
		{
			name:            "missing axis scores zero",
			result:          detectedAnalysis(analyzer.ShapeRound, analyzer.WinterCoolBright),
			style:           bareStyle,
			wantScore:       0,
			wantRecommended: false,
			wantTopTier:     false,
		},
		{
			name:            "undetected analysis scores zero",
			result:          &analyzer.FaceAnalysisResult{Detected: false},
			style:           cutStyle,
			wantScore:       0,
			wantRecommended: false,
			wantTopTier:     false,
		},
		{
			name:            "nil analysis scores zero",
			result:          nil,
			style:           cutStyle,
			wantScore:       0,
			wantRecommended: false,
			wantTopTier:     false,
		},
	}

	cfg := DefaultConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.result, tt.style, cfg)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.MeetsGoodThreshold != tt.wantRecommended {
				t.Errorf("MeetsGoodThreshold = %v, want %v", got.MeetsGoodThreshold, tt.wantRecommended)
			}
			if got.IsTopTier != tt.wantTopTier {
				t.Errorf("IsTopTier = %v, want %v", got.IsTopTier, tt.wantTopTier)
			}
		})
	}
}

// TestScore_Bounded checks 0 <= score <= MaxScore for every combination of
// classification and suitability entry.
func TestScore_Bounded(t *testing.T) {
	cfg := DefaultConfig()
	tiers := []catalog.Tier{catalog.TierGood, catalog.TierExcellent}

	for _, shape := range analyzer.FaceShapes {
		for _, tier := range append(tiers, catalog.Tier("")) {
			style := &catalog.Style{ID: "s", Category: catalog.CategoryCut}
			if tier != "" {
				style.FaceShapes = map[analyzer.FaceShape]catalog.Tier{shape: tier}
			}
			for _, userShape := range analyzer.FaceShapes {
				got := Score(detectedAnalysis(userShape, analyzer.SpringWarmMuted), style, cfg)
				if got.Score < 0 || got.Score > cfg.MaxScore() {
					t.Fatalf("score %d out of bounds for shape=%v tier=%v user=%v",
						got.Score, shape, tier, userShape)
				}
			}
		}
	}
}

// TestScore_Pure checks that repeated calls with identical inputs return
// identical outputs.
func TestScore_Pure(t *testing.T) {
	cfg := DefaultConfig()
	style := &catalog.Style{
		ID:       "bob-cut",
		Category: catalog.CategoryCut,
		FaceShapes: map[analyzer.FaceShape]catalog.Tier{
			analyzer.ShapeRound: catalog.TierGood,
		},
	}
	result := detectedAnalysis(analyzer.ShapeRound, analyzer.SummerCoolMuted)

	first := Score(result, style, cfg)
	for i := 0; i < 100; i++ {
		if got := Score(result, style, cfg); got != first {
			t.Fatalf("score changed between calls: %+v then %+v", first, got)
		}
	}
}

func TestScore_CustomTierPoints(t *testing.T) {
	cfg := Config{ExcellentPoints: 5, GoodPoints: 1, GoodThreshold: 1}
	style := &catalog.Style{
		ID:       "s",
		Category: catalog.CategoryCut,
		FaceShapes: map[analyzer.FaceShape]catalog.Tier{
			analyzer.ShapeLong: catalog.TierExcellent,
		},
	}

	got := Score(detectedAnalysis(analyzer.ShapeLong, analyzer.SummerCoolMuted), style, cfg)
	if got.Score != 5 {
		t.Errorf("expected score 5 under custom config, got %d", got.Score)
	}
	if !got.IsTopTier {
		t.Error("expected top tier under custom config")
	}
}
