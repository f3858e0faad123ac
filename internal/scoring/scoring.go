// Package scoring computes bounded suitability scores matching a user's
// facial classification against a style's suitability metadata.
package scoring

import (
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/analyzer"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/catalog"
)

// Config holds the tier-to-point mapping and the threshold behind the
// "recommended" filter. The reference values are defaults, not canon;
// hosts may tune them.
type Config struct {
	// ExcellentPoints is the score of an Excellent-tier match.
	ExcellentPoints int
	// GoodPoints is the score of a Good-tier match.
	GoodPoints int
	// GoodThreshold is the minimum score for the recommended filter.
	GoodThreshold int
}

// DefaultConfig returns the reference scoring configuration:
// Excellent=3, Good=2, absent=0, recommended at score >= 2.
func DefaultConfig() Config {
	return Config{
		ExcellentPoints: 3,
		GoodPoints:      2,
		GoodThreshold:   2,
	}
}

// MaxScore returns the highest possible score under this configuration.
func (c Config) MaxScore() int {
	return max(c.ExcellentPoints, c.GoodPoints)
}

// Recommendation is the scoring outcome for one (analysis, style) pair.
// It is recomputed on demand and never cached across analyses.
type Recommendation struct {
	Score int `json:"score"`
	// MeetsGoodThreshold backs the gallery's "recommended" filter.
	MeetsGoodThreshold bool `json:"meetsGoodThreshold"`
	// IsTopTier backs the two-versus-three-star badge.
	IsTopTier bool `json:"isTopTier"`
}

// Score matches an analysis against one style's suitability metadata.
// Only the axis matching the style's category applies: cut styles score
// against the face shape, color styles against the personal color; the
// other axis is ignored entirely. A missing entry (or a missing axis, or an
// undetected analysis) scores zero, which is a valid outcome, not an error.
//
// Pure and total: same inputs always produce the same outputs, with no I/O
// and no allocation beyond the returned value.
func Score(result *analyzer.FaceAnalysisResult, style *catalog.Style, cfg Config) Recommendation {
	points := 0
	if result != nil && result.Detected {
		switch style.Category {
		case catalog.CategoryCut:
			if tier, ok := style.FaceShapes[result.FaceShape]; ok {
				points = cfg.tierPoints(tier)
			}
		case catalog.CategoryColor:
			if tier, ok := style.PersonalColors[result.PersonalColor]; ok {
				points = cfg.tierPoints(tier)
			}
		}
	}

	return Recommendation{
		Score:              points,
		MeetsGoodThreshold: points >= cfg.GoodThreshold,
		IsTopTier:          points == cfg.MaxScore() && points > 0,
	}
}

// tierPoints maps a suitability tier to its point value.
func (c Config) tierPoints(tier catalog.Tier) int {
	switch tier {
	case catalog.TierExcellent:
		return c.ExcellentPoints
	case catalog.TierGood:
		return c.GoodPoints
	default:
		return 0
	}
}
