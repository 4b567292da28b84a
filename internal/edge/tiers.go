package edge

import "github.com/yourusername/gridiron-edge/internal/models"

// Thresholds holds the cover-probability cutoffs for each confidence tier.
// Boundaries are inclusive on the lower edge.
type Thresholds struct {
	TierA float64 `mapstructure:"tier_a" validate:"gt=0,lt=1"`
	TierB float64 `mapstructure:"tier_b" validate:"gt=0,lt=1"`
	TierC float64 `mapstructure:"tier_c" validate:"gt=0,lt=1"`
}

// DefaultThresholds returns the reference tier cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{TierA: 0.60, TierB: 0.55, TierC: 0.52}
}

// Classify buckets a cover probability into a tier. The function is total:
// every probability maps to exactly one tier.
func (t Thresholds) Classify(coverProb float64) models.Tier {
	switch {
	case coverProb >= t.TierA:
		return models.TierA
	case coverProb >= t.TierB:
		return models.TierB
	case coverProb >= t.TierC:
		return models.TierC
	default:
		return models.TierPass
	}
}
