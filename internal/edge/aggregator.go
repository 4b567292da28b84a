package edge

import (
	"math"
	"sort"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// Default aggregation thresholds, matching the reference model constants.
const (
	DefaultEdgeThreshold      = 2.0
	DefaultCoverProbThreshold = 0.55
	DefaultTopN               = 12
)

// SortByAbsEdge returns a copy of picks ordered by absolute edge descending,
// the display order for the all-games view. Pass-tier rows are retained. The
// sort is stable so ties keep input order.
func SortByAbsEdge(picks []models.Pick) []models.Pick {
	sorted := append([]models.Pick(nil), picks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return math.Abs(sorted[i].EdgePoints) > math.Abs(sorted[j].EdgePoints)
	})
	return sorted
}

// StrongPicks filters to picks with a large enough edge, a high enough cover
// probability, and a non-Pass tier.
func StrongPicks(picks []models.Pick, edgeThreshold, coverProbThreshold float64) []models.Pick {
	strong := make([]models.Pick, 0, len(picks))
	for _, p := range picks {
		if math.Abs(p.EdgePoints) >= edgeThreshold &&
			p.CoverProb >= coverProbThreshold &&
			p.Tier != models.TierPass {
			strong = append(strong, p)
		}
	}
	return strong
}

// TopN returns the n non-Pass picks with the highest cover probability.
// The sort is stable, so ties break on original input order; no secondary
// tie-break key is defined.
func TopN(picks []models.Pick, n int) []models.Pick {
	ranked := make([]models.Pick, 0, len(picks))
	for _, p := range picks {
		if p.Tier != models.TierPass {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CoverProb > ranked[j].CoverProb
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
