package odds

import (
	"sort"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// DedupeBestPrice collapses outcomes that share a name down to a single entry
// per outcome, keeping the one with the numerically smallest American odds.
// Smallest-odds means the shortest price (-150 beats +120 beats +150), the
// market's strongest belief in the outcome, not the best payout for a bettor.
// First-seen wins ties so repeated runs stay deterministic.
func DedupeBestPrice(outcomes []models.FuturesOutcome) []models.FuturesOutcome {
	best := make(map[string]models.FuturesOutcome, len(outcomes))
	order := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		seen, ok := best[o.Name]
		if !ok {
			best[o.Name] = o
			order = append(order, o.Name)
			continue
		}
		if o.AmericanOdds < seen.AmericanOdds {
			best[o.Name] = o
		}
	}

	deduped := make([]models.FuturesOutcome, 0, len(best))
	for _, name := range order {
		deduped = append(deduped, best[name])
	}
	return deduped
}

// RankByImplied returns the outcomes sorted by implied probability descending,
// the display order for the futures board. Ties keep first-seen order.
func RankByImplied(outcomes []models.FuturesOutcome) []models.FuturesOutcome {
	ranked := append([]models.FuturesOutcome(nil), outcomes...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ImpliedProb > ranked[j].ImpliedProb
	})
	return ranked
}
