package edge

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// Parlay configuration bounds.
const (
	MinParlayLegs = 2
	MaxParlayLegs = 6

	// PoolHeadroom is how many candidates beyond the leg count are kept in
	// the parlay pool. Enough for combinatorial variety without exploding
	// choose(N, k).
	PoolHeadroom = 4

	// perLegPrice is the flat assumed American price per leg when estimating
	// the payout multiplier.
	perLegPrice = 110.0
)

// ParlayPool selects the parlay candidate picks: Tier A or B, an actual side
// attached, sorted by cover probability descending, capped at legCount plus
// headroom.
func ParlayPool(picks []models.Pick, legCount int) []models.Pick {
	pool := make([]models.Pick, 0, len(picks))
	for _, p := range picks {
		if (p.Tier == models.TierA || p.Tier == models.TierB) && p.PickTeam != "" {
			pool = append(pool, p)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].CoverProb > pool[j].CoverProb
	})
	if max := legCount + PoolHeadroom; len(pool) > max {
		pool = pool[:max]
	}
	return pool
}

// EnumerateParlays builds every legCount-combination of the candidate pool and
// scores each by the product of its legs' cover probabilities, legs modeled as
// independent events. Results are ordered by joint probability descending.
// Returns models.ErrInsufficientPicks when the pool is smaller than legCount.
func EnumerateParlays(picks []models.Pick, legCount int) ([]models.ParlayCombination, error) {
	pool := ParlayPool(picks, legCount)
	if len(pool) < legCount {
		return nil, models.ErrInsufficientPicks
	}

	var parlays []models.ParlayCombination
	forEachCombination(len(pool), legCount, func(idx []int) {
		legs := make([]models.Pick, legCount)
		joint := 1.0
		for i, j := range idx {
			legs[i] = pool[j]
			joint *= pool[j].CoverProb
		}
		parlays = append(parlays, models.ParlayCombination{
			JointProb: math.Round(joint*10000) / 10000,
			Legs:      legs,
		})
	})

	sort.SliceStable(parlays, func(i, j int) bool {
		return parlays[i].JointProb > parlays[j].JointProb
	})
	return parlays, nil
}

// PayoutMultiplier estimates the flat parlay payout at -110 per leg:
// ((100/110) + 1) ^ legs, rounded to two decimals.
func PayoutMultiplier(legCount int) float64 {
	payout := math.Pow((100.0/perLegPrice)+1.0, float64(legCount))
	return math.Round(payout*100) / 100
}

// ParlayReturns computes the total return on a stake at the flat -110 per-leg
// price. Money math uses decimals to avoid drift on larger stakes.
func ParlayReturns(stake decimal.Decimal, legCount int) decimal.Decimal {
	perLeg := decimal.NewFromInt(100).Div(decimal.NewFromFloat(perLegPrice)).Add(decimal.NewFromInt(1))
	multiplier := perLeg.Pow(decimal.NewFromInt(int64(legCount)))
	return stake.Mul(multiplier).Round(2)
}

// forEachCombination visits every k-combination of {0..n-1} in lexicographic
// order.
func forEachCombination(n, k int, visit func(idx []int)) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		visit(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
