package edge

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yourusername/gridiron-edge/internal/models"
)

func parlayPick(team string, cp float64, tier models.Tier) models.Pick {
	return models.Pick{
		HomeTeam: team, AwayTeam: "Opp", PickTeam: team,
		Side: models.SideHome, CoverProb: cp, Tier: tier, EdgePoints: 3.0,
	}
}

func TestEnumerateParlaysReferenceScenario(t *testing.T) {
	picks := []models.Pick{
		parlayPick("A", 0.70, models.TierA),
		parlayPick("B", 0.65, models.TierA),
		parlayPick("C", 0.60, models.TierA),
	}

	parlays, err := EnumerateParlays(picks, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parlays) != 3 {
		t.Fatalf("expected 3 two-leg combinations, got %d", len(parlays))
	}

	wantJoint := []float64{0.455, 0.42, 0.39}
	for i, want := range wantJoint {
		if math.Abs(parlays[i].JointProb-want) > 1e-9 {
			t.Errorf("parlay %d joint prob = %v, want %v", i, parlays[i].JointProb, want)
		}
	}
	if parlays[0].Legs[0].PickTeam != "A" || parlays[0].Legs[1].PickTeam != "B" {
		t.Errorf("best parlay legs = %s, %s; want A, B",
			parlays[0].Legs[0].PickTeam, parlays[0].Legs[1].PickTeam)
	}
}

func TestEnumerateParlaysInsufficientPool(t *testing.T) {
	picks := []models.Pick{parlayPick("A", 0.70, models.TierA)}
	_, err := EnumerateParlays(picks, 3)
	if !errors.Is(err, models.ErrInsufficientPicks) {
		t.Fatalf("expected ErrInsufficientPicks, got %v", err)
	}
}

func TestParlayPoolFiltersAndCaps(t *testing.T) {
	var picks []models.Pick
	// Ten A-tier candidates, plus rows that must never enter the pool.
	for i := 0; i < 10; i++ {
		picks = append(picks, parlayPick(string(rune('A'+i)), 0.70-float64(i)*0.01, models.TierA))
	}
	picks = append(picks,
		parlayPick("CTier", 0.54, models.TierC),
		models.Pick{HomeTeam: "NoEdge", Side: models.SideNone, CoverProb: 0.5, Tier: models.TierPass},
	)

	pool := ParlayPool(picks, 2)
	if len(pool) != 2+PoolHeadroom {
		t.Fatalf("pool size = %d, want %d", len(pool), 2+PoolHeadroom)
	}
	for _, p := range pool {
		if p.Tier != models.TierA && p.Tier != models.TierB {
			t.Errorf("pool contains tier %s", p.Tier)
		}
		if p.PickTeam == "" {
			t.Error("pool contains a no-edge row")
		}
	}
	if pool[0].CoverProb < pool[len(pool)-1].CoverProb {
		t.Error("pool not sorted by cover probability descending")
	}
}

func TestEnumerateParlaysPoolsInternally(t *testing.T) {
	picks := []models.Pick{
		parlayPick("A", 0.70, models.TierA),
		parlayPick("B", 0.65, models.TierB),
		parlayPick("C", 0.60, models.TierA),
		parlayPick("CTier", 0.54, models.TierC),
		models.Pick{HomeTeam: "NoEdge", Side: models.SideNone, CoverProb: 0.5, Tier: models.TierPass},
	}

	fromRaw, err := EnumerateParlays(picks, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromPool, err := EnumerateParlays(ParlayPool(picks, 2), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fromRaw) != 3 || len(fromPool) != 3 {
		t.Fatalf("combination counts = %d raw, %d pooled; want 3 each", len(fromRaw), len(fromPool))
	}
	for i := range fromRaw {
		if fromRaw[i].JointProb != fromPool[i].JointProb {
			t.Errorf("parlay %d joint prob differs: raw %v, pooled %v",
				i, fromRaw[i].JointProb, fromPool[i].JointProb)
		}
		if fromRaw[i].Legs[0].PickTeam != fromPool[i].Legs[0].PickTeam {
			t.Errorf("parlay %d legs differ between raw and pooled input", i)
		}
	}
}

func TestEnumerateParlaysCombinationCount(t *testing.T) {
	var picks []models.Pick
	for i := 0; i < 8; i++ {
		picks = append(picks, parlayPick(string(rune('A'+i)), 0.70-float64(i)*0.01, models.TierA))
	}
	// Pool caps at 3+4=7 candidates, so choose(7,3)=35.
	parlays, err := EnumerateParlays(picks, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parlays) != 35 {
		t.Fatalf("expected 35 combinations, got %d", len(parlays))
	}
}

func TestPayoutMultiplier(t *testing.T) {
	if got := PayoutMultiplier(2); math.Abs(got-3.64) > 0.005 {
		t.Errorf("2-leg payout = %v, want ~3.64", got)
	}
	if got := PayoutMultiplier(3); math.Abs(got-6.96) > 0.01 {
		t.Errorf("3-leg payout = %v, want ~6.96", got)
	}
}

func TestParlayReturns(t *testing.T) {
	returns := ParlayReturns(decimal.NewFromInt(100), 2)
	want := decimal.NewFromFloat(364.46)
	// (100/110 + 1)^2 * 100 = 364.4628...
	if !returns.Equal(want) {
		t.Errorf("returns = %s, want %s", returns, want)
	}
}
