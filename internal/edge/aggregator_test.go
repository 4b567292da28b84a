package edge

import (
	"testing"

	"github.com/yourusername/gridiron-edge/internal/models"
)

func pickWith(team string, e, cp float64, tier models.Tier) models.Pick {
	return models.Pick{
		HomeTeam: team, AwayTeam: "Opp", PickTeam: team,
		Side: models.SideHome, EdgePoints: e, CoverProb: cp, Tier: tier,
	}
}

func TestSortByAbsEdge(t *testing.T) {
	picks := []models.Pick{
		pickWith("A", 1.5, 0.54, models.TierC),
		pickWith("B", -6.0, 0.67, models.TierA),
		pickWith("C", 3.0, 0.59, models.TierB),
	}
	sorted := SortByAbsEdge(picks)
	if sorted[0].HomeTeam != "B" || sorted[1].HomeTeam != "C" || sorted[2].HomeTeam != "A" {
		t.Fatalf("unexpected order: %s %s %s", sorted[0].HomeTeam, sorted[1].HomeTeam, sorted[2].HomeTeam)
	}
	// Input untouched.
	if picks[0].HomeTeam != "A" {
		t.Fatal("input slice was reordered")
	}
}

func TestStrongPicks(t *testing.T) {
	picks := []models.Pick{
		pickWith("BigEdge", 4.0, 0.62, models.TierA),    // keeps
		pickWith("SmallEdge", 1.0, 0.62, models.TierA),  // |edge| < 2
		pickWith("LowProb", 3.0, 0.54, models.TierC),    // prob < 0.55
		pickWith("PassTier", 5.0, 0.50, models.TierPass),
		pickWith("NegEdge", -2.5, 0.58, models.TierB),   // abs edge qualifies
	}
	strong := StrongPicks(picks, DefaultEdgeThreshold, DefaultCoverProbThreshold)
	if len(strong) != 2 {
		t.Fatalf("expected 2 strong picks, got %d", len(strong))
	}
	if strong[0].HomeTeam != "BigEdge" || strong[1].HomeTeam != "NegEdge" {
		t.Fatalf("unexpected strong picks: %s, %s", strong[0].HomeTeam, strong[1].HomeTeam)
	}
}

func TestTopNFiltersPassAndRanksByCover(t *testing.T) {
	picks := []models.Pick{
		pickWith("C", 2.0, 0.56, models.TierB),
		pickWith("A", 3.0, 0.66, models.TierA),
		pickWith("Skip", 0.5, 0.50, models.TierPass),
		pickWith("B", 2.5, 0.61, models.TierA),
	}
	top := TopN(picks, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(top))
	}
	if top[0].HomeTeam != "A" || top[1].HomeTeam != "B" {
		t.Fatalf("unexpected ranking: %s, %s", top[0].HomeTeam, top[1].HomeTeam)
	}
}

func TestTopNStableTieBreak(t *testing.T) {
	picks := []models.Pick{
		pickWith("First", 2.0, 0.60, models.TierA),
		pickWith("Second", 2.0, 0.60, models.TierA),
	}
	top := TopN(picks, 2)
	if top[0].HomeTeam != "First" || top[1].HomeTeam != "Second" {
		t.Fatal("expected ties to keep input order")
	}
}

func TestTopNShortPool(t *testing.T) {
	picks := []models.Pick{pickWith("Only", 2.0, 0.60, models.TierA)}
	if got := len(TopN(picks, DefaultTopN)); got != 1 {
		t.Fatalf("expected 1 pick, got %d", got)
	}
}
