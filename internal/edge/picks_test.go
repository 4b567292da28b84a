package edge

import (
	"math"
	"reflect"
	"testing"

	"github.com/yourusername/gridiron-edge/internal/models"
)

func spread(v float64) *float64 { return &v }

func testRatings() models.TeamRatings {
	return models.TeamRatings{
		"TeamX": 15.0,
		"TeamY": 10.0,
		"TeamZ": -3.0,
	}
}

func TestBuildPicksReferenceScenario(t *testing.T) {
	games := []models.Game{{
		HomeTeam: "TeamX",
		AwayTeam: "TeamY",
		Lines:    []models.MarketLine{{Provider: "consensus", Spread: spread(-4.0)}},
	}}

	picks := BuildPicks(testRatings(), games, DefaultParams())
	if len(picks) != 1 {
		t.Fatalf("expected 1 pick, got %d", len(picks))
	}

	p := picks[0]
	if p.ModelSpreadHome != 7.5 {
		t.Errorf("model spread = %v, want 7.5", p.ModelSpreadHome)
	}
	if p.EdgePoints != 3.5 {
		t.Errorf("edge = %v, want 3.5", p.EdgePoints)
	}
	if p.Side != models.SideHome || p.PickTeam != "TeamX" {
		t.Errorf("pick side = %s (%s), want HOME (TeamX)", p.Side, p.PickTeam)
	}
	if math.Abs(p.CoverProb-0.606) > 0.001 {
		t.Errorf("cover prob = %v, want ~0.606", p.CoverProb)
	}
	if p.Tier != models.TierA {
		t.Errorf("tier = %s, want A", p.Tier)
	}
}

func TestBuildPicksAwaySide(t *testing.T) {
	// TeamZ hosting TeamX: model spread -3 - 15 + 2.5 = -15.5, market -10
	// gives edge -5.5, so the away side carries the mirrored probability.
	games := []models.Game{{
		HomeTeam: "TeamZ",
		AwayTeam: "TeamX",
		Lines:    []models.MarketLine{{Provider: "consensus", Spread: spread(-10.0)}},
	}}

	picks := BuildPicks(testRatings(), games, DefaultParams())
	if len(picks) != 1 {
		t.Fatalf("expected 1 pick, got %d", len(picks))
	}
	p := picks[0]
	if p.Side != models.SideAway || p.PickTeam != "TeamX" {
		t.Fatalf("pick side = %s (%s), want AWAY (TeamX)", p.Side, p.PickTeam)
	}
	homeCover := CoverProbability(-15.5, -10.0, 13.0)
	if math.Abs(p.CoverProb-(1.0-homeCover)) > 0.001 {
		t.Errorf("cover prob = %v, want %v", p.CoverProb, 1.0-homeCover)
	}
}

func TestBuildPicksZeroEdgeSentinel(t *testing.T) {
	// Market exactly offsets the model spread: edge == 0.
	games := []models.Game{{
		HomeTeam: "TeamX",
		AwayTeam: "TeamY",
		Lines:    []models.MarketLine{{Provider: "consensus", Spread: spread(-7.5)}},
	}}

	picks := BuildPicks(testRatings(), games, DefaultParams())
	if len(picks) != 1 {
		t.Fatalf("expected 1 pick, got %d", len(picks))
	}
	p := picks[0]
	if p.Side != models.SideNone || p.PickTeam != "" {
		t.Errorf("pick side = %s (%q), want NO EDGE with no team", p.Side, p.PickTeam)
	}
	if p.CoverProb != 0.5 {
		t.Errorf("cover prob = %v, want 0.5", p.CoverProb)
	}
	if p.Tier != models.TierPass {
		t.Errorf("tier = %s, want Pass", p.Tier)
	}
}

func TestBuildPicksSilentExclusions(t *testing.T) {
	games := []models.Game{
		// No lines at all.
		{HomeTeam: "TeamX", AwayTeam: "TeamY"},
		// Line without a numeric spread.
		{HomeTeam: "TeamX", AwayTeam: "TeamY",
			Lines: []models.MarketLine{{Provider: "consensus"}}},
		// Away team unrated.
		{HomeTeam: "TeamX", AwayTeam: "Unknown Tech",
			Lines: []models.MarketLine{{Provider: "consensus", Spread: spread(-3.0)}}},
		// Usable.
		{HomeTeam: "TeamX", AwayTeam: "TeamZ",
			Lines: []models.MarketLine{{Provider: "consensus", Spread: spread(-14.0)}}},
	}

	picks := BuildPicks(testRatings(), games, DefaultParams())
	if len(picks) != 1 {
		t.Fatalf("expected only the usable game, got %d picks", len(picks))
	}
	if picks[0].AwayTeam != "TeamZ" {
		t.Errorf("kept game = %s, want TeamZ matchup", picks[0].AwayTeam)
	}
}

func TestBuildPicksProviderFallback(t *testing.T) {
	games := []models.Game{{
		HomeTeam: "TeamX",
		AwayTeam: "TeamY",
		Lines: []models.MarketLine{
			{Provider: "Bovada", Spread: spread(-6.0)},
			{Provider: "Consensus", Spread: spread(-4.0)},
		},
	}}

	// Case-insensitive preferred match.
	picks := BuildPicks(testRatings(), games, DefaultParams())
	if picks[0].Provider != "Consensus" || picks[0].MarketSpreadHome != -4.0 {
		t.Errorf("preferred line not selected: %s %v", picks[0].Provider, picks[0].MarketSpreadHome)
	}

	// Preferred absent: first line wins.
	params := DefaultParams()
	params.PreferredProvider = "DraftKings"
	picks = BuildPicks(testRatings(), games, params)
	if picks[0].Provider != "Bovada" {
		t.Errorf("fallback line = %s, want Bovada", picks[0].Provider)
	}
}

// The model is a pure function: identical inputs yield identical outputs.
func TestBuildPicksDeterministic(t *testing.T) {
	games := []models.Game{
		{HomeTeam: "TeamX", AwayTeam: "TeamY",
			Lines: []models.MarketLine{{Provider: "consensus", Spread: spread(-4.0)}}},
		{HomeTeam: "TeamZ", AwayTeam: "TeamY",
			Lines: []models.MarketLine{{Provider: "consensus", Spread: spread(10.5)}}},
	}

	first := BuildPicks(testRatings(), games, DefaultParams())
	second := BuildPicks(testRatings(), games, DefaultParams())
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical pick sequences from identical inputs")
	}
}
