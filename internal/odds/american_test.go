package odds

import (
	"testing"

	"github.com/yourusername/gridiron-edge/internal/models"
)

func TestAmericanToImplied(t *testing.T) {
	cases := []struct {
		odds int
		want float64
	}{
		{150, 40.0},
		{-150, 60.0},
		{100, 50.0},
		{-110, 52.4},
		{250, 28.6},
		{-500, 83.3},
	}
	for _, tc := range cases {
		if got := AmericanToImplied(tc.odds); got != tc.want {
			t.Errorf("AmericanToImplied(%d) = %v, want %v", tc.odds, got, tc.want)
		}
	}
}

func TestFormatAmerican(t *testing.T) {
	if got := FormatAmerican(150); got != "+150" {
		t.Errorf("FormatAmerican(150) = %q, want +150", got)
	}
	if got := FormatAmerican(-150); got != "-150" {
		t.Errorf("FormatAmerican(-150) = %q, want -150", got)
	}
}

func TestDedupeBestPrice(t *testing.T) {
	outcomes := []models.FuturesOutcome{
		{Name: "Georgia", AmericanOdds: 550},
		{Name: "Ohio State", AmericanOdds: 400},
		{Name: "Georgia", AmericanOdds: 450},
		{Name: "Ohio State", AmericanOdds: -120},
		{Name: "Oregon", AmericanOdds: 1200},
	}

	deduped := DedupeBestPrice(outcomes)
	if len(deduped) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(deduped))
	}
	// First-seen order of names is preserved.
	if deduped[0].Name != "Georgia" || deduped[0].AmericanOdds != 450 {
		t.Errorf("Georgia entry = %+v, want odds 450", deduped[0])
	}
	if deduped[1].Name != "Ohio State" || deduped[1].AmericanOdds != -120 {
		t.Errorf("Ohio State entry = %+v, want odds -120", deduped[1])
	}
	if deduped[2].Name != "Oregon" || deduped[2].AmericanOdds != 1200 {
		t.Errorf("Oregon entry = %+v, want odds 1200", deduped[2])
	}
}

func TestRankByImplied(t *testing.T) {
	outcomes := []models.FuturesOutcome{
		{Name: "Longshot", AmericanOdds: 2500, ImpliedProb: AmericanToImplied(2500)},
		{Name: "Favorite", AmericanOdds: -200, ImpliedProb: AmericanToImplied(-200)},
		{Name: "Middle", AmericanOdds: 300, ImpliedProb: AmericanToImplied(300)},
	}
	ranked := RankByImplied(outcomes)
	if ranked[0].Name != "Favorite" || ranked[1].Name != "Middle" || ranked[2].Name != "Longshot" {
		t.Fatalf("unexpected order: %s %s %s", ranked[0].Name, ranked[1].Name, ranked[2].Name)
	}
}
