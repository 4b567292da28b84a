package edge

import (
	"math"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// Params holds the model parameters for one pick-building run.
type Params struct {
	// HomeField is the home-field advantage in points added to the neutral
	// rating difference. Postseason games are mostly neutral site, so 0 there.
	HomeField float64
	// StdDev is the assumed standard deviation of model forecast error in
	// points. Must be > 0; enforced by config validation.
	StdDev float64
	// PreferredProvider names the sportsbook whose line is used when present.
	PreferredProvider string
	// Thresholds are the tier cutoffs. Zero value falls back to defaults.
	Thresholds Thresholds
}

// DefaultParams returns the reference model parameters.
func DefaultParams() Params {
	return Params{
		HomeField:         2.5,
		StdDev:            13.0,
		PreferredProvider: "consensus",
		Thresholds:        DefaultThresholds(),
	}
}

// BuildPicks computes one Pick per usable game. A game is silently excluded
// when no line carries a numeric spread or when either team is missing from
// the ratings map; partial results are preferred over failing the batch.
// Output order follows input order; ranking is the aggregator's job.
func BuildPicks(ratings models.TeamRatings, games []models.Game, p Params) []models.Pick {
	if (p.Thresholds == Thresholds{}) {
		p.Thresholds = DefaultThresholds()
	}

	picks := make([]models.Pick, 0, len(games))
	for i := range games {
		pick, ok := buildPick(ratings, &games[i], p)
		if !ok {
			continue
		}
		picks = append(picks, pick)
	}
	return picks
}

func buildPick(ratings models.TeamRatings, game *models.Game, p Params) (models.Pick, bool) {
	line := game.SelectLine(p.PreferredProvider)
	if !line.HasSpread() {
		return models.Pick{}, false
	}
	homeRating, homeOK := ratings[game.HomeTeam]
	awayRating, awayOK := ratings[game.AwayTeam]
	if !homeOK || !awayOK {
		return models.Pick{}, false
	}

	// SP+ ratings are points versus average on a neutral field, so the
	// neutral margin is the rating difference.
	modelSpread := (homeRating - awayRating) + p.HomeField
	marketSpread := *line.Spread

	// The market spread already carries the home-favorite sign convention:
	// implied margin is -s, so edge = m - (-s) = m + s.
	edgePoints := modelSpread + marketSpread

	homeCover := CoverProbability(modelSpread, marketSpread, p.StdDev)

	var (
		side      models.PickSide
		pickTeam  string
		coverProb float64
	)
	switch {
	case edgePoints > 0:
		side, pickTeam, coverProb = models.SideHome, game.HomeTeam, homeCover
	case edgePoints < 0:
		side, pickTeam, coverProb = models.SideAway, game.AwayTeam, 1.0-homeCover
	default:
		side, pickTeam, coverProb = models.SideNone, "", 0.5
	}

	return models.Pick{
		HomeTeam:         game.HomeTeam,
		AwayTeam:         game.AwayTeam,
		Provider:         line.Provider,
		HomeRating:       round2(homeRating),
		AwayRating:       round2(awayRating),
		ModelSpreadHome:  round2(modelSpread),
		MarketSpreadHome: marketSpread,
		EdgePoints:       round2(edgePoints),
		CoverProb:        round3(coverProb),
		Tier:             p.Thresholds.Classify(coverProb),
		Side:             side,
		PickTeam:         pickTeam,
	}, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
