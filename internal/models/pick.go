package models

import "fmt"

// Tier is a discrete confidence bucket derived from cover probability.
type Tier string

const (
	TierA    Tier = "A"
	TierB    Tier = "B"
	TierC    Tier = "C"
	TierPass Tier = "Pass"
)

// PickSide identifies which side of the spread the model favors.
type PickSide string

const (
	SideHome PickSide = "HOME"
	SideAway PickSide = "AWAY"
	SideNone PickSide = "NO EDGE"
)

// Pick is one fully computed model row for a single game: the model spread,
// the market spread, the edge between them, and the side the model backs.
// Picks are recomputed fresh on every run and never mutated after creation.
type Pick struct {
	HomeTeam         string   `db:"home_team" json:"home_team"`
	AwayTeam         string   `db:"away_team" json:"away_team"`
	Provider         string   `db:"provider" json:"provider"`
	HomeRating       float64  `db:"home_rating" json:"sp_home_rating"`
	AwayRating       float64  `db:"away_rating" json:"sp_away_rating"`
	ModelSpreadHome  float64  `db:"model_spread_home" json:"model_spread_home"`
	MarketSpreadHome float64  `db:"market_spread_home" json:"market_spread_home"`
	EdgePoints       float64  `db:"edge_points" json:"edge_points"`
	CoverProb        float64  `db:"cover_prob" json:"cover_prob"`
	Tier             Tier     `db:"tier" json:"tier"`
	Side             PickSide `db:"side" json:"pick_side"`
	PickTeam         string   `db:"pick_team" json:"pick_team"`
}

// Label renders the pick the way it reads on a ticket, e.g. "HOME (Georgia)".
func (p *Pick) Label() string {
	switch p.Side {
	case SideHome, SideAway:
		return fmt.Sprintf("%s (%s)", p.Side, p.PickTeam)
	default:
		return string(SideNone)
	}
}

// Matchup returns the away-at-home description of the game.
func (p *Pick) Matchup() string {
	return fmt.Sprintf("%s @ %s", p.AwayTeam, p.HomeTeam)
}

// IsPlayable reports whether the pick names an actual side.
func (p *Pick) IsPlayable() bool {
	return p.Side == SideHome || p.Side == SideAway
}
