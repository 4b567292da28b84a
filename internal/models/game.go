// Package models defines the core domain types shared across the application.
package models

import "strings"

// MarketLine is one quoted spread for a game from a single sportsbook provider.
// Spread is from the home team's perspective: negative means home is favored.
type MarketLine struct {
	Provider string   `db:"provider" json:"provider"`
	Spread   *float64 `db:"spread" json:"spread"`
}

// HasSpread reports whether the line carries a usable spread.
func (l *MarketLine) HasSpread() bool {
	return l != nil && l.Spread != nil
}

// Game is a single matchup with the market lines quoted for it.
// Scores are nil until the game has been played.
type Game struct {
	HomeTeam  string       `db:"home_team" json:"home_team"`
	AwayTeam  string       `db:"away_team" json:"away_team"`
	HomeScore *int         `db:"home_score" json:"home_score"`
	AwayScore *int         `db:"away_score" json:"away_score"`
	Lines     []MarketLine `db:"-" json:"lines"`
}

// SelectLine returns the line from the preferred provider, falling back to the
// first quoted line when the preferred provider is absent. Provider matching is
// case-insensitive. Returns nil when the game has no lines at all.
func (g *Game) SelectLine(preferred string) *MarketLine {
	if len(g.Lines) == 0 {
		return nil
	}
	for i := range g.Lines {
		if strings.EqualFold(g.Lines[i].Provider, preferred) {
			return &g.Lines[i]
		}
	}
	return &g.Lines[0]
}

// IsFinal reports whether both final scores are available.
func (g *Game) IsFinal() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// Margin returns the final home-minus-away margin. Only valid when IsFinal.
func (g *Game) Margin() float64 {
	if !g.IsFinal() {
		return 0
	}
	return float64(*g.HomeScore - *g.AwayScore)
}
