package cfbd

import (
	"context"
	"net/url"
	"strconv"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// Season types accepted by the /lines endpoint.
const (
	SeasonRegular    = "regular"
	SeasonPostseason = "postseason"
)

// bettingGame mirrors one entry of the /lines response.
type bettingGame struct {
	ID         int           `json:"id"`
	Season     int           `json:"season"`
	SeasonType string        `json:"seasonType"`
	Week       int           `json:"week"`
	HomeTeam   string        `json:"homeTeam"`
	HomeScore  *int          `json:"homeScore"`
	AwayTeam   string        `json:"awayTeam"`
	AwayScore  *int          `json:"awayScore"`
	Lines      []bettingLine `json:"lines"`
}

// bettingLine mirrors one sportsbook quote inside a game entry. Spread is
// nullable upstream when the book has not posted a number.
type bettingLine struct {
	Provider        string   `json:"provider"`
	Spread          *float64 `json:"spread"`
	FormattedSpread string   `json:"formattedSpread"`
	OverUnder       *float64 `json:"overUnder"`
}

// GetLines fetches the betting lines for a week and normalizes them into
// domain Games. Final scores ride along when the games have been played,
// which lets past picks be graded against the closing spread.
func (c *Client) GetLines(ctx context.Context, year, week int, seasonType string) ([]models.Game, error) {
	if seasonType == "" {
		seasonType = SeasonRegular
	}
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	params.Set("week", strconv.Itoa(week))
	params.Set("seasonType", seasonType)

	var raw []bettingGame
	if err := c.getJSON(ctx, "/lines", params, &raw); err != nil {
		return nil, err
	}

	games := make([]models.Game, 0, len(raw))
	for _, g := range raw {
		game := models.Game{
			HomeTeam:  g.HomeTeam,
			AwayTeam:  g.AwayTeam,
			HomeScore: g.HomeScore,
			AwayScore: g.AwayScore,
			Lines:     make([]models.MarketLine, 0, len(g.Lines)),
		}
		for _, ln := range g.Lines {
			game.Lines = append(game.Lines, models.MarketLine{
				Provider: ln.Provider,
				Spread:   ln.Spread,
			})
		}
		games = append(games, game)
	}
	return games, nil
}
