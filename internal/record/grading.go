// Package record grades picks against final scores and aggregates season results.
package record

import (
	"github.com/yourusername/gridiron-edge/internal/models"
)

// Result is the against-the-spread outcome of a single graded pick.
type Result string

const (
	ResultWin      Result = "win"
	ResultLoss     Result = "loss"
	ResultPush     Result = "push"
	ResultNoAction Result = "no_action"
)

// GradePick grades a pick against the final score. Picks without a playable
// side, and games where the landed margin equals the spread, carry no action
// against the record.
func GradePick(p *models.Pick, homeScore, awayScore int) Result {
	if !p.IsPlayable() {
		return ResultNoAction
	}

	// Home covers when the final margin beats the spread the market laid.
	// MarketSpreadHome is quoted from the home side, so -13.5 means the
	// home team must win by 14 or more.
	coverMargin := float64(homeScore-awayScore) + p.MarketSpreadHome

	if coverMargin == 0 {
		return ResultPush
	}

	homeCovered := coverMargin > 0
	if (p.Side == models.SideHome) == homeCovered {
		return ResultWin
	}
	return ResultLoss
}

// GradeGame grades a pick against its game when the game has gone final.
func GradeGame(p *models.Pick, g *models.Game) Result {
	if !g.IsFinal() {
		return ResultNoAction
	}
	return GradePick(p, *g.HomeScore, *g.AwayScore)
}
