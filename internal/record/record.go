package record

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Standard -110 juice: a winning unit returns 100/110.
var winReturn = decimal.NewFromInt(100).Div(decimal.NewFromInt(110))

// Record accumulates graded pick outcomes across a set of games.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Pushes int `json:"pushes"`
}

// Add folds one graded result into the record. No-action results are ignored.
func (r *Record) Add(result Result) {
	switch result {
	case ResultWin:
		r.Wins++
	case ResultLoss:
		r.Losses++
	case ResultPush:
		r.Pushes++
	}
}

// Graded returns the number of picks that produced a decision.
func (r *Record) Graded() int {
	return r.Wins + r.Losses + r.Pushes
}

// HitRate returns wins over decided picks, excluding pushes.
func (r *Record) HitRate() float64 {
	decided := r.Wins + r.Losses
	if decided == 0 {
		return 0
	}
	return float64(r.Wins) / float64(decided)
}

// ROI returns the flat-stake return on investment at -110 pricing.
// Every graded pick stakes one unit; pushes return the stake.
func (r *Record) ROI() decimal.Decimal {
	staked := decimal.NewFromInt(int64(r.Graded()))
	if staked.IsZero() {
		return decimal.Zero
	}

	net := winReturn.Mul(decimal.NewFromInt(int64(r.Wins))).
		Sub(decimal.NewFromInt(int64(r.Losses)))

	return net.Div(staked).Round(4)
}

// String renders the record in the familiar W-L-P form.
func (r *Record) String() string {
	return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Pushes)
}
