// Package edge implements the spread-edge model: cover probabilities, tier
// classification, per-game pick construction, ranking views, and parlay
// enumeration. Everything in this package is a pure function of its inputs.
package edge

import "math"

// normalCDF is the standard normal cumulative distribution function.
func normalCDF(z float64) float64 {
	return 0.5 * (1.0 + math.Erf(z/math.Sqrt2))
}

// CoverProbability returns the home team's probability of covering the market
// spread. The true game margin (home minus away) is treated as normally
// distributed with mean modelMargin and standard deviation stdDev. stdDev is a
// fixed forecast-error constant, a design simplification rather than a value
// fit from historical results; callers guarantee stdDev > 0 via configuration.
//
// With spread s from the home perspective (negative = home favored), home
// covers when margin > -s, so P = 1 - Phi((-s - m) / sigma).
func CoverProbability(modelMargin, marketSpread, stdDev float64) float64 {
	z := (-marketSpread - modelMargin) / stdDev
	return 1.0 - normalCDF(z)
}
