// Package odds converts American-odds prices to implied probabilities and
// de-duplicates futures outcomes quoted by multiple bookmakers. It feeds the
// futures display only; the edge model never consumes it.
package odds

import (
	"fmt"
	"math"
)

// AmericanToImplied converts an American price to its implied probability as a
// percentage rounded to one decimal place, ignoring bookmaker margin.
// +150 -> 40.0, -150 -> 60.0.
func AmericanToImplied(american int) float64 {
	var prob float64
	if american > 0 {
		prob = 100.0 / (float64(american) + 100.0) * 100.0
	} else {
		abs := math.Abs(float64(american))
		prob = abs / (abs + 100.0) * 100.0
	}
	return math.Round(prob*10) / 10
}

// FormatAmerican renders an American price with its conventional sign,
// prefixing + for positive values.
func FormatAmerican(american int) string {
	if american > 0 {
		return fmt.Sprintf("+%d", american)
	}
	return fmt.Sprintf("%d", american)
}
