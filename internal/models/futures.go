package models

// FuturesOutcome is a single season-long outcome quoted by a bookmaker,
// normalized to American odds with its implied probability attached.
type FuturesOutcome struct {
	Name         string  `db:"name" json:"name"`
	Description  string  `db:"description" json:"description"`
	AmericanOdds int     `db:"american_odds" json:"american_odds"`
	ImpliedProb  float64 `db:"implied_prob" json:"implied_prob"`
}

// ParlayCombination is an unordered selection of picks treated as one bet.
// JointProb multiplies the legs' cover probabilities, which models the legs
// as independent events.
type ParlayCombination struct {
	JointProb float64 `json:"joint_prob"`
	Legs      []Pick  `json:"legs"`
}
