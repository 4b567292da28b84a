package models

import "sort"

// TeamRatings maps a team name to its SP+ power rating. Ratings are unitless
// but calibrated so that rating differences approximate point-spread margins
// on a neutral field. The map is fetched once per season and never mutated
// during a run.
type TeamRatings map[string]float64

// Has reports whether a rating exists for the given team.
func (r TeamRatings) Has(team string) bool {
	_, ok := r[team]
	return ok
}

// RatedTeam pairs a team name with its rating for ranked display.
type RatedTeam struct {
	Team   string  `json:"team"`
	Rating float64 `json:"rating"`
}

// Ranked returns all teams sorted by rating descending. Ties keep a stable
// alphabetical order so repeated runs produce identical output.
func (r TeamRatings) Ranked() []RatedTeam {
	ranked := make([]RatedTeam, 0, len(r))
	for team, rating := range r {
		ranked = append(ranked, RatedTeam{Team: team, Rating: rating})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Rating == ranked[j].Rating {
			return ranked[i].Team < ranked[j].Team
		}
		return ranked[i].Rating > ranked[j].Rating
	})
	return ranked
}
