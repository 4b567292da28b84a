package cfbd

import (
	"context"
	"net/url"
	"strconv"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// spRating mirrors one entry of the /ratings/sp response. Rating is nullable
// upstream for teams outside the rated pool.
type spRating struct {
	Team       string   `json:"team"`
	Conference string   `json:"conference"`
	Rating     *float64 `json:"rating"`
}

// GetRatings fetches SP+ ratings for a season. Teams without a numeric rating
// are dropped rather than defaulted; a missing rating later excludes the
// team's games from the model.
func (c *Client) GetRatings(ctx context.Context, year int) (models.TeamRatings, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))

	var raw []spRating
	if err := c.getJSON(ctx, "/ratings/sp", params, &raw); err != nil {
		return nil, err
	}

	ratings := make(models.TeamRatings, len(raw))
	for _, entry := range raw {
		if entry.Team == "" || entry.Rating == nil {
			continue
		}
		ratings[entry.Team] = *entry.Rating
	}
	return ratings, nil
}
