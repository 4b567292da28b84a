package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PickRun is a persisted snapshot of one weekly model run. Runs are append
// only; later runs for the same week supersede earlier ones by created_at.
type PickRun struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Season     int       `db:"season" json:"season"`
	Week       int       `db:"week" json:"week"`
	SeasonType string    `db:"season_type" json:"season_type"`
	HomeField  float64   `db:"home_field" json:"home_field"`
	StdDev     float64   `db:"std_dev" json:"std_dev"`
	Provider   string    `db:"provider" json:"provider"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	Picks      []Pick    `db:"-" json:"picks"`
}

// ParsePickRunID parses a run identifier from user input. A malformed value
// yields ErrInvalidID.
func ParsePickRunID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// NewPickRun builds an unsaved run snapshot with a fresh identifier.
func NewPickRun(season, week int, seasonType string, homeField, stdDev float64, provider string, picks []Pick) *PickRun {
	return &PickRun{
		ID:         uuid.New(),
		Season:     season,
		Week:       week,
		SeasonType: seasonType,
		HomeField:  homeField,
		StdDev:     stdDev,
		Provider:   provider,
		CreatedAt:  time.Now().UTC(),
		Picks:      picks,
	}
}
