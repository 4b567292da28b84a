package service

import (
	"fmt"
	"time"

	"github.com/yourusername/gridiron-edge/internal/cfbd"
)

// Display weeks run 1-20: 1-15 are the regular season, 16-20 map onto
// postseason weeks 1-5 upstream.
const (
	LastRegularWeek  = 15
	LastDisplayWeek  = 20
	FirstDisplayWeek = 1
)

// ErrWeekOutOfRange reports a display week outside 1-20.
var ErrWeekOutOfRange = fmt.Errorf("week must be between %d and %d", FirstDisplayWeek, LastDisplayWeek)

// TranslateWeek converts a display week into the season type and week number
// the upstream API expects.
func TranslateWeek(displayWeek int) (seasonType string, apiWeek int, err error) {
	if displayWeek < FirstDisplayWeek || displayWeek > LastDisplayWeek {
		return "", 0, ErrWeekOutOfRange
	}
	if displayWeek <= LastRegularWeek {
		return cfbd.SeasonRegular, displayWeek, nil
	}
	return cfbd.SeasonPostseason, displayWeek - LastRegularWeek, nil
}

// CurrentWeek estimates the display week in progress, assuming the season
// starts September 1 of the season year. Before the season it returns week 1;
// deep into the season it caps at the last regular week.
func CurrentWeek(now time.Time) (season, week int) {
	season = now.Year()
	start := time.Date(season, time.September, 1, 0, 0, 0, 0, time.UTC)
	if now.Before(start) {
		// January bowl games belong to the prior season.
		if now.Month() <= time.March {
			return season - 1, LastRegularWeek
		}
		return season, FirstDisplayWeek
	}

	week = int(now.Sub(start).Hours()/(24*7)) + 1
	if week > LastRegularWeek {
		week = LastRegularWeek
	}
	return season, week
}

// WeekLabel renders a display week for output headers.
func WeekLabel(displayWeek int) string {
	if displayWeek <= LastRegularWeek {
		return fmt.Sprintf("Week %d", displayWeek)
	}
	return fmt.Sprintf("Postseason Week %d", displayWeek-LastRegularWeek)
}
