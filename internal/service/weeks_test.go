package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateWeek(t *testing.T) {
	tests := []struct {
		name        string
		displayWeek int
		wantType    string
		wantWeek    int
		wantErr     bool
	}{
		{"first regular week", 1, "regular", 1, false},
		{"mid regular season", 8, "regular", 8, false},
		{"last regular week", 15, "regular", 15, false},
		{"first postseason week", 16, "postseason", 1, false},
		{"last postseason week", 20, "postseason", 5, false},
		{"zero week", 0, "", 0, true},
		{"beyond postseason", 21, "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seasonType, apiWeek, err := TranslateWeek(tt.displayWeek)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrWeekOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, seasonType)
			assert.Equal(t, tt.wantWeek, apiWeek)
		})
	}
}

func TestCurrentWeek(t *testing.T) {
	t.Run("season opener", func(t *testing.T) {
		season, week := CurrentWeek(time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC))
		assert.Equal(t, 2025, season)
		assert.Equal(t, 1, week)
	})

	t.Run("mid october", func(t *testing.T) {
		season, week := CurrentWeek(time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 2025, season)
		assert.Equal(t, 7, week)
	})

	t.Run("deep december caps at last regular week", func(t *testing.T) {
		season, week := CurrentWeek(time.Date(2025, time.December, 30, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 2025, season)
		assert.Equal(t, LastRegularWeek, week)
	})

	t.Run("january belongs to prior season", func(t *testing.T) {
		season, week := CurrentWeek(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 2025, season)
		assert.Equal(t, LastRegularWeek, week)
	})

	t.Run("summer before kickoff", func(t *testing.T) {
		season, week := CurrentWeek(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 2025, season)
		assert.Equal(t, 1, week)
	})
}

func TestWeekLabel(t *testing.T) {
	assert.Equal(t, "Week 9", WeekLabel(9))
	assert.Equal(t, "Postseason Week 2", WeekLabel(17))
}
