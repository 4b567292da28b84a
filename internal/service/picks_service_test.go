package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/gridiron-edge/internal/cache"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/models"
)

type fakeSource struct {
	ratings      models.TeamRatings
	games        []models.Game
	ratingsErr   error
	linesErr     error
	ratingsCalls int
	linesCalls   int
}

func (f *fakeSource) GetRatings(ctx context.Context, year int) (models.TeamRatings, error) {
	f.ratingsCalls++
	return f.ratings, f.ratingsErr
}

func (f *fakeSource) GetLines(ctx context.Context, year, week int, seasonType string) ([]models.Game, error) {
	f.linesCalls++
	return f.games, f.linesErr
}

func floatPtr(v float64) *float64 { return &v }

func testModelConfig() *config.ModelConfig {
	return &config.ModelConfig{
		HomeField:           2.5,
		PostseasonHomeField: 0,
		StdDev:              13.0,
		EdgeThreshold:       2.0,
		CoverProbThreshold:  0.55,
		PreferredProvider:   "consensus",
		TopN:                12,
		TierA:               0.60,
		TierB:               0.55,
		TierC:               0.52,
	}
}

func testService(t *testing.T, source DataSource) *WeeklyPicksService {
	t.Helper()

	store, err := cache.NewSnapshotStore(t.TempDir(), time.Hour)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewWeeklyPicksService(source, store, nil, testModelConfig(), log)
}

func testGames() []models.Game {
	return []models.Game{
		{
			HomeTeam: "Georgia",
			AwayTeam: "Clemson",
			Lines:    []models.MarketLine{{Provider: "consensus", Spread: floatPtr(-4.0)}},
		},
		{
			HomeTeam: "Ohio State",
			AwayTeam: "Michigan",
			Lines:    []models.MarketLine{{Provider: "consensus", Spread: floatPtr(-1.5)}},
		},
		{
			// No line posted yet.
			HomeTeam: "Baylor",
			AwayTeam: "TCU",
		},
	}
}

func TestRunProducesRankedPicks(t *testing.T) {
	source := &fakeSource{
		ratings: models.TeamRatings{
			"Georgia":    25.0,
			"Clemson":    18.0,
			"Ohio State": 27.0,
			"Michigan":   24.0,
		},
		games: testGames(),
	}
	svc := testService(t, source)

	result, err := svc.Run(context.Background(), 2025, 3)
	require.NoError(t, err)

	assert.Equal(t, 2025, result.Season)
	assert.Equal(t, 3, result.Week)
	assert.Equal(t, "regular", result.SeasonType)
	require.Len(t, result.AllPicks, 2) // Baylor/TCU has no spread

	// Georgia edge: (25-18)+2.5-4.0 = 5.5, Ohio State: (27-24)+2.5-1.5 = 4.0.
	assert.Equal(t, "Georgia", result.AllPicks[0].PickTeam)
	assert.Equal(t, 5.5, result.AllPicks[0].EdgePoints)
	assert.Equal(t, "Ohio State", result.AllPicks[1].PickTeam)

	// Both clear the strong-pick thresholds.
	assert.Len(t, result.Strong, 2)
	assert.Len(t, result.Top, 2)
}

func TestRunUsesSnapshotCache(t *testing.T) {
	source := &fakeSource{
		ratings: models.TeamRatings{"Georgia": 25.0, "Clemson": 18.0},
		games:   testGames()[:1],
	}
	svc := testService(t, source)

	_, err := svc.Run(context.Background(), 2025, 3)
	require.NoError(t, err)
	_, err = svc.Run(context.Background(), 2025, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, source.ratingsCalls, "second run should hit the ratings cache")
	assert.Equal(t, 1, source.linesCalls, "second run should hit the lines cache")
}

func TestRunErrors(t *testing.T) {
	t.Run("invalid week", func(t *testing.T) {
		svc := testService(t, &fakeSource{})
		_, err := svc.Run(context.Background(), 2025, 25)
		assert.ErrorIs(t, err, ErrWeekOutOfRange)
	})

	t.Run("ratings fetch failure", func(t *testing.T) {
		svc := testService(t, &fakeSource{ratingsErr: errors.New("upstream down")})
		_, err := svc.Run(context.Background(), 2025, 3)
		assert.Error(t, err)
	})

	t.Run("empty ratings", func(t *testing.T) {
		svc := testService(t, &fakeSource{ratings: models.TeamRatings{}})
		_, err := svc.Run(context.Background(), 2025, 3)
		assert.ErrorIs(t, err, models.ErrNoRatings)
	})

	t.Run("empty week", func(t *testing.T) {
		svc := testService(t, &fakeSource{ratings: models.TeamRatings{"Georgia": 25.0}})
		_, err := svc.Run(context.Background(), 2025, 3)
		assert.ErrorIs(t, err, models.ErrNoGames)
	})
}

func TestRefreshService(t *testing.T) {
	source := &fakeSource{
		ratings: models.TeamRatings{"Georgia": 25.0},
		games:   testGames()[:1],
	}

	store, err := cache.NewSnapshotStore(t.TempDir(), time.Hour)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := NewRefreshService(source, store, log)
	svc.clock = func() time.Time {
		return time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)
	}

	assert.True(t, svc.LastRefresh().IsZero())

	require.NoError(t, svc.RefreshRatings(context.Background()))
	require.NoError(t, svc.RefreshLines(context.Background()))
	assert.False(t, svc.LastRefresh().IsZero())

	// Refreshed snapshots should be visible through the cache.
	var ratings models.TeamRatings
	hit, err := store.Get(cache.RatingsKey(2025), &ratings)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, 25.0, ratings["Georgia"])

	var games []models.Game
	hit, err = store.Get(cache.LinesKey(2025, "regular", 7), &games)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, games, 1)

	t.Run("fetch failure surfaces", func(t *testing.T) {
		source.ratingsErr = errors.New("upstream down")
		assert.Error(t, svc.RefreshRatings(context.Background()))
	})
}
