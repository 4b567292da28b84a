// Package service orchestrates data retrieval, the edge model, and persistence.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/cache"
	"github.com/yourusername/gridiron-edge/internal/cfbd"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/edge"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

// RatingsSource fetches season team ratings.
type RatingsSource interface {
	GetRatings(ctx context.Context, year int) (models.TeamRatings, error)
}

// LinesSource fetches games with betting lines for one week.
type LinesSource interface {
	GetLines(ctx context.Context, year, week int, seasonType string) ([]models.Game, error)
}

// DataSource is the combined upstream surface the pipeline needs.
type DataSource interface {
	RatingsSource
	LinesSource
}

// WeeklyPicks is the complete output of one model run for a week.
type WeeklyPicks struct {
	Season     int
	Week       int
	SeasonType string
	Games      []models.Game
	// AllPicks is every computed pick ranked by absolute edge.
	AllPicks []models.Pick
	// Strong is the filtered betting card.
	Strong []models.Pick
	// Top is the pick'em slate ranked by cover probability.
	Top []models.Pick
}

// WeeklyPicksService runs the weekly pipeline: load ratings and lines through
// the snapshot cache, build picks, rank them, and optionally persist the run.
type WeeklyPicksService struct {
	source   DataSource
	cache    *cache.SnapshotStore
	repos    *repository.Repositories
	modelCfg *config.ModelConfig
	log      *logrus.Logger
	modelLog *logger.ModelLogger
}

// NewWeeklyPicksService creates the pipeline service. repos may be nil when
// persistence is disabled.
func NewWeeklyPicksService(source DataSource, store *cache.SnapshotStore, repos *repository.Repositories, modelCfg *config.ModelConfig, log *logrus.Logger) *WeeklyPicksService {
	return &WeeklyPicksService{
		source:   source,
		cache:    store,
		repos:    repos,
		modelCfg: modelCfg,
		log:      log,
		modelLog: logger.NewModelLogger(log),
	}
}

// Run executes the pipeline for one display week.
func (s *WeeklyPicksService) Run(ctx context.Context, season, displayWeek int) (*WeeklyPicks, error) {
	start := time.Now()

	seasonType, apiWeek, err := TranslateWeek(displayWeek)
	if err != nil {
		return nil, err
	}

	params, err := edge.FromConfig(s.modelCfg, seasonType == cfbd.SeasonPostseason)
	if err != nil {
		return nil, fmt.Errorf("invalid model parameters: %w", err)
	}

	s.modelLog.LogRunStarted(season, displayWeek, seasonType, params.HomeField)

	ratings, err := s.loadRatings(ctx, season)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return nil, models.ErrNoRatings
	}

	games, err := s.loadLines(ctx, season, apiWeek, seasonType)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, models.ErrNoGames
	}

	picks := edge.BuildPicks(ratings, games, params)
	s.recordExclusions(games, picks)

	result := &WeeklyPicks{
		Season:     season,
		Week:       displayWeek,
		SeasonType: seasonType,
		Games:      games,
		AllPicks:   edge.SortByAbsEdge(picks),
		Strong:     edge.StrongPicks(picks, s.modelCfg.EdgeThreshold, s.modelCfg.CoverProbThreshold),
		Top:        edge.TopN(picks, s.modelCfg.TopN),
	}

	s.observeRun(result, start)

	if s.repos != nil {
		run := models.NewPickRun(season, displayWeek, seasonType, params.HomeField, params.StdDev, params.PreferredProvider, result.AllPicks)
		if err := s.repos.PickRuns.Create(ctx, run); err != nil {
			// Snapshot persistence is best effort; the run output stands.
			s.log.WithError(err).Warn("Failed to persist pick run snapshot")
		}
	}

	s.modelLog.LogRunCompleted(season, displayWeek, len(games), len(result.AllPicks), len(result.Strong))

	return result, nil
}

// loadRatings returns season ratings through the snapshot cache.
func (s *WeeklyPicksService) loadRatings(ctx context.Context, season int) (models.TeamRatings, error) {
	key := cache.RatingsKey(season)

	var ratings models.TeamRatings
	if hit, err := s.cache.Get(key, &ratings); err == nil && hit {
		metrics.RecordCacheHit()
		return ratings, nil
	}
	metrics.RecordCacheMiss()

	ratings, err := s.source.GetRatings(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ratings: %w", err)
	}

	if err := s.cache.Set(key, ratings); err != nil {
		s.log.WithError(err).Warn("Failed to cache ratings snapshot")
	}

	return ratings, nil
}

// loadLines returns the week's games through the snapshot cache.
func (s *WeeklyPicksService) loadLines(ctx context.Context, season, apiWeek int, seasonType string) ([]models.Game, error) {
	key := cache.LinesKey(season, seasonType, apiWeek)

	var games []models.Game
	if hit, err := s.cache.Get(key, &games); err == nil && hit {
		metrics.RecordCacheHit()
		return games, nil
	}
	metrics.RecordCacheMiss()

	games, err := s.source.GetLines(ctx, season, apiWeek, seasonType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lines: %w", err)
	}

	if err := s.cache.Set(key, games); err != nil {
		s.log.WithError(err).Warn("Failed to cache lines snapshot")
	}

	return games, nil
}

// recordExclusions logs and counts games the model dropped.
func (s *WeeklyPicksService) recordExclusions(games []models.Game, picks []models.Pick) {
	if len(picks) == len(games) {
		return
	}

	kept := make(map[string]bool, len(picks))
	for i := range picks {
		kept[picks[i].HomeTeam+"|"+picks[i].AwayTeam] = true
	}
	for i := range games {
		g := &games[i]
		if kept[g.HomeTeam+"|"+g.AwayTeam] {
			continue
		}
		reason := "missing_spread"
		if g.SelectLine(s.modelCfg.PreferredProvider).HasSpread() {
			reason = "missing_rating"
		}
		metrics.RecordGameExcluded(reason)
		s.modelLog.LogGameExcluded(g.HomeTeam, g.AwayTeam, reason)
	}
}

func (s *WeeklyPicksService) observeRun(result *WeeklyPicks, start time.Time) {
	for range result.AllPicks {
		metrics.RecordPick()
	}

	tierCounts := make(map[string]int, 4)
	for i := range result.AllPicks {
		tierCounts[string(result.AllPicks[i].Tier)]++
	}
	metrics.UpdateTierCounts(tierCounts)
	metrics.UpdateLastRun(result.Week, len(result.Games))
	metrics.RecordRunDuration(time.Since(start).Seconds())
}
