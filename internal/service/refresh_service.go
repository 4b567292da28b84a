package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/cache"
	"github.com/yourusername/gridiron-edge/internal/metrics"
)

// RefreshService re-fetches upstream snapshots on a schedule, keeping the
// cache warm so interactive runs never block on the API. It tracks the last
// successful refresh for readiness reporting.
type RefreshService struct {
	source DataSource
	cache  *cache.SnapshotStore
	log    *logrus.Logger

	// clock is swappable in tests.
	clock func() time.Time

	mu          sync.RWMutex
	lastRefresh time.Time
}

// NewRefreshService creates a refresh service against the live clock.
func NewRefreshService(source DataSource, store *cache.SnapshotStore, log *logrus.Logger) *RefreshService {
	return &RefreshService{
		source: source,
		cache:  store,
		log:    log,
		clock:  time.Now,
	}
}

// RefreshRatings re-fetches the current season's ratings snapshot.
func (s *RefreshService) RefreshRatings(ctx context.Context) error {
	season, _ := CurrentWeek(s.clock())

	ratings, err := s.source.GetRatings(ctx, season)
	if err != nil {
		metrics.RecordSnapshotRefresh("error")
		return fmt.Errorf("failed to refresh ratings: %w", err)
	}

	if err := s.cache.Set(cache.RatingsKey(season), ratings); err != nil {
		metrics.RecordSnapshotRefresh("error")
		return fmt.Errorf("failed to store ratings snapshot: %w", err)
	}

	metrics.RecordSnapshotRefresh("success")
	s.markRefreshed()
	s.log.WithFields(logrus.Fields{
		"season": season,
		"teams":  len(ratings),
	}).Info("Ratings snapshot refreshed")

	return nil
}

// RefreshLines re-fetches the current week's lines snapshot.
func (s *RefreshService) RefreshLines(ctx context.Context) error {
	season, week := CurrentWeek(s.clock())
	seasonType, apiWeek, err := TranslateWeek(week)
	if err != nil {
		return err
	}

	games, err := s.source.GetLines(ctx, season, apiWeek, seasonType)
	if err != nil {
		metrics.RecordSnapshotRefresh("error")
		return fmt.Errorf("failed to refresh lines: %w", err)
	}

	if err := s.cache.Set(cache.LinesKey(season, seasonType, apiWeek), games); err != nil {
		metrics.RecordSnapshotRefresh("error")
		return fmt.Errorf("failed to store lines snapshot: %w", err)
	}

	metrics.RecordSnapshotRefresh("success")
	s.markRefreshed()
	s.log.WithFields(logrus.Fields{
		"season": season,
		"week":   week,
		"games":  len(games),
	}).Info("Lines snapshot refreshed")

	return nil
}

// LastRefresh reports when any snapshot last refreshed successfully.
func (s *RefreshService) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefresh
}

func (s *RefreshService) markRefreshed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRefresh = s.clock()
}
