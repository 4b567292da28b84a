package logger

import "github.com/sirupsen/logrus"

// ModelLogger emits structured events for edge-model pipeline runs.
type ModelLogger struct {
	log *logrus.Logger
}

// NewModelLogger creates a model logger over the shared logger instance.
func NewModelLogger(log *logrus.Logger) *ModelLogger {
	return &ModelLogger{log: log}
}

// LogRunStarted records the start of a weekly pipeline run.
func (m *ModelLogger) LogRunStarted(year, week int, seasonType string, homeField float64) {
	m.log.WithFields(logrus.Fields{
		"component":   "edge_model",
		"event_type":  "run_started",
		"year":        year,
		"week":        week,
		"season_type": seasonType,
		"home_field":  homeField,
	}).Info("Weekly picks run started")
}

// LogRunCompleted records the outcome of a pipeline run.
func (m *ModelLogger) LogRunCompleted(year, week, totalGames, picks, strong int) {
	m.log.WithFields(logrus.Fields{
		"component":    "edge_model",
		"event_type":   "run_completed",
		"year":         year,
		"week":         week,
		"total_games":  totalGames,
		"picks":        picks,
		"strong_picks": strong,
	}).Info("Weekly picks run completed")
}

// LogGameExcluded records a silent exclusion and why it happened.
func (m *ModelLogger) LogGameExcluded(home, away, reason string) {
	m.log.WithFields(logrus.Fields{
		"component":  "edge_model",
		"event_type": "game_excluded",
		"home_team":  home,
		"away_team":  away,
		"reason":     reason,
	}).Debug("Game excluded from model")
}

// LogCacheRefresh records a scheduled snapshot refresh.
func (m *ModelLogger) LogCacheRefresh(key string, err error) {
	fields := logrus.Fields{
		"component":  "snapshot_cache",
		"event_type": "refresh",
		"key":        key,
	}
	if err != nil {
		m.log.WithFields(fields).WithError(err).Warn("Snapshot refresh failed")
		return
	}
	m.log.WithFields(fields).Info("Snapshot refreshed")
}
