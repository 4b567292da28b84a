package scheduler

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct{}

func (f *fakeRefresher) RefreshRatings(ctx context.Context) error { return nil }
func (f *fakeRefresher) RefreshLines(ctx context.Context) error   { return nil }

func newTestScheduler() *Scheduler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewScheduler(&fakeRefresher{}, log)
}

func TestStartRequiresJobs(t *testing.T) {
	s := newTestScheduler()
	assert.Error(t, s.Start())
}

func TestScheduleAndLifecycle(t *testing.T) {
	s := newTestScheduler()

	require.NoError(t, s.ScheduleRatingsRefresh("0 6 * * *"))
	require.NoError(t, s.ScheduleLinesRefresh(300))
	assert.True(t, s.GetNextRun().IsZero()) // no next run until started

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())
	assert.Len(t, s.Entries(), 2)
	assert.False(t, s.GetNextRun().IsZero())

	// Double start is rejected, as is scheduling while running.
	assert.Error(t, s.Start())
	assert.Error(t, s.ScheduleRatingsRefresh("0 6 * * *"))

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())

	// Stopping twice is a no-op.
	assert.NoError(t, s.Stop())
}

func TestScheduleRejectsBadExpression(t *testing.T) {
	s := newTestScheduler()
	assert.Error(t, s.ScheduleRatingsRefresh("not a cron expression"))
}

func TestLinesRefreshEnforcesMinimumInterval(t *testing.T) {
	s := newTestScheduler()
	require.NoError(t, s.ScheduleLinesRefresh(1))
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.True(t, s.IsRunning())
}
