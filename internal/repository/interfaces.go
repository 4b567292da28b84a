package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// PickRunRepository persists weekly pick run snapshots.
type PickRunRepository interface {
	// Create inserts a run and all of its picks in one transaction.
	Create(ctx context.Context, run *models.PickRun) error
	// GetByID retrieves a run with its picks.
	GetByID(ctx context.Context, id uuid.UUID) (*models.PickRun, error)
	// GetLatestForWeek retrieves the most recent run for a season week.
	GetLatestForWeek(ctx context.Context, season, week int, seasonType string) (*models.PickRun, error)
	// ListForSeason retrieves run headers for a season, newest first,
	// without their picks.
	ListForSeason(ctx context.Context, season int) ([]*models.PickRun, error)
}
