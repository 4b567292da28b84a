package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// PostgresPickRunRepository implements PickRunRepository for PostgreSQL
type PostgresPickRunRepository struct {
	db *database.DB
}

// NewPostgresPickRunRepository creates a new pick run repository
func NewPostgresPickRunRepository(db *database.DB) PickRunRepository {
	return &PostgresPickRunRepository{db: db}
}

// Create inserts a run and all of its picks in one transaction
func (r *PostgresPickRunRepository) Create(ctx context.Context, run *models.PickRun) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		runQuery := `
			INSERT INTO pick_runs (id, season, week, season_type, home_field, std_dev, provider, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`

		_, err := tx.Exec(ctx, runQuery,
			run.ID, run.Season, run.Week, run.SeasonType,
			run.HomeField, run.StdDev, run.Provider, run.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create pick run: %w", err)
		}

		pickQuery := `
			INSERT INTO picks (run_id, home_team, away_team, provider, home_rating, away_rating,
			                   model_spread_home, market_spread_home, edge_points, cover_prob,
			                   tier, side, pick_team)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`

		for i := range run.Picks {
			p := &run.Picks[i]
			_, err := tx.Exec(ctx, pickQuery,
				run.ID, p.HomeTeam, p.AwayTeam, p.Provider, p.HomeRating, p.AwayRating,
				p.ModelSpreadHome, p.MarketSpreadHome, p.EdgePoints, p.CoverProb,
				p.Tier, p.Side, p.PickTeam,
			)
			if err != nil {
				return fmt.Errorf("failed to create pick for %s: %w", p.Matchup(), err)
			}
		}

		return nil
	})
}

// GetByID retrieves a run with its picks
func (r *PostgresPickRunRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PickRun, error) {
	query := `
		SELECT id, season, week, season_type, home_field, std_dev, provider, created_at
		FROM pick_runs WHERE id = $1
	`

	run := &models.PickRun{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&run.ID, &run.Season, &run.Week, &run.SeasonType,
		&run.HomeField, &run.StdDev, &run.Provider, &run.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pick run: %w", err)
	}

	picks, err := r.picksForRun(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Picks = picks

	return run, nil
}

// GetLatestForWeek retrieves the most recent run for a season week
func (r *PostgresPickRunRepository) GetLatestForWeek(ctx context.Context, season, week int, seasonType string) (*models.PickRun, error) {
	query := `
		SELECT id, season, week, season_type, home_field, std_dev, provider, created_at
		FROM pick_runs
		WHERE season = $1 AND week = $2 AND season_type = $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	run := &models.PickRun{}
	err := r.db.GetPool().QueryRow(ctx, query, season, week, seasonType).Scan(
		&run.ID, &run.Season, &run.Week, &run.SeasonType,
		&run.HomeField, &run.StdDev, &run.Provider, &run.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest pick run: %w", err)
	}

	picks, err := r.picksForRun(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Picks = picks

	return run, nil
}

// ListForSeason retrieves run headers for a season, newest first
func (r *PostgresPickRunRepository) ListForSeason(ctx context.Context, season int) ([]*models.PickRun, error) {
	query := `
		SELECT id, season, week, season_type, home_field, std_dev, provider, created_at
		FROM pick_runs
		WHERE season = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query pick runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.PickRun
	for rows.Next() {
		run := &models.PickRun{}
		err := rows.Scan(
			&run.ID, &run.Season, &run.Week, &run.SeasonType,
			&run.HomeField, &run.StdDev, &run.Provider, &run.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pick run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (r *PostgresPickRunRepository) picksForRun(ctx context.Context, runID uuid.UUID) ([]models.Pick, error) {
	query := `
		SELECT home_team, away_team, provider, home_rating, away_rating,
		       model_spread_home, market_spread_home, edge_points, cover_prob,
		       tier, side, pick_team
		FROM picks
		WHERE run_id = $1
		ORDER BY abs(edge_points) DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query picks: %w", err)
	}
	defer rows.Close()

	var picks []models.Pick
	for rows.Next() {
		var p models.Pick
		err := rows.Scan(
			&p.HomeTeam, &p.AwayTeam, &p.Provider, &p.HomeRating, &p.AwayRating,
			&p.ModelSpreadHome, &p.MarketSpreadHome, &p.EdgePoints, &p.CoverProb,
			&p.Tier, &p.Side, &p.PickTeam,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pick: %w", err)
		}
		picks = append(picks, p)
	}

	return picks, rows.Err()
}
