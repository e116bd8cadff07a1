package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"siteguard-engine/internal/domain/models"
)

// RunRepository persists scoring runs. Runs are append-only: a new run is
// inserted alongside the old ones and the latest run for an assessment wins.
// Rapid consecutive regenerations therefore need no locking; readers always
// see whichever complete run committed last.
type RunRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository creates a new scoring run repository
func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

// Create inserts a completed scoring run
func (r *RunRepository) Create(ctx context.Context, run *models.ScoringRun) (*models.ScoringRun, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	scenarios, err := json.Marshal(run.Scenarios)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scenarios: %w", err)
	}
	recommendations, err := json.Marshal(run.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	posture, err := json.Marshal(run.Posture)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal posture: %w", err)
	}

	query := `
		INSERT INTO scoring_runs (id, assessment_id, scenarios, recommendations, posture, failed_threats, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.pool.Exec(ctx, query,
		run.ID, run.AssessmentID, scenarios, recommendations, posture, run.FailedThreats, run.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring run: %w", err)
	}

	return run, nil
}

// GetLatest returns the newest run for an assessment
func (r *RunRepository) GetLatest(ctx context.Context, assessmentID uuid.UUID) (*models.ScoringRun, error) {
	query := `
		SELECT id, assessment_id, scenarios, recommendations, posture, failed_threats, created_at
		FROM scoring_runs
		WHERE assessment_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	return scanRun(r.pool.QueryRow(ctx, query, assessmentID))
}

// GetByID retrieves one scoring run
func (r *RunRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ScoringRun, error) {
	query := `
		SELECT id, assessment_id, scenarios, recommendations, posture, failed_threats, created_at
		FROM scoring_runs
		WHERE id = $1`

	return scanRun(r.pool.QueryRow(ctx, query, id))
}

// ListByAssessment returns an assessment's run history, newest first
func (r *RunRepository) ListByAssessment(ctx context.Context, assessmentID uuid.UUID, limit int) ([]*models.ScoringRun, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, assessment_id, scenarios, recommendations, posture, failed_threats, created_at
		FROM scoring_runs
		WHERE assessment_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, assessmentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scoring runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ScoringRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// PruneOlderThan removes superseded runs past the retention window, always
// keeping the latest run per assessment
func (r *RunRepository) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM scoring_runs sr
		WHERE sr.created_at < $1
		  AND sr.id <> (
			SELECT id FROM scoring_runs
			WHERE assessment_id = sr.assessment_id
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		  )`

	tag, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune scoring runs: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanRun(row pgx.Row) (*models.ScoringRun, error) {
	var (
		run             models.ScoringRun
		scenarios       []byte
		recommendations []byte
		posture         []byte
	)

	err := row.Scan(&run.ID, &run.AssessmentID, &scenarios, &recommendations, &posture, &run.FailedThreats, &run.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan scoring run: %w", err)
	}

	if err := json.Unmarshal(scenarios, &run.Scenarios); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenarios: %w", err)
	}
	if err := json.Unmarshal(recommendations, &run.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendations: %w", err)
	}
	if err := json.Unmarshal(posture, &run.Posture); err != nil {
		return nil, fmt.Errorf("failed to unmarshal posture: %w", err)
	}
	return &run, nil
}
