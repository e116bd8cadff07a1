// Package repository implements persistence for assessments and scoring runs.
// Profiles, responses and computed run artifacts are stored as JSONB so the
// engine's types remain the single source of truth for their shape.
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

// ErrNotFound is returned when the requested row does not exist
var ErrNotFound = errors.New("not found")

// AssessmentRepository handles assessment persistence
type AssessmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(pool *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{pool: pool}
}

// Create inserts a new assessment
func (r *AssessmentRepository) Create(ctx context.Context, a *models.Assessment) (*models.Assessment, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	profile, err := json.Marshal(a.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	responses, err := json.Marshal(a.Responses)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal responses: %w", err)
	}

	query := `
		INSERT INTO assessments (id, site_name, facility_type, profile, responses, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.pool.Exec(ctx, query,
		a.ID, a.SiteName, string(a.Profile.FacilityType), profile, responses, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}

	return a, nil
}

// GetByID retrieves an assessment by ID
func (r *AssessmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Assessment, error) {
	query := `
		SELECT id, site_name, profile, responses, created_at, updated_at
		FROM assessments
		WHERE id = $1`

	return scanAssessment(r.pool.QueryRow(ctx, query, id))
}

// UpdateResponses replaces the stored response set. The next scoring run
// picks up the new answers; earlier runs are left untouched.
func (r *AssessmentRepository) UpdateResponses(ctx context.Context, id uuid.UUID, responses models.ResponseSet) error {
	data, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("failed to marshal responses: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE assessments SET responses = $2, updated_at = $3 WHERE id = $1`,
		id, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update responses: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns assessments ordered newest first
func (r *AssessmentRepository) List(ctx context.Context, facilityType models.FacilityType, limit, offset int) ([]*models.Assessment, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, site_name, profile, responses, created_at, updated_at
		FROM assessments
		WHERE ($1 = '' OR facility_type = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, string(facilityType), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var assessments []*models.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}
	return assessments, rows.Err()
}

// Delete removes an assessment and, via cascade, its scoring runs
func (r *AssessmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assessments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assessment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAssessment(row pgx.Row) (*models.Assessment, error) {
	var (
		a         models.Assessment
		profile   []byte
		responses []byte
	)

	err := row.Scan(&a.ID, &a.SiteName, &profile, &responses, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan assessment: %w", err)
	}

	if err := json.Unmarshal(profile, &a.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if err := json.Unmarshal(responses, &a.Responses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal responses: %w", err)
	}
	return &a, nil
}
