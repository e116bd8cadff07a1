package database

import (
	"context"
	"fmt"
)

// schema is applied idempotently at startup. The JSONB columns carry the
// engine's own types; only the columns used for filtering get dedicated
// indexes.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS assessments (
		id UUID PRIMARY KEY,
		site_name TEXT NOT NULL,
		facility_type TEXT NOT NULL,
		profile JSONB NOT NULL,
		responses JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessments_facility_type ON assessments (facility_type)`,
	`CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments (created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS scoring_runs (
		id UUID PRIMARY KEY,
		assessment_id UUID NOT NULL REFERENCES assessments (id) ON DELETE CASCADE,
		scenarios JSONB NOT NULL,
		recommendations JSONB NOT NULL,
		posture JSONB NOT NULL,
		failed_threats TEXT[],
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scoring_runs_assessment ON scoring_runs (assessment_id, created_at DESC)`,
}

// Migrate applies the schema statements in order
func (db *PostgresDB) Migrate(ctx context.Context) error {
	for i, stmt := range schema {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i, err)
		}
	}
	db.logger.Info().Int("statements", len(schema)).Msg("schema up to date")
	return nil
}
