package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	Assessments *AssessmentRepository
	Runs        *RunRepository
}

// New creates all repositories backed by the given pool
func New(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Assessments: NewAssessmentRepository(pool),
		Runs:        NewRunRepository(pool),
	}
}
