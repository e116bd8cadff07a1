package models

import (
	"time"

	"github.com/google/uuid"
)

// Assessment is one captured interview for one facility. The engine reads the
// response set and profile; it never writes back to them.
type Assessment struct {
	ID        uuid.UUID       `json:"id"`
	SiteName  string          `json:"site_name"`
	Profile   FacilityProfile `json:"profile"`
	Responses ResponseSet     `json:"responses"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ScoringRun is the persisted artifact of one full pipeline execution.
// Runs are append-only; the newest run for an assessment supersedes all
// earlier ones (latest write wins, decided by the persistence layer).
type ScoringRun struct {
	ID              uuid.UUID               `json:"id"`
	AssessmentID    uuid.UUID               `json:"assessment_id"`
	Scenarios       []RiskScenario          `json:"scenarios"`
	Recommendations []ControlRecommendation `json:"recommendations"`
	Posture         SecurityPostureSummary  `json:"posture"`
	FailedThreats   []string                `json:"failed_threats,omitempty"` // threat ids isolated during scoreAll
	CreatedAt       time.Time               `json:"created_at"`
}
