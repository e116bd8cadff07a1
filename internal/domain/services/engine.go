package services

import (
	"time"

	"github.com/google/uuid"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

// Engine runs the full pipeline for one assessment: scoring, recommendation
// and posture aggregation, in that order. It holds no per-call state, so
// concurrent runs for different assessments need no coordination.
type Engine struct {
	scorer      *Scorer
	recommender *Recommender
	aggregator  *Aggregator
	log         *logger.Logger
}

// NewEngine wires the pipeline stages against one validated registry
func NewEngine(registry *catalog.Registry, cfg config.EngineConfig, log *logger.Logger) *Engine {
	norm := NewNormalizer(log)
	return &Engine{
		scorer:      NewScorer(registry, norm, cfg, log),
		recommender: NewRecommender(registry, norm, cfg, log),
		aggregator:  NewAggregator(registry, norm, cfg, log),
		log:         log.WithComponent("engine"),
	}
}

// Scorer exposes the scoring stage for callers that need single-threat access
func (e *Engine) Scorer() *Scorer {
	return e.scorer
}

// Run executes the pipeline and returns a fresh scoring run. The run is
// derived entirely from the assessment's responses and profile; it supersedes,
// never merges with, any earlier run.
func (e *Engine) Run(assessment models.Assessment) (*models.ScoringRun, error) {
	// The profile overlay lets rule tables reference exposure attributes
	// through the same predicate machinery as interview answers.
	responses := assessment.Responses.Clone()
	for k, v := range assessment.Profile.ResponseOverlay() {
		responses[k] = v
	}

	scenarios, failed, err := e.scorer.ScoreAll(assessment.Profile.FacilityType, responses)
	if err != nil {
		return nil, err
	}

	recommendations := e.recommender.Recommend(responses, assessment.Profile, scenarios)
	posture := e.aggregator.Summarize(scenarios, responses)

	run := &models.ScoringRun{
		ID:              uuid.New(),
		AssessmentID:    assessment.ID,
		Scenarios:       scenarios,
		Recommendations: recommendations,
		Posture:         posture,
		FailedThreats:   failed,
		CreatedAt:       time.Now().UTC(),
	}

	e.log.Info().
		Str("assessment_id", assessment.ID.String()).
		Str("facility_type", string(assessment.Profile.FacilityType)).
		Int("scenarios", len(scenarios)).
		Int("recommendations", len(recommendations)).
		Int("failed_threats", len(failed)).
		Float64("posture_score", posture.OverallScore).
		Msg("scoring run completed")

	return run, nil
}
