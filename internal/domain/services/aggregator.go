package services

import (
	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

// Aggregator rolls a scoring run up into the facility-level posture summary:
// a 0-100 checklist score with letter grade, per-category percentages and
// bounded findings/strengths lists.
type Aggregator struct {
	registry     *catalog.Registry
	norm         *Normalizer
	maxFindings  int
	maxStrengths int
	log          *logger.Logger
}

// NewAggregator creates a posture aggregator bound to a validated registry
func NewAggregator(registry *catalog.Registry, norm *Normalizer, cfg config.EngineConfig, log *logger.Logger) *Aggregator {
	return &Aggregator{
		registry:     registry,
		norm:         norm,
		maxFindings:  cfg.MaxFindings,
		maxStrengths: cfg.MaxStrengths,
		log:          log.WithComponent("aggregator"),
	}
}

// Summarize evaluates the posture checklist against the responses and counts
// scenario risk levels. Findings and strengths keep checklist evaluation
// order, not severity order, so consecutive runs over unchanged responses
// compare byte-for-byte.
func (a *Aggregator) Summarize(scenarios []models.RiskScenario, responses models.ResponseSet) models.SecurityPostureSummary {
	perCategory := make(map[string]models.CategoryScore)
	var findings, strengths []string
	satisfied, total := 0, 0

	for _, item := range a.registry.Checklist() {
		total++
		score := perCategory[item.Category]
		score.Total++

		if a.norm.Evaluate(responses, item.Predicate) {
			satisfied++
			score.Satisfied++
			if len(strengths) < a.maxStrengths {
				strengths = append(strengths, item.Strength)
			}
		} else if len(findings) < a.maxFindings {
			findings = append(findings, item.Finding)
		}

		perCategory[item.Category] = score
	}

	for category, score := range perCategory {
		if score.Total > 0 {
			score.Pct = float64(score.Satisfied) / float64(score.Total) * 100
		}
		perCategory[category] = score
	}

	overall := 0.0
	if total > 0 {
		overall = float64(satisfied) / float64(total) * 100
	}

	levelCounts := make(map[models.RiskLevel]int)
	for _, sc := range scenarios {
		levelCounts[sc.RiskLevel]++
	}

	return models.SecurityPostureSummary{
		OverallScore:      overall,
		LetterGrade:       models.GradeFor(overall),
		PerCategoryScores: perCategory,
		TopFindings:       findings,
		TopStrengths:      strengths,
		RiskLevelCounts:   levelCounts,
	}
}
