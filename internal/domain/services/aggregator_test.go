package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	log := logger.NewDefault()
	return NewAggregator(defaultRegistry(t), NewNormalizer(log), config.DefaultEngineConfig(), log)
}

// fullySatisfiedResponses answers every checklist item in the satisfied direction
func fullySatisfiedResponses() models.ResponseSet {
	return models.ResponseSet{
		"access.electronic_badge_system":        "yes",
		"access.visitor_management":             "yes",
		"access.after_hours_restricted":         "yes",
		"access.key_inventory_current":          "yes",
		"surveillance.cctv_installed":           "yes",
		"surveillance.recording_retention_days": 45.0,
		"intrusion.alarm_system":                "yes",
		"emergency.duress_alarms":               "yes",
		"emergency.action_plan":                 "yes",
		"emergency.drills_conducted":            "yes",
		"emergency.lockdown_capability":         "yes",
		"personnel.background_checks":           "yes",
		"personnel.termination_procedures":      "yes",
		"personnel.security_training":           "yes",
		"infosec.clean_desk_policy":             "yes",
		"infosec.document_shredding":            "yes",
		"perimeter.lighting_adequate":           "yes",
		"perimeter.blind_spots_reported":        "no",
	}
}

func TestSummarizeFullySatisfied(t *testing.T) {
	a := newTestAggregator(t)

	summary := a.Summarize(nil, fullySatisfiedResponses())

	assert.Equal(t, 100.0, summary.OverallScore)
	assert.Equal(t, models.GradeA, summary.LetterGrade)
	assert.Empty(t, summary.TopFindings)

	for category, score := range summary.PerCategoryScores {
		assert.Equal(t, score.Total, score.Satisfied, category)
		assert.Equal(t, 100.0, score.Pct, category)
	}
}

func TestSummarizeNoEvidenceScoresZero(t *testing.T) {
	a := newTestAggregator(t)

	summary := a.Summarize(nil, models.ResponseSet{})

	assert.Equal(t, 0.0, summary.OverallScore)
	assert.Equal(t, models.GradeF, summary.LetterGrade)
	assert.Empty(t, summary.TopStrengths)
}

func TestSummarizeBoundsFindingsAndStrengths(t *testing.T) {
	a := newTestAggregator(t)
	cfg := config.DefaultEngineConfig()

	allGaps := a.Summarize(nil, models.ResponseSet{})
	assert.Len(t, allGaps.TopFindings, cfg.MaxFindings)

	allGood := a.Summarize(nil, fullySatisfiedResponses())
	assert.Len(t, allGood.TopStrengths, cfg.MaxStrengths)
}

func TestSummarizeKeepsChecklistEvaluationOrder(t *testing.T) {
	a := newTestAggregator(t)
	reg := defaultRegistry(t)

	summary := a.Summarize(nil, models.ResponseSet{})

	checklist := reg.Checklist()
	require.GreaterOrEqual(t, len(checklist), len(summary.TopFindings))
	for i, finding := range summary.TopFindings {
		assert.Equal(t, checklist[i].Finding, finding)
	}
}

func TestSummarizePartialCredit(t *testing.T) {
	a := newTestAggregator(t)

	// access control fully covered, everything else unanswered
	summary := a.Summarize(nil, models.ResponseSet{
		"access.electronic_badge_system": "yes",
		"access.visitor_management":      "yes",
		"access.after_hours_restricted":  "yes",
		"access.key_inventory_current":   "yes",
	})

	access := summary.PerCategoryScores["access_control"]
	assert.Equal(t, 4, access.Satisfied)
	assert.Equal(t, 4, access.Total)
	assert.Equal(t, 100.0, access.Pct)

	surveillance := summary.PerCategoryScores["surveillance"]
	assert.Equal(t, 0, surveillance.Satisfied)

	assert.Greater(t, summary.OverallScore, 0.0)
	assert.Less(t, summary.OverallScore, 100.0)
}

func TestSummarizeCountsRiskLevels(t *testing.T) {
	a := newTestAggregator(t)

	scenarios := []models.RiskScenario{
		scenarioAt("burglary", models.RiskCritical),
		scenarioAt("robbery", models.RiskHigh),
		scenarioAt("vandalism", models.RiskHigh),
		scenarioAt("shoplifting", models.RiskLow),
	}

	summary := a.Summarize(scenarios, models.ResponseSet{})

	assert.Equal(t, 1, summary.RiskLevelCounts[models.RiskCritical])
	assert.Equal(t, 2, summary.RiskLevelCounts[models.RiskHigh])
	assert.Equal(t, 0, summary.RiskLevelCounts[models.RiskMedium])
	assert.Equal(t, 1, summary.RiskLevelCounts[models.RiskLow])
}

func TestGradeBands(t *testing.T) {
	assert.Equal(t, models.GradeA, models.GradeFor(90))
	assert.Equal(t, models.GradeB, models.GradeFor(80))
	assert.Equal(t, models.GradeC, models.GradeFor(70))
	assert.Equal(t, models.GradeD, models.GradeFor(60))
	assert.Equal(t, models.GradeF, models.GradeFor(59.9))
}
