package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(defaultRegistry(t), config.DefaultEngineConfig(), logger.NewDefault())
}

func retailAssessment() models.Assessment {
	return models.Assessment{
		ID:       uuid.New(),
		SiteName: "Downtown Flagship",
		Profile: models.FacilityProfile{
			FacilityType:         models.FacilityRetail,
			SizeBucket:           models.SizeMedium,
			Headcount:            35,
			AnnualRevenue:        12_000_000,
			CurrentLossRate:      0.02,
			HighValueMerchandise: true,
			HighVisitorVolume:    true,
		},
		Responses: models.ResponseSet{
			"retail.eas_system":                "no",
			"retail.high_shrink_items_secured": "no",
			"retail.cash_management_policy":    "no",
			"surveillance.cctv_installed":      "yes",
			"intrusion.alarm_system":           "yes",
			"incidents.shoplifting":            "yes",
			"incidents.robbery":                "no",
		},
	}
}

func TestEngineRunProducesCompleteRun(t *testing.T) {
	e := newTestEngine(t)
	assessment := retailAssessment()

	run, err := e.Run(assessment)
	require.NoError(t, err)

	assert.Equal(t, assessment.ID, run.AssessmentID)
	assert.NotEqual(t, uuid.Nil, run.ID)
	assert.False(t, run.CreatedAt.IsZero())
	assert.Empty(t, run.FailedThreats)
	assert.NotEmpty(t, run.Scenarios)
	assert.NotNil(t, run.Posture.PerCategoryScores)
}

func TestEngineRunAppliesProfileOverlay(t *testing.T) {
	e := newTestEngine(t)
	assessment := retailAssessment()
	// keep incident history out so likelihood is not already clamped
	assessment.Responses = assessment.Responses.Clone()
	assessment.Responses["incidents.shoplifting"] = "no"

	boosted, err := e.Run(assessment)
	require.NoError(t, err)

	assessment.Profile.HighValueMerchandise = false
	assessment.Profile.HighVisitorVolume = false
	baseline, err := e.Run(assessment)
	require.NoError(t, err)

	find := func(run *models.ScoringRun, threatID string) models.RiskScenario {
		for _, sc := range run.Scenarios {
			if sc.ThreatID == threatID {
				return sc
			}
		}
		t.Fatalf("scenario %s not found", threatID)
		return models.RiskScenario{}
	}

	// exposure flags feed threat likelihood through the profile overlay
	assert.Greater(t,
		find(boosted, "organized-retail-crime").Scores.Threat,
		find(baseline, "organized-retail-crime").Scores.Threat)
}

func TestEngineRunDoesNotMutateAssessmentResponses(t *testing.T) {
	e := newTestEngine(t)
	assessment := retailAssessment()
	before := len(assessment.Responses)

	_, err := e.Run(assessment)
	require.NoError(t, err)

	// overlay keys are merged into a clone, never into the stored responses
	assert.Len(t, assessment.Responses, before)
	assert.NotContains(t, assessment.Responses, "profile.high_value_merchandise")
}

func TestEngineRunsSupersedeNotMerge(t *testing.T) {
	e := newTestEngine(t)
	assessment := retailAssessment()

	first, err := e.Run(assessment)
	require.NoError(t, err)

	// closing the EAS gap changes the next run; the runs share nothing
	assessment.Responses = assessment.Responses.Clone()
	assessment.Responses["retail.eas_system"] = "yes"
	second, err := e.Run(assessment)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.AssessmentID, second.AssessmentID)
	assert.NotEqual(t, first.Scenarios, second.Scenarios)
}

func TestEngineRunUnknownFacilityFails(t *testing.T) {
	e := newTestEngine(t)
	assessment := retailAssessment()
	assessment.Profile.FacilityType = "houseboat"

	_, err := e.Run(assessment)
	var unknown *UnknownFacilityError
	require.ErrorAs(t, err, &unknown)
}
