package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

func defaultRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.Default()
	require.NoError(t, err)
	return reg
}

func newTestScorer(t *testing.T, reg *catalog.Registry) *Scorer {
	t.Helper()
	log := logger.NewDefault()
	return NewScorer(reg, NewNormalizer(log), config.DefaultEngineConfig(), log)
}

// worstCaseOfficeBurglary answers every burglary gap question in the
// worst-case direction
func worstCaseOfficeBurglary() models.ResponseSet {
	return models.ResponseSet{
		"access.electronic_badge_system":        "no",
		"access.after_hours_restricted":         "no",
		"access.key_inventory_current":          "no",
		"surveillance.cctv_installed":           "no",
		"surveillance.recording_retention_days": 7.0,
		"intrusion.alarm_system":                "no",
		"intrusion.alarm_monitored":             "no",
		"perimeter.lighting_adequate":           "no",
	}
}

func TestScoreNoEvidenceCollapsesToBaselines(t *testing.T) {
	s := newTestScorer(t, defaultRegistry(t))

	scores, err := s.Score(models.FacilityOffice, "burglary", models.ResponseSet{})
	require.NoError(t, err)

	// office vulnerability baseline and the threat's catalog baselines
	assert.Equal(t, 3, scores.Vulnerability)
	assert.Equal(t, 3, scores.Threat)
	assert.Equal(t, 3, scores.Impact)
	assert.Equal(t, 27, scores.InherentRisk())
}

func TestScoreWorstCaseClampsVulnerability(t *testing.T) {
	s := newTestScorer(t, defaultRegistry(t))

	scores, err := s.Score(models.FacilityOffice, "burglary", worstCaseOfficeBurglary())
	require.NoError(t, err)

	assert.Equal(t, models.ComponentMax, scores.Vulnerability)
}

func TestScoreThreatAdjustments(t *testing.T) {
	s := newTestScorer(t, defaultRegistry(t))

	withHistory, err := s.Score(models.FacilityOffice, "burglary", models.ResponseSet{
		"incidents.burglary": "yes",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, withHistory.Threat)

	// 24x7 occupancy and round-the-clock guards each lower burglary exposure
	lowered, err := s.Score(models.FacilityOffice, "burglary", models.ResponseSet{
		"incidents.burglary":       "yes",
		"profile.always_occupied":  true,
		"personnel.guard_coverage": "24/7 contract guards",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, lowered.Threat)
}

func TestScoreLifeSafetyImpactIsCategorical(t *testing.T) {
	// fixture threat marked life-safety but with a low catalog impact
	fixture := &catalog.FacilityCatalog{
		FacilityType:          models.FacilityOffice,
		VulnerabilityBaseline: 3,
		StabilityDivisor:      3,
		Threats: []catalog.ThreatDefinition{
			{ID: "assailant", Name: "Assailant", Category: "violence",
				BaselineLikelihood: 1, BaselineImpact: 2, LifeSafety: true,
				Description: "fixture"},
		},
	}
	reg, err := catalog.NewRegistry([]*catalog.FacilityCatalog{fixture}, nil, nil)
	require.NoError(t, err)

	s := newTestScorer(t, reg)
	scores, err := s.Score(models.FacilityOffice, "assailant", models.ResponseSet{})
	require.NoError(t, err)

	assert.Equal(t, models.ComponentMax, scores.Impact)
}

func TestScoreUnknownThreatIsConfigurationError(t *testing.T) {
	s := newTestScorer(t, defaultRegistry(t))

	_, err := s.Score(models.FacilityOffice, "meteor-strike", models.ResponseSet{})
	var unknownThreat *UnknownThreatError
	require.ErrorAs(t, err, &unknownThreat)
	assert.Equal(t, "meteor-strike", unknownThreat.ThreatID)

	_, err = s.Score(models.FacilityType("houseboat"), "burglary", models.ResponseSet{})
	var unknownFacility *UnknownFacilityError
	require.ErrorAs(t, err, &unknownFacility)
}

func TestScoreAllIsIdempotent(t *testing.T) {
	s := newTestScorer(t, defaultRegistry(t))
	responses := models.ResponseSet{
		"retail.eas_system":     "no",
		"incidents.shoplifting": "yes",
		"retail.cash_handling":  "large amounts on site overnight",
	}

	first, failedFirst, err := s.ScoreAll(models.FacilityRetail, responses)
	require.NoError(t, err)
	second, failedSecond, err := s.ScoreAll(models.FacilityRetail, responses)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, failedFirst, failedSecond)
	assert.Empty(t, failedFirst)
}

func TestScoreAllFollowsCatalogOrder(t *testing.T) {
	reg := defaultRegistry(t)
	s := newTestScorer(t, reg)

	scenarios, failed, err := s.ScoreAll(models.FacilityOffice, models.ResponseSet{})
	require.NoError(t, err)
	require.Empty(t, failed)

	cat, ok := reg.Facility(models.FacilityOffice)
	require.True(t, ok)
	require.Len(t, scenarios, len(cat.Threats))
	for i, threat := range cat.Threats {
		assert.Equal(t, threat.ID, scenarios[i].ThreatID)
	}
}

func TestScoreAllComponentsAlwaysInBounds(t *testing.T) {
	s := newTestScorer(t, defaultRegistry(t))

	// deliberately messy answer shapes
	responses := models.ResponseSet{
		"access.electronic_badge_system":        12.0,
		"surveillance.cctv_installed":           []any{"what"},
		"surveillance.recording_retention_days": "forever",
		"incidents.theft":                       "YES",
		"retail.staff_per_shift":                "1",
		"profile.headcount":                     10_000.0,
		"profile.annual_revenue":                9_000_000_000.0,
		"profile.sensitive_data":                true,
		"profile.regulated_industry":            true,
		"dc.tenant_profile":                     nil,
	}

	for _, facility := range models.AllFacilityTypes() {
		scenarios, failed, err := s.ScoreAll(facility, responses)
		require.NoError(t, err)
		assert.Empty(t, failed)

		for _, sc := range scenarios {
			assert.GreaterOrEqual(t, sc.Scores.Threat, models.ComponentMin)
			assert.LessOrEqual(t, sc.Scores.Threat, models.ComponentMax)
			assert.GreaterOrEqual(t, sc.Scores.Vulnerability, models.ComponentMin)
			assert.LessOrEqual(t, sc.Scores.Vulnerability, models.ComponentMax)
			assert.GreaterOrEqual(t, sc.Scores.Impact, models.ComponentMin)
			assert.LessOrEqual(t, sc.Scores.Impact, models.ComponentMax)
			assert.Equal(t, sc.Scores.InherentRisk(), sc.InherentRisk)
		}
	}
}

func TestRemovingControlSignalNeverLowersVulnerability(t *testing.T) {
	s := newTestScorer(t, defaultRegistry(t))

	protected := models.ResponseSet{
		"intrusion.alarm_system":      "yes",
		"surveillance.cctv_installed": "no",
	}
	exposed := protected.Clone()
	exposed["intrusion.alarm_system"] = "no"

	before, err := s.Score(models.FacilityOffice, "burglary", protected)
	require.NoError(t, err)
	after, err := s.Score(models.FacilityOffice, "burglary", exposed)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, after.Vulnerability, before.Vulnerability)
}

func TestRiskLevelIsMonotonicInInherentRisk(t *testing.T) {
	s := newTestScorer(t, defaultRegistry(t))

	prev := models.RiskLow
	for inherent := 1; inherent <= models.InherentRiskMax; inherent++ {
		pct := float64(inherent) / float64(models.InherentRiskMax) * 100
		level := s.riskLevel(pct)
		assert.GreaterOrEqual(t, level.Rank(), prev.Rank(), "inherent %d", inherent)
		prev = level
	}
	assert.Equal(t, models.RiskCritical, prev)
}

func TestRiskLevelBandEdges(t *testing.T) {
	s := newTestScorer(t, defaultRegistry(t))

	assert.Equal(t, models.RiskLow, s.riskLevel(24.9))
	assert.Equal(t, models.RiskMedium, s.riskLevel(25))
	assert.Equal(t, models.RiskHigh, s.riskLevel(40))
	assert.Equal(t, models.RiskCritical, s.riskLevel(60))
}

func TestContributingFactorsReflectAnsweredGaps(t *testing.T) {
	s := newTestScorer(t, defaultRegistry(t))

	factors, err := s.ContributingFactors(models.FacilityOffice, "burglary", models.ResponseSet{
		"access.electronic_badge_system": "no",
		"intrusion.alarm_system":         "no",
	})
	require.NoError(t, err)
	require.Len(t, factors, 2)
	assert.Contains(t, factors[0], "electronic access control")
	assert.Contains(t, factors[1], "intrusion alarm")

	none, err := s.ContributingFactors(models.FacilityOffice, "burglary", models.ResponseSet{})
	require.NoError(t, err)
	assert.Empty(t, none)
}
