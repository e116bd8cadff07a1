package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

func newTestRecommender(t *testing.T) *Recommender {
	t.Helper()
	log := logger.NewDefault()
	return NewRecommender(defaultRegistry(t), NewNormalizer(log), config.DefaultEngineConfig(), log)
}

func retailProfile() models.FacilityProfile {
	return models.FacilityProfile{
		FacilityType:    models.FacilityRetail,
		SizeBucket:      models.SizeMedium,
		Headcount:       40,
		AnnualRevenue:   8_000_000,
		CurrentLossRate: 0.02,
	}
}

func scenarioAt(threatID string, level models.RiskLevel) models.RiskScenario {
	return models.RiskScenario{ThreatID: threatID, RiskLevel: level}
}

func recommendationIDs(recs []models.ControlRecommendation) []string {
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ControlID)
	}
	return ids
}

func TestRecommendRequiresApplicabilityFlag(t *testing.T) {
	r := newTestRecommender(t)
	scenarios := []models.RiskScenario{
		scenarioAt("organized-retail-crime", models.RiskCritical),
		scenarioAt("shoplifting", models.RiskHigh),
	}

	// merchandise protection requires the high-value-merchandise flag; without
	// it the control is never recommended regardless of scenario severity
	withoutFlag := r.Recommend(models.ResponseSet{}, retailProfile(), scenarios)
	assert.NotContains(t, recommendationIDs(withoutFlag), "merchandise-protection")

	profile := retailProfile()
	profile.HighValueMerchandise = true
	withFlag := r.Recommend(models.ResponseSet{}, profile, scenarios)
	assert.Contains(t, recommendationIDs(withFlag), "merchandise-protection")
}

func TestRecommendRespectsFormatGating(t *testing.T) {
	r := newTestRecommender(t)
	profile := models.FacilityProfile{
		FacilityType:    models.FacilityOffice,
		SizeBucket:      models.SizeMedium,
		AnnualRevenue:   20_000_000,
		CurrentLossRate: 0.01,
	}
	scenarios := []models.RiskScenario{scenarioAt("unauthorized-access", models.RiskCritical)}

	ids := recommendationIDs(r.Recommend(models.ResponseSet{}, profile, scenarios))

	assert.Contains(t, ids, "electronic-access-control")
	// datacenter-only control, even though it mitigates the same threat
	assert.NotContains(t, ids, "mantrap-portal")
}

func TestRecommendExcludesAlreadyImplemented(t *testing.T) {
	r := newTestRecommender(t)
	scenarios := []models.RiskScenario{scenarioAt("burglary", models.RiskHigh)}

	implemented := r.Recommend(models.ResponseSet{
		"intrusion.alarm_system": "yes",
	}, retailProfile(), scenarios)
	assert.NotContains(t, recommendationIDs(implemented), "intrusion-alarm")

	// an explicit no is a gap, not an implementation signal
	missing := r.Recommend(models.ResponseSet{
		"intrusion.alarm_system": "no",
	}, retailProfile(), scenarios)
	assert.Contains(t, recommendationIDs(missing), "intrusion-alarm")
}

func TestRecommendDropsControlsAddressingNoElevatedThreat(t *testing.T) {
	r := newTestRecommender(t)

	lowOnly := []models.RiskScenario{
		scenarioAt("shoplifting", models.RiskLow),
		scenarioAt("burglary", models.RiskMedium),
	}
	assert.Empty(t, r.Recommend(models.ResponseSet{}, retailProfile(), lowOnly))
}

func TestRecommendPriorityTiers(t *testing.T) {
	r := newTestRecommender(t)

	// critical threat plus a healthy loss rate gives short paybacks
	profile := retailProfile()
	profile.AnnualRevenue = 50_000_000
	profile.CurrentLossRate = 0.05
	scenarios := []models.RiskScenario{scenarioAt("burglary", models.RiskCritical)}

	recs := r.Recommend(models.ResponseSet{}, profile, scenarios)
	require.NotEmpty(t, recs)

	byID := make(map[string]models.ControlRecommendation, len(recs))
	for _, rec := range recs {
		byID[rec.ControlID] = rec
	}

	alarm, ok := byID["intrusion-alarm"]
	require.True(t, ok)
	assert.Less(t, alarm.ROI.PaybackMonths, 12)
	assert.Equal(t, models.PriorityCritical, alarm.Priority)
	assert.Equal(t, []string{"burglary"}, alarm.ThreatsAddressed)
	assert.Contains(t, alarm.Rationale, "burglary")
}

func TestRecommendOrderIsDeterministic(t *testing.T) {
	r := newTestRecommender(t)
	profile := retailProfile()
	profile.HighValueMerchandise = true
	scenarios := []models.RiskScenario{
		scenarioAt("shoplifting", models.RiskCritical),
		scenarioAt("organized-retail-crime", models.RiskHigh),
		scenarioAt("robbery", models.RiskHigh),
		scenarioAt("burglary", models.RiskHigh),
		scenarioAt("employee-theft", models.RiskMedium),
	}

	first := r.Recommend(models.ResponseSet{}, profile, scenarios)
	second := r.Recommend(models.ResponseSet{}, profile, scenarios)
	require.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		if prev.Priority.Rank() != cur.Priority.Rank() {
			assert.Greater(t, prev.Priority.Rank(), cur.Priority.Rank())
			continue
		}
		assert.LessOrEqual(t, prev.ROI.PaybackMonths, cur.ROI.PaybackMonths)
	}
}

func TestRecommendNeverPaysBackStillListed(t *testing.T) {
	r := newTestRecommender(t)

	// no revenue on file: every ROI carries the sentinel, but controls
	// against elevated threats are still proposed
	profile := retailProfile()
	profile.AnnualRevenue = 0
	scenarios := []models.RiskScenario{scenarioAt("robbery", models.RiskCritical)}

	recs := r.Recommend(models.ResponseSet{}, profile, scenarios)
	require.NotEmpty(t, recs)
	for _, rec := range recs {
		assert.True(t, rec.ROI.NeverPaysBack())
		assert.Contains(t, rec.Rationale, "do not offset")
		assert.NotEqual(t, models.PriorityCritical, rec.Priority)
	}
}
