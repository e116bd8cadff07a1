package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/domain/models"
)

func roiFixtureControl() catalog.ControlDefinition {
	return catalog.ControlDefinition{
		ID: "fixture-control",
		Costs: map[models.SizeBucket]catalog.CostRange{
			models.SizeSmall:  {Min: 10_000, Max: 20_000},
			models.SizeMedium: {Min: 30_000, Max: 50_000},
			models.SizeLarge:  {Min: 80_000, Max: 120_000},
		},
		MaintenanceFraction: 0.10,
		Effectiveness: catalog.Effectiveness{
			RiskReduction: 0.25,
			Confidence:    catalog.ConfidenceHigh,
		},
	}
}

func TestComputeROI(t *testing.T) {
	control := roiFixtureControl()

	// current annual loss 2,000,000 * 0.05 = 100,000; savings 25,000
	roi := ComputeROI(control, models.SizeSmall, 0.05, 2_000_000)

	assert.Equal(t, 15_000.0, roi.ImplementationCost)
	assert.Equal(t, 1_500.0, roi.AnnualMaintenanceCost)
	assert.Equal(t, 25_000.0, roi.EstimatedAnnualSaving)

	// ceil(15000 / 23500 * 12) = 8
	assert.Equal(t, 8, roi.PaybackMonths)
	assert.False(t, roi.NeverPaysBack())

	// (125000 - 22500) / 22500 * 100
	assert.InDelta(t, 455.56, roi.FiveYearROIPct, 0.01)
	assert.Equal(t, "high", roi.Confidence)
}

func TestComputeROIUsesSizeBucketMidpoint(t *testing.T) {
	control := roiFixtureControl()

	small := ComputeROI(control, models.SizeSmall, 0.05, 2_000_000)
	large := ComputeROI(control, models.SizeLarge, 0.05, 2_000_000)

	assert.Equal(t, 15_000.0, small.ImplementationCost)
	assert.Equal(t, 100_000.0, large.ImplementationCost)
	assert.Greater(t, large.PaybackMonths, small.PaybackMonths)
}

func TestComputeROINeverPaysBackSentinel(t *testing.T) {
	control := roiFixtureControl()

	tests := []struct {
		name     string
		lossRate float64
		revenue  float64
	}{
		{"zero revenue", 0.05, 0},
		{"zero loss rate", 0, 2_000_000},
		{"savings below maintenance", 0.0001, 2_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roi := ComputeROI(control, models.SizeSmall, tt.lossRate, tt.revenue)

			assert.Equal(t, models.PaybackNeverMonths, roi.PaybackMonths)
			assert.True(t, roi.NeverPaysBack())
			assert.GreaterOrEqual(t, roi.PaybackMonths, 0)
		})
	}
}

func TestComputeROIDistantPaybackCapsAtSentinel(t *testing.T) {
	control := roiFixtureControl()
	control.MaintenanceFraction = 0

	// net savings of 2/year against 15,000 cost: pays back in ~90,000 months
	roi := ComputeROI(control, models.SizeSmall, 0.000004, 2_000_000)

	assert.Equal(t, models.PaybackNeverMonths, roi.PaybackMonths)
}
