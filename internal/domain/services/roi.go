package services

import (
	"math"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/domain/models"
)

// ComputeROI derives the cost/benefit figures for one control at one site.
// Savings are modeled as a fraction of the site's current annual loss
// (annualRevenue x currentLossRate) avoided by the control.
//
// Payback is capped by the PaybackNeverMonths sentinel: when net annual
// savings are zero or negative the control never pays back, and the sentinel
// is returned instead of a division by zero, a negative month count or an
// overflow.
func ComputeROI(control catalog.ControlDefinition, size models.SizeBucket, currentLossRate, annualRevenue float64) models.ROI {
	implementation := control.Costs[size].Midpoint()
	maintenance := implementation * control.MaintenanceFraction

	currentAnnualLoss := annualRevenue * currentLossRate
	saving := currentAnnualLoss * control.Effectiveness.RiskReduction

	payback := models.PaybackNeverMonths
	if net := saving - maintenance; net > 0 {
		months := int(math.Ceil(implementation / net * 12))
		if months < models.PaybackNeverMonths {
			payback = months
		}
	}

	fiveYearCost := implementation + maintenance*5
	fiveYearROI := 0.0
	if fiveYearCost > 0 {
		fiveYearROI = (saving*5 - fiveYearCost) / fiveYearCost * 100
	}

	return models.ROI{
		ImplementationCost:    implementation,
		AnnualMaintenanceCost: maintenance,
		EstimatedAnnualSaving: saving,
		PaybackMonths:         payback,
		FiveYearROIPct:        fiveYearROI,
		Confidence:            string(control.Effectiveness.Confidence),
	}
}
