package models

// Priority tiers for control recommendations
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank orders priorities for sorting; higher is more urgent
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

// PaybackNeverMonths is the sentinel payback period for controls whose savings
// never offset their cost. It is deliberately a plain large integer rather
// than MaxInt so it survives JSON round trips in every consumer.
const PaybackNeverMonths = 9999

// ROI holds the cost/benefit figures for one recommended control
type ROI struct {
	ImplementationCost    float64 `json:"implementation_cost"`
	AnnualMaintenanceCost float64 `json:"annual_maintenance_cost"`
	EstimatedAnnualSaving float64 `json:"estimated_annual_saving"`
	PaybackMonths         int     `json:"payback_months"` // PaybackNeverMonths when it never pays back
	FiveYearROIPct        float64 `json:"five_year_roi_pct"`
	Confidence            string  `json:"confidence"` // from the control's effectiveness evidence
}

// NeverPaysBack reports whether the payback sentinel is set
func (r ROI) NeverPaysBack() bool {
	return r.PaybackMonths >= PaybackNeverMonths
}

// ControlRecommendation is one prioritized mitigation proposal. Derived data:
// it only exists in the context of the scoring run that produced it.
type ControlRecommendation struct {
	ControlID        string   `json:"control_id"`
	ControlName      string   `json:"control_name"`
	Category         string   `json:"category"`
	Priority         Priority `json:"priority"`
	Rationale        string   `json:"rationale"`
	ROI              ROI      `json:"roi"`
	ThreatsAddressed []string `json:"threats_addressed"`
}
