package models

// Score bounds for the three ordinal risk components
const (
	ComponentMin = 1
	ComponentMax = 5

	// InherentRiskMax is ComponentMax cubed, the denominator for band percentages
	InherentRiskMax = ComponentMax * ComponentMax * ComponentMax
)

// RiskLevel is the discrete classification derived from inherent risk
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Rank orders risk levels for comparisons; higher is more severe
func (l RiskLevel) Rank() int {
	switch l {
	case RiskCritical:
		return 3
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

// ComponentScores holds the three ordinal components of one threat scenario
type ComponentScores struct {
	Threat        int `json:"threat"`        // T, likelihood
	Vulnerability int `json:"vulnerability"` // V
	Impact        int `json:"impact"`        // I
}

// InherentRisk is always the product of the three components
func (c ComponentScores) InherentRisk() int {
	return c.Threat * c.Vulnerability * c.Impact
}

// RiskScenario is the computed risk picture for one assessment x threat pair.
// A scenario is created fresh each scoring run; it is never merged with the
// output of an earlier run.
type RiskScenario struct {
	ThreatID            string          `json:"threat_id"`
	ThreatName          string          `json:"threat_name"`
	Category            string          `json:"category"`
	Scores              ComponentScores `json:"scores"`
	InherentRisk        int             `json:"inherent_risk"`         // T*V*I, [1,125]
	RiskPct             float64         `json:"risk_pct"`              // inherent/125*100
	RiskLevel           RiskLevel       `json:"risk_level"`
	Description         string          `json:"description"`
	ContributingFactors []string        `json:"contributing_factors"` // ordered gap statements
}
