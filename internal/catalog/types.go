// Package catalog defines the static configuration data the engine runs on:
// facility-type threat catalogs, declarative scoring rule tables, the shared
// control catalog and the posture checklist. Catalogs are validated once,
// frozen into a Registry and injected into every engine call; nothing in this
// package mutates after load.
package catalog

import (
	"siteguard-engine/internal/domain/models"
)

// PredicateKind selects how an answer value is tested
type PredicateKind string

const (
	// PredicateYes matches an affirmative answer ("yes", "true", true, "y")
	PredicateYes PredicateKind = "yes"
	// PredicateNo matches an explicit negative answer; an absent key is no evidence, not a no
	PredicateNo PredicateKind = "no"
	// PredicateContains matches a case-insensitive substring of a free-text answer
	PredicateContains PredicateKind = "contains"
	// PredicateAtMost matches a numeric answer at or below the threshold
	PredicateAtMost PredicateKind = "at_most"
	// PredicateAtLeast matches a numeric answer at or above the threshold
	PredicateAtLeast PredicateKind = "at_least"
	// PredicateAnyOf matches when a list answer contains any of the given values
	PredicateAnyOf PredicateKind = "any_of"
)

// Predicate is one boolean test against a single response key
type Predicate struct {
	Key       string        `json:"key"`
	Kind      PredicateKind `json:"kind"`
	Match     string        `json:"match,omitempty"`     // contains
	Threshold float64       `json:"threshold,omitempty"` // at_most / at_least
	Values    []string      `json:"values,omitempty"`    // any_of
}

// Constructors keep the rule tables readable.

func Yes(key string) Predicate { return Predicate{Key: key, Kind: PredicateYes} }
func No(key string) Predicate  { return Predicate{Key: key, Kind: PredicateNo} }

func Contains(key, match string) Predicate {
	return Predicate{Key: key, Kind: PredicateContains, Match: match}
}

func AtMost(key string, threshold float64) Predicate {
	return Predicate{Key: key, Kind: PredicateAtMost, Threshold: threshold}
}

func AtLeast(key string, threshold float64) Predicate {
	return Predicate{Key: key, Kind: PredicateAtLeast, Threshold: threshold}
}

func AnyOf(key string, values ...string) Predicate {
	return Predicate{Key: key, Kind: PredicateAnyOf, Values: values}
}

// RuleTarget names which score component a matched rule adjusts
type RuleTarget string

const (
	TargetThreat        RuleTarget = "threat"
	TargetVulnerability RuleTarget = "vulnerability"
	TargetImpact        RuleTarget = "impact"
)

// ScoringRule is one declarative "if this response then +N" record. A single
// interpreter in the scorer evaluates all of them; facility types differ only
// in their tables.
type ScoringRule struct {
	ID        string     `json:"id"`
	Predicate Predicate  `json:"predicate"`
	Target    RuleTarget `json:"target"`
	Weight    int        `json:"weight"`            // negative weights lower exposure
	Threats   []string   `json:"threats,omitempty"` // empty = every threat in the catalog
}

// AppliesTo reports whether the rule participates in scoring the given threat
func (r ScoringRule) AppliesTo(threatID string) bool {
	if len(r.Threats) == 0 {
		return true
	}
	for _, id := range r.Threats {
		if id == threatID {
			return true
		}
	}
	return false
}

// GapStatement maps a predicate to the human-readable gap narrative shown as a
// contributing factor. The table is kept separate from the vulnerability rules
// on purpose: narrative wording evolves independently of score weights, and a
// consistency test keeps the two aligned.
type GapStatement struct {
	Predicate Predicate `json:"predicate"`
	Threats   []string  `json:"threats,omitempty"` // empty = every threat
	Statement string    `json:"statement"`
}

// AppliesTo reports whether the statement belongs to the given threat
func (g GapStatement) AppliesTo(threatID string) bool {
	if len(g.Threats) == 0 {
		return true
	}
	for _, id := range g.Threats {
		if id == threatID {
			return true
		}
	}
	return false
}

// ThreatDefinition is one static threat catalog entry
type ThreatDefinition struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Category           string `json:"category"`
	BaselineLikelihood int    `json:"baseline_likelihood"` // starting T, [1,5]
	BaselineImpact     int    `json:"baseline_impact"`     // starting I, [1,5]
	LifeSafety         bool   `json:"life_safety"`         // impact floored at 5 regardless of computed sum
	Description        string `json:"description"`
	Reference          string `json:"reference"` // external standard reference code
}

// FacilityCatalog bundles everything facility-type specific: the threat list,
// the weighted rule table, the gap statement table and the two scoring knobs
// the accumulator needs.
type FacilityCatalog struct {
	FacilityType models.FacilityType `json:"facility_type"`

	// VulnerabilityBaseline is the starting V before gap accumulation
	VulnerabilityBaseline int `json:"vulnerability_baseline"`

	// StabilityDivisor normalizes gap-point sensitivity across facility types
	// with different baseline event frequencies. Treated as a tunable, not a
	// domain law; shipped values are 2 for retail and 3 elsewhere.
	StabilityDivisor int `json:"stability_divisor"`

	Threats []ThreatDefinition `json:"threats"`
	Rules   []ScoringRule      `json:"rules"`
	Gaps    []GapStatement     `json:"gaps"`
}

// Threat returns the catalog entry for the given id
func (c *FacilityCatalog) Threat(id string) (ThreatDefinition, bool) {
	for _, t := range c.Threats {
		if t.ID == id {
			return t, true
		}
	}
	return ThreatDefinition{}, false
}

// ControlCategory classifies controls by their security function
type ControlCategory string

const (
	CategoryDeterrence ControlCategory = "deterrence"
	CategoryDetection  ControlCategory = "detection"
	CategoryDelay      ControlCategory = "delay"
	CategoryResponse   ControlCategory = "response"
)

// EvidenceConfidence grades the quality of a control's effectiveness evidence
type EvidenceConfidence string

const (
	ConfidenceHigh   EvidenceConfidence = "high"
	ConfidenceMedium EvidenceConfidence = "medium"
	ConfidenceLow    EvidenceConfidence = "low"
)

// CostRange bounds implementation cost for one facility size bucket
type CostRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Midpoint is the cost figure ROI computations use
func (c CostRange) Midpoint() float64 {
	return (c.Min + c.Max) / 2
}

// Effectiveness holds a control's expected loss reduction and its evidence
type Effectiveness struct {
	RiskReduction  float64            `json:"risk_reduction"` // fraction of current annual loss avoided
	EvidenceSource string             `json:"evidence_source"`
	Confidence     EvidenceConfidence `json:"confidence"`
}

// Applicability gates a control to facility formats and profile conditions
type Applicability struct {
	Formats      []models.FacilityType `json:"formats,omitempty"`  // empty = all formats
	Excludes     []models.FacilityType `json:"excludes,omitempty"`
	RequiresFlag models.ProfileFlag    `json:"requires_flag,omitempty"` // "" = unconditional
}

// Matches reports whether the control applies to the given profile
func (a Applicability) Matches(profile models.FacilityProfile) bool {
	for _, t := range a.Excludes {
		if t == profile.FacilityType {
			return false
		}
	}
	if len(a.Formats) > 0 {
		found := false
		for _, t := range a.Formats {
			if t == profile.FacilityType {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if a.RequiresFlag != "" && !profile.Flag(a.RequiresFlag) {
		return false
	}
	return true
}

// ControlDefinition is one static control catalog entry
type ControlDefinition struct {
	ID                  string                          `json:"id"`
	Name                string                          `json:"name"`
	Category            ControlCategory                 `json:"category"`
	Description         string                          `json:"description"`
	Costs               map[models.SizeBucket]CostRange `json:"costs"`
	MaintenanceFraction float64                         `json:"maintenance_fraction"` // annual, of implementation cost
	Effectiveness       Effectiveness                   `json:"effectiveness"`
	Mitigates           []string                        `json:"mitigates"` // threat ids, across catalogs
	Applicability       Applicability                   `json:"applicability"`

	// ImplementedKey names the response that, when affirmative, marks the
	// control as already in place so it is never recommended.
	ImplementedKey string `json:"implemented_key"`
}

// ChecklistItem is one posture check. Satisfied when the predicate holds.
type ChecklistItem struct {
	Category  string    `json:"category"`
	Predicate Predicate `json:"predicate"`
	Finding   string    `json:"finding"`  // reported when unsatisfied
	Strength  string    `json:"strength"` // reported when satisfied
}
