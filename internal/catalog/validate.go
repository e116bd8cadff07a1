package catalog

import (
	"fmt"

	"siteguard-engine/internal/domain/models"
)

// ValidationError names the exact catalog entry that failed its field
// contract. Catalog problems are configuration errors: fatal at load time,
// never surfaced to request handling.
type ValidationError struct {
	Catalog string
	Entry   string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog %q entry %q field %q: %s", e.Catalog, e.Entry, e.Field, e.Reason)
}

func invalid(catalog, entry, field, reason string) error {
	return &ValidationError{Catalog: catalog, Entry: entry, Field: field, Reason: reason}
}

func validatePredicate(catalog, entry string, p Predicate) error {
	if p.Key == "" {
		return invalid(catalog, entry, "predicate.key", "empty response key")
	}
	switch p.Kind {
	case PredicateYes, PredicateNo:
	case PredicateContains:
		if p.Match == "" {
			return invalid(catalog, entry, "predicate.match", "contains predicate without match text")
		}
	case PredicateAtMost, PredicateAtLeast:
		// zero threshold is legal (e.g. "at most 0 guards")
	case PredicateAnyOf:
		if len(p.Values) == 0 {
			return invalid(catalog, entry, "predicate.values", "any_of predicate without values")
		}
	default:
		return invalid(catalog, entry, "predicate.kind", fmt.Sprintf("unknown kind %q", p.Kind))
	}
	return nil
}

func validateFacilityCatalog(c *FacilityCatalog) error {
	name := string(c.FacilityType)
	if !c.FacilityType.Valid() {
		return invalid(name, "", "facility_type", "unknown facility type")
	}
	if c.VulnerabilityBaseline < models.ComponentMin || c.VulnerabilityBaseline > models.ComponentMax {
		return invalid(name, "", "vulnerability_baseline", "outside [1,5]")
	}
	if c.StabilityDivisor < 1 {
		return invalid(name, "", "stability_divisor", "must be >= 1")
	}
	if len(c.Threats) == 0 {
		return invalid(name, "", "threats", "empty threat catalog")
	}

	threatIDs := make(map[string]bool, len(c.Threats))
	for _, t := range c.Threats {
		if t.ID == "" {
			return invalid(name, t.Name, "id", "empty threat id")
		}
		if threatIDs[t.ID] {
			return invalid(name, t.ID, "id", "duplicate threat id")
		}
		threatIDs[t.ID] = true
		if t.Name == "" {
			return invalid(name, t.ID, "name", "empty display name")
		}
		if t.Category == "" {
			return invalid(name, t.ID, "category", "empty category")
		}
		if t.BaselineLikelihood < models.ComponentMin || t.BaselineLikelihood > models.ComponentMax {
			return invalid(name, t.ID, "baseline_likelihood", "outside [1,5]")
		}
		if t.BaselineImpact < models.ComponentMin || t.BaselineImpact > models.ComponentMax {
			return invalid(name, t.ID, "baseline_impact", "outside [1,5]")
		}
	}

	ruleIDs := make(map[string]bool, len(c.Rules))
	for _, r := range c.Rules {
		if r.ID == "" {
			return invalid(name, r.Predicate.Key, "rule.id", "empty rule id")
		}
		if ruleIDs[r.ID] {
			return invalid(name, r.ID, "rule.id", "duplicate rule id")
		}
		ruleIDs[r.ID] = true
		if err := validatePredicate(name, r.ID, r.Predicate); err != nil {
			return err
		}
		switch r.Target {
		case TargetThreat, TargetVulnerability, TargetImpact:
		default:
			return invalid(name, r.ID, "rule.target", fmt.Sprintf("unknown target %q", r.Target))
		}
		if r.Weight == 0 {
			return invalid(name, r.ID, "rule.weight", "zero weight rule has no effect")
		}
		if r.Target == TargetVulnerability && r.Weight < 0 {
			return invalid(name, r.ID, "rule.weight", "vulnerability rules accumulate gaps and must be positive")
		}
		for _, id := range r.Threats {
			if !threatIDs[id] {
				return invalid(name, r.ID, "rule.threats", fmt.Sprintf("unknown threat %q", id))
			}
		}
	}

	for i, g := range c.Gaps {
		entry := fmt.Sprintf("gap[%d]", i)
		if g.Statement == "" {
			return invalid(name, entry, "statement", "empty gap statement")
		}
		if err := validatePredicate(name, entry, g.Predicate); err != nil {
			return err
		}
		for _, id := range g.Threats {
			if !threatIDs[id] {
				return invalid(name, entry, "threats", fmt.Sprintf("unknown threat %q", id))
			}
		}
	}

	return nil
}

func validateControls(controls []ControlDefinition, knownThreats map[string]bool) error {
	const name = "controls"
	ids := make(map[string]bool, len(controls))
	for _, ctl := range controls {
		if ctl.ID == "" {
			return invalid(name, ctl.Name, "id", "empty control id")
		}
		if ids[ctl.ID] {
			return invalid(name, ctl.ID, "id", "duplicate control id")
		}
		ids[ctl.ID] = true
		if ctl.Name == "" {
			return invalid(name, ctl.ID, "name", "empty display name")
		}
		switch ctl.Category {
		case CategoryDeterrence, CategoryDetection, CategoryDelay, CategoryResponse:
		default:
			return invalid(name, ctl.ID, "category", fmt.Sprintf("unknown category %q", ctl.Category))
		}
		for _, bucket := range []models.SizeBucket{models.SizeSmall, models.SizeMedium, models.SizeLarge} {
			cr, ok := ctl.Costs[bucket]
			if !ok {
				return invalid(name, ctl.ID, "costs", fmt.Sprintf("missing cost range for bucket %q", bucket))
			}
			if cr.Min < 0 || cr.Max < cr.Min {
				return invalid(name, ctl.ID, "costs", fmt.Sprintf("invalid range [%.0f,%.0f] for bucket %q", cr.Min, cr.Max, bucket))
			}
		}
		if ctl.MaintenanceFraction < 0 || ctl.MaintenanceFraction >= 1 {
			return invalid(name, ctl.ID, "maintenance_fraction", "outside [0,1)")
		}
		if ctl.Effectiveness.RiskReduction <= 0 || ctl.Effectiveness.RiskReduction > 1 {
			return invalid(name, ctl.ID, "effectiveness.risk_reduction", "outside (0,1]")
		}
		switch ctl.Effectiveness.Confidence {
		case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		default:
			return invalid(name, ctl.ID, "effectiveness.confidence", fmt.Sprintf("unknown confidence %q", ctl.Effectiveness.Confidence))
		}
		if len(ctl.Mitigates) == 0 {
			return invalid(name, ctl.ID, "mitigates", "control mitigates no threats")
		}
		for _, id := range ctl.Mitigates {
			if !knownThreats[id] {
				return invalid(name, ctl.ID, "mitigates", fmt.Sprintf("unknown threat %q", id))
			}
		}
		if ctl.ImplementedKey == "" {
			return invalid(name, ctl.ID, "implemented_key", "missing already-implemented response key")
		}
	}
	return nil
}

func validateChecklist(items []ChecklistItem) error {
	const name = "checklist"
	for i, item := range items {
		entry := fmt.Sprintf("item[%d]", i)
		if item.Category == "" {
			return invalid(name, entry, "category", "empty category")
		}
		if err := validatePredicate(name, entry, item.Predicate); err != nil {
			return err
		}
		if item.Finding == "" {
			return invalid(name, entry, "finding", "empty finding text")
		}
		if item.Strength == "" {
			return invalid(name, entry, "strength", "empty strength text")
		}
	}
	return nil
}
