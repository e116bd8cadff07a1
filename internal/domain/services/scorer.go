package services

import (
	"fmt"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

// Scorer turns one response set into per-threat component scores by running
// the facility catalog's declarative rule table through a single accumulator.
// Facility types differ only in their tables, never in code paths.
type Scorer struct {
	registry *catalog.Registry
	norm     *Normalizer
	bands    config.RiskBandConfig
	log      *logger.Logger
}

// NewScorer creates a scoring engine bound to a validated registry
func NewScorer(registry *catalog.Registry, norm *Normalizer, cfg config.EngineConfig, log *logger.Logger) *Scorer {
	return &Scorer{
		registry: registry,
		norm:     norm,
		bands:    cfg.RiskBands,
		log:      log.WithComponent("scorer"),
	}
}

// Score computes T, V and I for one threat. It fails only when the threat or
// facility type is missing from the catalog, which signals a configuration
// problem rather than bad user input.
func (s *Scorer) Score(facility models.FacilityType, threatID string, responses models.ResponseSet) (models.ComponentScores, error) {
	cat, ok := s.registry.Facility(facility)
	if !ok {
		return models.ComponentScores{}, &UnknownFacilityError{FacilityType: string(facility)}
	}
	threat, ok := cat.Threat(threatID)
	if !ok {
		return models.ComponentScores{}, &UnknownThreatError{FacilityType: string(facility), ThreatID: threatID}
	}
	return s.scoreThreat(cat, threat, responses), nil
}

// scoreThreat runs the rule accumulator for one catalog threat
func (s *Scorer) scoreThreat(cat *catalog.FacilityCatalog, threat catalog.ThreatDefinition, responses models.ResponseSet) models.ComponentScores {
	gapPoints := 0
	threatAdj := 0
	impactAdj := 0

	for _, rule := range cat.Rules {
		if !rule.AppliesTo(threat.ID) {
			continue
		}
		if !s.norm.Evaluate(responses, rule.Predicate) {
			continue
		}
		switch rule.Target {
		case catalog.TargetVulnerability:
			gapPoints += rule.Weight
		case catalog.TargetThreat:
			threatAdj += rule.Weight
		case catalog.TargetImpact:
			impactAdj += rule.Weight
		}
	}

	// Gap points are normalized by the facility's stability divisor so a
	// couple of isolated weaknesses do not saturate V while systemic,
	// multi-category weakness still does.
	v := clamp(cat.VulnerabilityBaseline + gapPoints/cat.StabilityDivisor)
	t := clamp(threat.BaselineLikelihood + threatAdj)

	i := clamp(threat.BaselineImpact + impactAdj)
	if threat.LifeSafety {
		// Life-safety impact is categorical, never additive.
		i = models.ComponentMax
	}

	return models.ComponentScores{Threat: t, Vulnerability: v, Impact: i}
}

// ScoreAll scores every threat in the facility's catalog. A failure on one
// threat is isolated and reported in the second return value; the remaining
// threats still score. Scenario order follows catalog order, so consecutive
// runs over the same responses compare byte-for-byte.
func (s *Scorer) ScoreAll(facility models.FacilityType, responses models.ResponseSet) ([]models.RiskScenario, []string, error) {
	cat, ok := s.registry.Facility(facility)
	if !ok {
		return nil, nil, &UnknownFacilityError{FacilityType: string(facility)}
	}

	scenarios := make([]models.RiskScenario, 0, len(cat.Threats))
	var failed []string

	for _, threat := range cat.Threats {
		scenario, err := s.buildScenario(cat, threat, responses)
		if err != nil {
			s.log.Error().
				Str("facility_type", string(facility)).
				Str("threat_id", threat.ID).
				Err(err).
				Msg("threat scoring failed, skipping")
			failed = append(failed, threat.ID)
			continue
		}
		scenarios = append(scenarios, scenario)
	}

	return scenarios, failed, nil
}

// buildScenario scores one threat and converts a rule-evaluation panic into
// an error so a single bad entry cannot abort the rest of the catalog.
func (s *Scorer) buildScenario(cat *catalog.FacilityCatalog, threat catalog.ThreatDefinition, responses models.ResponseSet) (scenario models.RiskScenario, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rule evaluation panic for threat %q: %v", threat.ID, r)
		}
	}()

	scores := s.scoreThreat(cat, threat, responses)
	inherent := scores.InherentRisk()
	pct := float64(inherent) / float64(models.InherentRiskMax) * 100

	return models.RiskScenario{
		ThreatID:            threat.ID,
		ThreatName:          threat.Name,
		Category:            threat.Category,
		Scores:              scores,
		InherentRisk:        inherent,
		RiskPct:             pct,
		RiskLevel:           s.riskLevel(pct),
		Description:         threat.Description,
		ContributingFactors: s.contributingFactors(cat, threat.ID, responses),
	}, nil
}

// ContributingFactors returns the human-readable gap statements for one
// threat. The gap table is curated separately from the vulnerability rules so
// narrative wording can evolve without touching score weights; a consistency
// test keeps the two aligned.
func (s *Scorer) ContributingFactors(facility models.FacilityType, threatID string, responses models.ResponseSet) ([]string, error) {
	cat, ok := s.registry.Facility(facility)
	if !ok {
		return nil, &UnknownFacilityError{FacilityType: string(facility)}
	}
	if _, ok := cat.Threat(threatID); !ok {
		return nil, &UnknownThreatError{FacilityType: string(facility), ThreatID: threatID}
	}
	return s.contributingFactors(cat, threatID, responses), nil
}

func (s *Scorer) contributingFactors(cat *catalog.FacilityCatalog, threatID string, responses models.ResponseSet) []string {
	var factors []string
	for _, gap := range cat.Gaps {
		if !gap.AppliesTo(threatID) {
			continue
		}
		if s.norm.Evaluate(responses, gap.Predicate) {
			factors = append(factors, gap.Statement)
		}
	}
	return factors
}

// riskLevel maps a normalized risk percentage onto the configured bands
func (s *Scorer) riskLevel(pct float64) models.RiskLevel {
	switch {
	case pct >= s.bands.CriticalPct:
		return models.RiskCritical
	case pct >= s.bands.HighPct:
		return models.RiskHigh
	case pct >= s.bands.MediumPct:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// clamp bounds a component score to the ordinal scale
func clamp(v int) int {
	if v < models.ComponentMin {
		return models.ComponentMin
	}
	if v > models.ComponentMax {
		return models.ComponentMax
	}
	return v
}
