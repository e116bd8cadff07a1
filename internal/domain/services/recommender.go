package services

import (
	"fmt"
	"sort"
	"strings"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

// Recommender selects mitigating controls for the threats a scoring run
// flagged as high or critical. Controls already in place at the site, and
// controls whose applicability gate does not match the facility profile, are
// never recommended.
type Recommender struct {
	registry *catalog.Registry
	norm     *Normalizer
	log      *logger.Logger
}

// NewRecommender creates a recommendation engine bound to a validated registry
func NewRecommender(registry *catalog.Registry, norm *Normalizer, cfg config.EngineConfig, log *logger.Logger) *Recommender {
	return &Recommender{
		registry: registry,
		norm:     norm,
		log:      log.WithComponent("recommender"),
	}
}

// Recommend produces the prioritized control set for one scoring run.
// Output order is deterministic: priority tier first, then shortest payback,
// then control id as the final tiebreak.
func (r *Recommender) Recommend(responses models.ResponseSet, profile models.FacilityProfile, scenarios []models.RiskScenario) []models.ControlRecommendation {
	levelByThreat := make(map[string]models.RiskLevel, len(scenarios))
	for _, sc := range scenarios {
		if sc.RiskLevel == models.RiskHigh || sc.RiskLevel == models.RiskCritical {
			levelByThreat[sc.ThreatID] = sc.RiskLevel
		}
	}

	recs := make([]models.ControlRecommendation, 0, len(r.registry.Controls()))

	for _, control := range r.registry.Controls() {
		if !control.Applicability.Matches(profile) {
			continue
		}
		if r.norm.Evaluate(responses, catalog.Yes(control.ImplementedKey)) {
			r.log.Debug().
				Str("control_id", control.ID).
				Str("implemented_key", control.ImplementedKey).
				Msg("control already in place, skipping")
			continue
		}

		addressed, coversCritical := addressedThreats(control, levelByThreat)
		if len(addressed) == 0 {
			continue
		}

		roi := ComputeROI(control, profile.SizeBucket, profile.CurrentLossRate, profile.AnnualRevenue)
		priority := priorityFor(coversCritical, len(addressed), roi.PaybackMonths)

		recs = append(recs, models.ControlRecommendation{
			ControlID:        control.ID,
			ControlName:      control.Name,
			Category:         string(control.Category),
			Priority:         priority,
			Rationale:        rationale(control, addressed, roi),
			ROI:              roi,
			ThreatsAddressed: addressed,
		})
	}

	sort.SliceStable(recs, func(a, b int) bool {
		if recs[a].Priority.Rank() != recs[b].Priority.Rank() {
			return recs[a].Priority.Rank() > recs[b].Priority.Rank()
		}
		if recs[a].ROI.PaybackMonths != recs[b].ROI.PaybackMonths {
			return recs[a].ROI.PaybackMonths < recs[b].ROI.PaybackMonths
		}
		return recs[a].ControlID < recs[b].ControlID
	})

	return recs
}

// addressedThreats intersects a control's mitigated threats with the threats
// currently at high or critical risk, preserving catalog order
func addressedThreats(control catalog.ControlDefinition, levelByThreat map[string]models.RiskLevel) ([]string, bool) {
	var addressed []string
	coversCritical := false
	for _, id := range control.Mitigates {
		level, elevated := levelByThreat[id]
		if !elevated {
			continue
		}
		addressed = append(addressed, id)
		if level == models.RiskCritical {
			coversCritical = true
		}
	}
	return addressed, coversCritical
}

// priorityFor applies the combined urgency rule
func priorityFor(coversCritical bool, threatCount, paybackMonths int) models.Priority {
	switch {
	case coversCritical && paybackMonths < 12:
		return models.PriorityCritical
	case threatCount >= 2 || paybackMonths < 18:
		return models.PriorityHigh
	case threatCount >= 1 || paybackMonths < 36:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// rationale renders the one-sentence justification shown with the recommendation
func rationale(control catalog.ControlDefinition, addressed []string, roi models.ROI) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s addresses elevated risk from %s", control.Name, strings.Join(addressed, ", "))
	if roi.NeverPaysBack() {
		b.WriteString("; savings do not offset cost at the current loss rate")
	} else {
		fmt.Fprintf(&b, "; estimated payback in %d months", roi.PaybackMonths)
	}
	return b.String()
}
