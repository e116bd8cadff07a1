package catalog

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteguard-engine/internal/domain/models"
)

func fixtureProfile() models.FacilityProfile {
	return models.FacilityProfile{FacilityType: models.FacilityOffice, SizeBucket: models.SizeMedium}
}

// The gap statement tables are curated separately from the vulnerability
// rules so narrative wording can change without touching score weights. This
// test keeps the two semantically aligned: every gap must be backed by a
// vulnerability rule with the identical predicate covering the same threats.
func TestGapStatementsBackedByVulnerabilityRules(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	for _, facility := range reg.FacilityTypes() {
		cat, ok := reg.Facility(facility)
		require.True(t, ok)

		for i, gap := range cat.Gaps {
			var backing *ScoringRule
			for j := range cat.Rules {
				rule := &cat.Rules[j]
				if rule.Target == TargetVulnerability && reflect.DeepEqual(rule.Predicate, gap.Predicate) {
					backing = rule
					break
				}
			}
			require.NotNil(t, backing, "%s gap[%d] (%s) has no backing vulnerability rule",
				facility, i, gap.Predicate.Key)

			for _, threatID := range gap.Threats {
				assert.True(t, backing.AppliesTo(threatID),
					"%s gap[%d]: rule %s does not cover threat %s", facility, i, backing.ID, threatID)
			}
		}
	}
}

// Rule tables may reference exposure attributes only through the overlay keys
// the facility profile actually renders.
func TestProfileRuleKeysExistInOverlay(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	overlay := fixtureProfileOverlayKeys()

	for _, facility := range reg.FacilityTypes() {
		cat, _ := reg.Facility(facility)
		for _, rule := range cat.Rules {
			if strings.HasPrefix(rule.Predicate.Key, "profile.") {
				assert.Contains(t, overlay, rule.Predicate.Key,
					"%s rule %s references an overlay key the profile never renders", facility, rule.ID)
			}
		}
	}
}

func fixtureProfileOverlayKeys() map[string]bool {
	keys := make(map[string]bool)
	for k := range fixtureProfile().ResponseOverlay() {
		keys[k] = true
	}
	return keys
}

// Control applicability must stay decidable for every shipped facility type:
// a format-gated control that names no shipped format would be dead data.
func TestControlFormatsAreShippedFacilityTypes(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	shipped := make(map[string]bool)
	for _, facility := range reg.FacilityTypes() {
		shipped[string(facility)] = true
	}

	for _, control := range reg.Controls() {
		for _, format := range control.Applicability.Formats {
			assert.True(t, shipped[string(format)],
				"control %s gated on unshipped format %q", control.ID, format)
		}
	}
}
