package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteguard-engine/internal/domain/models"
)

func minimalCatalog() *FacilityCatalog {
	return &FacilityCatalog{
		FacilityType:          models.FacilityOffice,
		VulnerabilityBaseline: 3,
		StabilityDivisor:      3,
		Threats: []ThreatDefinition{
			{ID: "burglary", Name: "Burglary", Category: "property-crime",
				BaselineLikelihood: 3, BaselineImpact: 3, Description: "fixture"},
		},
	}
}

func minimalControl() ControlDefinition {
	return ControlDefinition{
		ID: "alarm", Name: "Alarm", Category: CategoryDetection,
		Costs: map[models.SizeBucket]CostRange{
			models.SizeSmall:  {Min: 1_000, Max: 2_000},
			models.SizeMedium: {Min: 2_000, Max: 4_000},
			models.SizeLarge:  {Min: 4_000, Max: 8_000},
		},
		MaintenanceFraction: 0.1,
		Effectiveness:       Effectiveness{RiskReduction: 0.3, Confidence: ConfidenceHigh},
		Mitigates:           []string{"burglary"},
		ImplementedKey:      "intrusion.alarm_system",
	}
}

func TestDefaultRegistryValidates(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	assert.ElementsMatch(t, models.AllFacilityTypes(), reg.FacilityTypes())
	assert.NotEmpty(t, reg.Controls())
	assert.NotEmpty(t, reg.Checklist())

	for _, facility := range reg.FacilityTypes() {
		cat, ok := reg.Facility(facility)
		require.True(t, ok)
		assert.NotEmpty(t, cat.Threats)
		assert.NotEmpty(t, cat.Rules)
		assert.NotEmpty(t, cat.Gaps)
	}
}

func TestNewRegistryRejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FacilityCatalog)
		field  string
	}{
		{
			name: "baseline out of range",
			mutate: func(c *FacilityCatalog) {
				c.Threats[0].BaselineLikelihood = 9
			},
			field: "baseline_likelihood",
		},
		{
			name: "duplicate threat id",
			mutate: func(c *FacilityCatalog) {
				c.Threats = append(c.Threats, c.Threats[0])
			},
			field: "id",
		},
		{
			name: "rule references unknown threat",
			mutate: func(c *FacilityCatalog) {
				c.Rules = []ScoringRule{{ID: "r1", Predicate: No("q"), Target: TargetVulnerability,
					Weight: 1, Threats: []string{"piracy"}}}
			},
			field: "rule.threats",
		},
		{
			name: "negative vulnerability weight",
			mutate: func(c *FacilityCatalog) {
				c.Rules = []ScoringRule{{ID: "r1", Predicate: No("q"), Target: TargetVulnerability, Weight: -1}}
			},
			field: "rule.weight",
		},
		{
			name: "contains predicate without match",
			mutate: func(c *FacilityCatalog) {
				c.Rules = []ScoringRule{{ID: "r1", Predicate: Predicate{Key: "q", Kind: PredicateContains},
					Target: TargetThreat, Weight: 1}}
			},
			field: "predicate.match",
		},
		{
			name: "zero stability divisor",
			mutate: func(c *FacilityCatalog) {
				c.StabilityDivisor = 0
			},
			field: "stability_divisor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := minimalCatalog()
			tt.mutate(cat)

			_, err := NewRegistry([]*FacilityCatalog{cat}, nil, nil)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestNewRegistryRejectsMalformedControls(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ControlDefinition)
		field  string
	}{
		{
			name: "missing cost bucket",
			mutate: func(c *ControlDefinition) {
				delete(c.Costs, models.SizeLarge)
			},
			field: "costs",
		},
		{
			name: "maintenance fraction at one",
			mutate: func(c *ControlDefinition) {
				c.MaintenanceFraction = 1.0
			},
			field: "maintenance_fraction",
		},
		{
			name: "unknown mitigated threat",
			mutate: func(c *ControlDefinition) {
				c.Mitigates = []string{"piracy"}
			},
			field: "mitigates",
		},
		{
			name: "missing implemented key",
			mutate: func(c *ControlDefinition) {
				c.ImplementedKey = ""
			},
			field: "implemented_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			control := minimalControl()
			tt.mutate(&control)

			_, err := NewRegistry([]*FacilityCatalog{minimalCatalog()}, []ControlDefinition{control}, nil)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestRegistryLookups(t *testing.T) {
	reg, err := NewRegistry([]*FacilityCatalog{minimalCatalog()}, []ControlDefinition{minimalControl()}, nil)
	require.NoError(t, err)

	threat, ok := reg.Threat(models.FacilityOffice, "burglary")
	require.True(t, ok)
	assert.Equal(t, "Burglary", threat.Name)

	_, ok = reg.Threat(models.FacilityOffice, "piracy")
	assert.False(t, ok)
	_, ok = reg.Threat(models.FacilityRetail, "burglary")
	assert.False(t, ok)

	control, ok := reg.Control("alarm")
	require.True(t, ok)
	assert.Equal(t, CategoryDetection, control.Category)
	_, ok = reg.Control("moat")
	assert.False(t, ok)
}

func TestProviderSwapIsAtomic(t *testing.T) {
	first, err := NewRegistry([]*FacilityCatalog{minimalCatalog()}, nil, nil)
	require.NoError(t, err)
	p := NewProvider(first)
	assert.Same(t, first, p.Current())

	second, err := NewRegistry([]*FacilityCatalog{minimalCatalog()}, []ControlDefinition{minimalControl()}, nil)
	require.NoError(t, err)
	p.Swap(second)
	assert.Same(t, second, p.Current())

	// the first registry is untouched by the swap
	assert.Empty(t, first.Controls())
}
