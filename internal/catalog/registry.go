package catalog

import (
	"fmt"
	"sync/atomic"

	"siteguard-engine/internal/domain/models"
)

// Registry is the frozen, validated set of catalogs one engine call runs
// against. It is constructed once, never mutated, and injected into every
// service so tests can substitute fixture catalogs freely.
type Registry struct {
	facilities map[models.FacilityType]*FacilityCatalog
	controls   []ControlDefinition
	checklist  []ChecklistItem
}

// NewRegistry validates every entry and freezes the catalogs. A validation
// failure aborts with the offending entry named; nothing is partially loaded.
func NewRegistry(catalogs []*FacilityCatalog, controls []ControlDefinition, checklist []ChecklistItem) (*Registry, error) {
	if len(catalogs) == 0 {
		return nil, fmt.Errorf("no facility catalogs supplied")
	}

	facilities := make(map[models.FacilityType]*FacilityCatalog, len(catalogs))
	knownThreats := make(map[string]bool)

	for _, c := range catalogs {
		if err := validateFacilityCatalog(c); err != nil {
			return nil, err
		}
		if _, dup := facilities[c.FacilityType]; dup {
			return nil, invalid(string(c.FacilityType), "", "facility_type", "duplicate facility catalog")
		}
		facilities[c.FacilityType] = c
		for _, t := range c.Threats {
			knownThreats[t.ID] = true
		}
	}

	if err := validateControls(controls, knownThreats); err != nil {
		return nil, err
	}
	if err := validateChecklist(checklist); err != nil {
		return nil, err
	}

	return &Registry{
		facilities: facilities,
		controls:   controls,
		checklist:  checklist,
	}, nil
}

// Default builds the registry from the built-in catalog tables
func Default() (*Registry, error) {
	return NewRegistry(
		[]*FacilityCatalog{
			OfficeCatalog(),
			RetailCatalog(),
			ManufacturingCatalog(),
			DatacenterCatalog(),
		},
		Controls(),
		Checklist(),
	)
}

// Facility returns the catalog for the given facility type
func (r *Registry) Facility(t models.FacilityType) (*FacilityCatalog, bool) {
	c, ok := r.facilities[t]
	return c, ok
}

// FacilityTypes lists the facility types with a loaded catalog
func (r *Registry) FacilityTypes() []models.FacilityType {
	types := make([]models.FacilityType, 0, len(r.facilities))
	for _, t := range models.AllFacilityTypes() {
		if _, ok := r.facilities[t]; ok {
			types = append(types, t)
		}
	}
	return types
}

// Threat looks up one threat definition within a facility catalog
func (r *Registry) Threat(facility models.FacilityType, threatID string) (ThreatDefinition, bool) {
	c, ok := r.facilities[facility]
	if !ok {
		return ThreatDefinition{}, false
	}
	return c.Threat(threatID)
}

// Controls returns the shared control catalog
func (r *Registry) Controls() []ControlDefinition {
	return r.controls
}

// Control looks up one control definition by id
func (r *Registry) Control(id string) (ControlDefinition, bool) {
	for _, c := range r.controls {
		if c.ID == id {
			return c, true
		}
	}
	return ControlDefinition{}, false
}

// Checklist returns the posture checklist in evaluation order
func (r *Registry) Checklist() []ChecklistItem {
	return r.checklist
}

// Provider hands out the current registry and supports atomic hot swap.
// Readers always observe a whole registry, never a half-updated one.
type Provider struct {
	current atomic.Pointer[Registry]
}

// NewProvider creates a provider serving the given registry
func NewProvider(r *Registry) *Provider {
	p := &Provider{}
	p.current.Store(r)
	return p
}

// Current returns the registry active for new engine calls
func (p *Provider) Current() *Registry {
	return p.current.Load()
}

// Swap replaces the active registry. The caller must have validated the new
// registry (NewRegistry already guarantees this).
func (p *Provider) Swap(r *Registry) {
	p.current.Store(r)
}
