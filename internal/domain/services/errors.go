package services

import "fmt"

// UnknownThreatError reports a threat id absent from the active catalog.
// This is a configuration error on the caller's side, not a user error.
type UnknownThreatError struct {
	FacilityType string
	ThreatID     string
}

func (e *UnknownThreatError) Error() string {
	return fmt.Sprintf("unknown threat %q in %s catalog", e.ThreatID, e.FacilityType)
}

// UnknownFacilityError reports a facility type with no loaded catalog
type UnknownFacilityError struct {
	FacilityType string
}

func (e *UnknownFacilityError) Error() string {
	return fmt.Sprintf("no catalog loaded for facility type %q", e.FacilityType)
}
