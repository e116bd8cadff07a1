package models

// FacilityType identifies which threat catalog and rule set applies to a site
type FacilityType string

const (
	FacilityOffice        FacilityType = "office"
	FacilityRetail        FacilityType = "retail"
	FacilityManufacturing FacilityType = "manufacturing"
	FacilityDatacenter    FacilityType = "datacenter"
)

// AllFacilityTypes lists the facility types with a shipped catalog
func AllFacilityTypes() []FacilityType {
	return []FacilityType{FacilityOffice, FacilityRetail, FacilityManufacturing, FacilityDatacenter}
}

// Valid reports whether the facility type has a shipped catalog
func (t FacilityType) Valid() bool {
	switch t {
	case FacilityOffice, FacilityRetail, FacilityManufacturing, FacilityDatacenter:
		return true
	}
	return false
}

// SizeBucket buckets facilities for control cost lookups
type SizeBucket string

const (
	SizeSmall  SizeBucket = "small"
	SizeMedium SizeBucket = "medium"
	SizeLarge  SizeBucket = "large"
)

// Valid reports whether the size bucket is one of the defined buckets
func (s SizeBucket) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// ProfileFlag names a boolean exposure attribute of a facility profile.
// Rule tables and control applicability predicates reference flags by name so
// the catalogs stay pure data.
type ProfileFlag string

const (
	FlagHighValueMerchandise ProfileFlag = "high_value_merchandise"
	FlagExecutivePresence    ProfileFlag = "executive_presence"
	FlagSensitiveData        ProfileFlag = "sensitive_data"
	FlagMultiTenant          ProfileFlag = "multi_tenant"
	FlagHighVisitorVolume    ProfileFlag = "high_visitor_volume"
	FlagAlwaysOccupied       ProfileFlag = "always_occupied"
	FlagRegulatedIndustry    ProfileFlag = "regulated_industry"
)

// FacilityProfile holds the static descriptive attributes of an assessed site
type FacilityProfile struct {
	FacilityType FacilityType `json:"facility_type"`
	SizeBucket   SizeBucket   `json:"size_bucket"`
	Headcount    int          `json:"headcount"`

	// Financials driving ROI computation
	AnnualRevenue   float64 `json:"annual_revenue"`
	CurrentLossRate float64 `json:"current_loss_rate"` // annual loss as a fraction of revenue

	// Exposure attributes
	HighValueMerchandise bool `json:"high_value_merchandise"`
	ExecutivePresence    bool `json:"executive_presence"`
	SensitiveData        bool `json:"sensitive_data"`
	MultiTenant          bool `json:"multi_tenant"`
	HighVisitorVolume    bool `json:"high_visitor_volume"`
	AlwaysOccupied       bool `json:"always_occupied"` // 24x7 staffed operation
	RegulatedIndustry    bool `json:"regulated_industry"`
}

// ResponseOverlay renders the profile as answers under well-known "profile."
// keys. Callers merge the overlay into the interview responses before scoring
// so the rule tables can reference exposure attributes through the same
// predicate machinery as interview answers, and the scorer keeps its
// (threatID, responses) contract.
func (p FacilityProfile) ResponseOverlay() ResponseSet {
	return ResponseSet{
		"profile.high_value_merchandise": p.HighValueMerchandise,
		"profile.executive_presence":     p.ExecutivePresence,
		"profile.sensitive_data":         p.SensitiveData,
		"profile.multi_tenant":           p.MultiTenant,
		"profile.high_visitor_volume":    p.HighVisitorVolume,
		"profile.always_occupied":        p.AlwaysOccupied,
		"profile.regulated_industry":     p.RegulatedIndustry,
		"profile.headcount":              float64(p.Headcount),
		"profile.annual_revenue":         p.AnnualRevenue,
	}
}

// Flag resolves a named exposure flag against the profile. Unknown flags
// resolve to false, the same no-evidence default the normalizer uses.
func (p FacilityProfile) Flag(flag ProfileFlag) bool {
	switch flag {
	case FlagHighValueMerchandise:
		return p.HighValueMerchandise
	case FlagExecutivePresence:
		return p.ExecutivePresence
	case FlagSensitiveData:
		return p.SensitiveData
	case FlagMultiTenant:
		return p.MultiTenant
	case FlagHighVisitorVolume:
		return p.HighVisitorVolume
	case FlagAlwaysOccupied:
		return p.AlwaysOccupied
	case FlagRegulatedIndustry:
		return p.RegulatedIndustry
	}
	return false
}
