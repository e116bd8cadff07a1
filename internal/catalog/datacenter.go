package catalog

import (
	"siteguard-engine/internal/domain/models"
)

// DatacenterCatalog returns the threat catalog and rule tables for datacenter
// and colocation facilities.
func DatacenterCatalog() *FacilityCatalog {
	return &FacilityCatalog{
		FacilityType:          models.FacilityDatacenter,
		VulnerabilityBaseline: 2, // hardened baseline relative to general commercial space
		StabilityDivisor:      3,

		Threats: []ThreatDefinition{
			{
				ID: "unauthorized-access", Name: "Unauthorized Physical Access", Category: "intrusion",
				BaselineLikelihood: 3, BaselineImpact: 4,
				Description: "Entry into data halls or support spaces by persons without authorization.",
				Reference:   "TIA-942-G",
			},
			{
				ID: "insider-sabotage", Name: "Insider Sabotage", Category: "disruption",
				BaselineLikelihood: 2, BaselineImpact: 5,
				Description: "Deliberate service disruption by staff, contractors or customer technicians.",
				Reference:   "CISA-IT-1",
			},
			{
				ID: "hardware-theft", Name: "Hardware and Media Theft", Category: "property-crime",
				BaselineLikelihood: 2, BaselineImpact: 4,
				Description: "Theft of servers, drives or backup media containing customer data.",
				Reference:   "ISO-27001-A11",
			},
			{
				ID: "social-engineering", Name: "Social Engineering Entry", Category: "intrusion",
				BaselineLikelihood: 3, BaselineImpact: 4,
				Description: "Tailgating, impersonation of vendors or pretexted escort to gain entry.",
				Reference:   "SANS-SE-2",
			},
			{
				ID: "vehicle-attack", Name: "Vehicle-Borne Attack", Category: "violence",
				BaselineLikelihood: 1, BaselineImpact: 5, LifeSafety: true,
				Description: "Ramming or vehicle-borne explosive attack against the building or utility yard.",
				Reference:   "FEMA-426-4",
			},
			{
				ID: "utility-attack", Name: "Utility Infrastructure Attack", Category: "disruption",
				BaselineLikelihood: 2, BaselineImpact: 5,
				Description: "Attack against power, cooling or fiber infrastructure serving the site.",
				Reference:   "NERC-CIP-014",
			},
			{
				ID: "espionage", Name: "Espionage / Data Exfiltration", Category: "espionage",
				BaselineLikelihood: 2, BaselineImpact: 5,
				Description: "Covert physical access to systems or media for intelligence collection.",
				Reference:   "NISPOM-1-302",
			},
			{
				ID: "active-shooter", Name: "Active Assailant", Category: "violence",
				BaselineLikelihood: 1, BaselineImpact: 5, LifeSafety: true,
				Description: "Armed assailant attacking staff in office or operations areas.",
				Reference:   "DHS-AS-2017",
			},
			{
				ID: "civil-disturbance", Name: "Civil Disturbance", Category: "external",
				BaselineLikelihood: 1, BaselineImpact: 3,
				Description: "Protest activity targeting the operator or a tenant, blocking access or damaging the perimeter.",
				Reference:   "FEMA-386-7",
			},
		},

		Rules: []ScoringRule{
			// Vulnerability gaps
			{ID: "dc-v-01", Predicate: No("dc.mantrap_entry"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"unauthorized-access", "social-engineering", "hardware-theft"}},
			{ID: "dc-v-02", Predicate: No("access.electronic_badge_system"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"unauthorized-access", "insider-sabotage", "espionage"}},
			{ID: "dc-v-03", Predicate: No("access.tailgating_controls"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"social-engineering", "unauthorized-access"}},
			{ID: "dc-v-04", Predicate: No("dc.visitor_escort"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"social-engineering", "espionage", "unauthorized-access"}},
			{ID: "dc-v-05", Predicate: No("dc.rack_locks"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"hardware-theft", "insider-sabotage", "espionage"}},
			{ID: "dc-v-06", Predicate: No("dc.media_destruction"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"espionage", "hardware-theft"}},
			{ID: "dc-v-07", Predicate: No("surveillance.cctv_installed"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"unauthorized-access", "hardware-theft", "insider-sabotage", "social-engineering"}},
			{ID: "dc-v-08", Predicate: AtMost("surveillance.recording_retention_days", 90), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"espionage", "insider-sabotage"}},
			{ID: "dc-v-09", Predicate: No("perimeter.bollards"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"vehicle-attack"}},
			{ID: "dc-v-10", Predicate: No("perimeter.fencing"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"utility-attack", "vehicle-attack", "civil-disturbance"}},
			{ID: "dc-v-11", Predicate: No("dc.utility_yard_secured"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"utility-attack"}},
			{ID: "dc-v-12", Predicate: No("dc.redundant_power"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"utility-attack", "insider-sabotage"}},
			{ID: "dc-v-13", Predicate: No("personnel.background_checks"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"insider-sabotage", "espionage", "hardware-theft"}},
			{ID: "dc-v-14", Predicate: No("personnel.termination_procedures"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"insider-sabotage", "unauthorized-access"}},
			{ID: "dc-v-15", Predicate: No("dc.two_person_rule"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"insider-sabotage", "espionage"}},
			{ID: "dc-v-16", Predicate: No("emergency.action_plan"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"active-shooter", "civil-disturbance"}},

			// Threat likelihood: documented incident history
			{ID: "dc-t-01", Predicate: Yes("incidents.trespass"), Target: TargetThreat, Weight: 2,
				Threats: []string{"unauthorized-access", "social-engineering"}},
			{ID: "dc-t-02", Predicate: Yes("incidents.theft"), Target: TargetThreat, Weight: 2,
				Threats: []string{"hardware-theft"}},
			{ID: "dc-t-03", Predicate: Yes("incidents.sabotage"), Target: TargetThreat, Weight: 2,
				Threats: []string{"insider-sabotage", "utility-attack"}},
			{ID: "dc-t-04", Predicate: Yes("incidents.threats_received"), Target: TargetThreat, Weight: 2,
				Threats: []string{"civil-disturbance", "vehicle-attack"}},

			// Threat likelihood: exposure profile
			{ID: "dc-t-05", Predicate: Yes("profile.sensitive_data"), Target: TargetThreat, Weight: 1,
				Threats: []string{"espionage", "hardware-theft"}},
			{ID: "dc-t-06", Predicate: Yes("profile.multi_tenant"), Target: TargetThreat, Weight: 1,
				Threats: []string{"unauthorized-access", "social-engineering", "insider-sabotage"}},
			{ID: "dc-t-07", Predicate: Contains("dc.tenant_profile", "government"), Target: TargetThreat, Weight: 1,
				Threats: []string{"espionage", "vehicle-attack", "civil-disturbance"}},
			{ID: "dc-t-08", Predicate: Yes("profile.high_visitor_volume"), Target: TargetThreat, Weight: 1,
				Threats: []string{"social-engineering", "unauthorized-access"}},

			// Threat likelihood: physical configuration
			{ID: "dc-t-09", Predicate: Yes("profile.always_occupied"), Target: TargetThreat, Weight: -1,
				Threats: []string{"hardware-theft", "utility-attack"}},
			{ID: "dc-t-10", Predicate: Contains("personnel.guard_coverage", "24"), Target: TargetThreat, Weight: -1,
				Threats: []string{"unauthorized-access", "vehicle-attack", "civil-disturbance"}},

			// Impact: facility scale and business function
			{ID: "dc-i-01", Predicate: AtLeast("dc.customer_count", 25), Target: TargetImpact, Weight: 1,
				Threats: []string{"utility-attack", "insider-sabotage", "unauthorized-access"}},
			{ID: "dc-i-02", Predicate: Yes("profile.regulated_industry"), Target: TargetImpact, Weight: 1,
				Threats: []string{"espionage", "hardware-theft", "unauthorized-access"}},
			{ID: "dc-i-03", Predicate: AtLeast("profile.annual_revenue", 25_000_000), Target: TargetImpact, Weight: 1,
				Threats: []string{"utility-attack", "insider-sabotage"}},
		},

		Gaps: []GapStatement{
			{Predicate: No("dc.mantrap_entry"),
				Threats:   []string{"unauthorized-access", "social-engineering", "hardware-theft"},
				Statement: "Data hall entry lacks a mantrap or interlock, so a single door breach or tailgate reaches raised floor."},
			{Predicate: No("access.tailgating_controls"),
				Threats:   []string{"social-engineering", "unauthorized-access"},
				Statement: "No anti-tailgating measures at controlled doors; each badge read can admit more than one person."},
			{Predicate: No("dc.visitor_escort"),
				Threats:   []string{"social-engineering", "espionage", "unauthorized-access"},
				Statement: "Visitors and vendor technicians are not continuously escorted inside controlled space."},
			{Predicate: No("dc.rack_locks"),
				Threats:   []string{"hardware-theft", "insider-sabotage", "espionage"},
				Statement: "Cabinets are unlocked; anyone with hall access can reach every tenant's equipment."},
			{Predicate: No("dc.media_destruction"),
				Threats:   []string{"espionage", "hardware-theft"},
				Statement: "No controlled destruction process for retired drives and media."},
			{Predicate: No("perimeter.bollards"),
				Threats:   []string{"vehicle-attack"},
				Statement: "No vehicle barriers protect the building face or generator yard from ramming approach."},
			{Predicate: No("dc.utility_yard_secured"),
				Threats:   []string{"utility-attack"},
				Statement: "Generators, switchgear and fuel storage sit outside the hardened perimeter."},
			{Predicate: No("personnel.background_checks"),
				Threats:   []string{"insider-sabotage", "espionage", "hardware-theft"},
				Statement: "Staff and contractors receive data hall access without background screening."},
			{Predicate: No("dc.two_person_rule"),
				Threats:   []string{"insider-sabotage", "espionage"},
				Statement: "Sensitive areas permit lone access; no two-person integrity for critical work."},
		},
	}
}
