package catalog

import (
	"siteguard-engine/internal/domain/models"
)

// OfficeCatalog returns the threat catalog and rule tables for corporate and
// institutional office environments. Lower baseline event frequency than
// retail, so the stability divisor is 3.
func OfficeCatalog() *FacilityCatalog {
	return &FacilityCatalog{
		FacilityType:          models.FacilityOffice,
		VulnerabilityBaseline: 3,
		StabilityDivisor:      3,

		Threats: []ThreatDefinition{
			{
				ID: "unauthorized-access", Name: "Unauthorized Access", Category: "intrusion",
				BaselineLikelihood: 3, BaselineImpact: 3,
				Description: "Entry of non-authorized persons into controlled space during or after business hours.",
				Reference:   "ASIS-GSRA-5.2",
			},
			{
				ID: "burglary", Name: "Burglary / Break-In", Category: "property-crime",
				BaselineLikelihood: 3, BaselineImpact: 3,
				Description: "Forced entry outside business hours targeting equipment and valuables.",
				Reference:   "UCR-220",
			},
			{
				ID: "internal-theft", Name: "Internal Theft", Category: "property-crime",
				BaselineLikelihood: 3, BaselineImpact: 2,
				Description: "Theft of company property or data by employees or contractors.",
				Reference:   "ACFE-RTN-A2",
			},
			{
				ID: "workplace-violence", Name: "Workplace Violence", Category: "violence",
				BaselineLikelihood: 2, BaselineImpact: 4,
				Description: "Assault, threats or intimidation involving employees or visitors.",
				Reference:   "ASIS-WVPI-1",
			},
			{
				ID: "active-shooter", Name: "Active Assailant", Category: "violence",
				BaselineLikelihood: 1, BaselineImpact: 5, LifeSafety: true,
				Description: "Armed assailant actively engaged in killing or attempting to kill people in the facility.",
				Reference:   "DHS-AS-2017",
			},
			{
				ID: "vandalism", Name: "Vandalism", Category: "property-crime",
				BaselineLikelihood: 2, BaselineImpact: 2,
				Description: "Deliberate defacement or destruction of building exterior or grounds.",
				Reference:   "UCR-290",
			},
			{
				ID: "espionage", Name: "Corporate Espionage", Category: "espionage",
				BaselineLikelihood: 2, BaselineImpact: 4,
				Description: "Covert collection of proprietary information through physical access.",
				Reference:   "NISPOM-1-302",
			},
			{
				ID: "bomb-threat", Name: "Bomb Threat / IED", Category: "violence",
				BaselineLikelihood: 1, BaselineImpact: 4, LifeSafety: true,
				Description: "Threatened or actual placement of an explosive device.",
				Reference:   "ATF-IED-4",
			},
			{
				ID: "civil-disturbance", Name: "Civil Disturbance", Category: "external",
				BaselineLikelihood: 2, BaselineImpact: 2,
				Description: "Protest or unrest in the vicinity affecting access or causing collateral damage.",
				Reference:   "FEMA-386-7",
			},
			{
				ID: "executive-threat", Name: "Executive Targeting", Category: "violence",
				BaselineLikelihood: 1, BaselineImpact: 4,
				Description: "Stalking, harassment or targeted violence directed at senior leadership.",
				Reference:   "ASIS-EP-2",
			},
		},

		Rules: []ScoringRule{
			// Vulnerability gaps
			{ID: "off-v-01", Predicate: No("access.electronic_badge_system"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"unauthorized-access", "burglary", "internal-theft", "espionage"}},
			{ID: "off-v-02", Predicate: No("access.visitor_management"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"unauthorized-access", "espionage", "workplace-violence"}},
			{ID: "off-v-03", Predicate: No("access.after_hours_restricted"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"burglary", "unauthorized-access"}},
			{ID: "off-v-04", Predicate: No("access.key_inventory_current"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"burglary", "unauthorized-access"}},
			{ID: "off-v-05", Predicate: No("surveillance.cctv_installed"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"burglary", "internal-theft", "vandalism", "unauthorized-access"}},
			{ID: "off-v-06", Predicate: AtMost("surveillance.recording_retention_days", 14), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"burglary", "internal-theft"}},
			{ID: "off-v-07", Predicate: No("intrusion.alarm_system"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"burglary"}},
			{ID: "off-v-08", Predicate: No("intrusion.alarm_monitored"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"burglary"}},
			{ID: "off-v-09", Predicate: No("perimeter.lighting_adequate"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"burglary", "vandalism", "workplace-violence"}},
			{ID: "off-v-10", Predicate: No("personnel.background_checks"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"internal-theft", "espionage", "workplace-violence"}},
			{ID: "off-v-11", Predicate: No("personnel.termination_procedures"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"workplace-violence", "internal-theft", "unauthorized-access"}},
			{ID: "off-v-12", Predicate: No("infosec.clean_desk_policy"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"espionage"}},
			{ID: "off-v-13", Predicate: No("infosec.server_room_locked"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"espionage", "internal-theft"}},
			{ID: "off-v-14", Predicate: No("infosec.document_shredding"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"espionage"}},
			{ID: "off-v-15", Predicate: No("emergency.action_plan"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"active-shooter", "bomb-threat", "workplace-violence", "civil-disturbance"}},
			{ID: "off-v-16", Predicate: No("emergency.drills_conducted"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"active-shooter", "bomb-threat"}},
			{ID: "off-v-17", Predicate: No("emergency.duress_alarms"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"workplace-violence", "executive-threat"}},
			{ID: "off-v-18", Predicate: No("emergency.lockdown_capability"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"active-shooter"}},
			{ID: "off-v-19", Predicate: No("mail.screening_procedures"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"bomb-threat", "executive-threat"}},

			// Threat likelihood: documented incident history
			{ID: "off-t-01", Predicate: Yes("incidents.burglary"), Target: TargetThreat, Weight: 2,
				Threats: []string{"burglary"}},
			{ID: "off-t-02", Predicate: Yes("incidents.theft"), Target: TargetThreat, Weight: 2,
				Threats: []string{"internal-theft"}},
			{ID: "off-t-03", Predicate: Yes("incidents.violence"), Target: TargetThreat, Weight: 2,
				Threats: []string{"workplace-violence"}},
			{ID: "off-t-04", Predicate: Yes("incidents.vandalism"), Target: TargetThreat, Weight: 2,
				Threats: []string{"vandalism"}},
			{ID: "off-t-05", Predicate: Yes("incidents.trespass"), Target: TargetThreat, Weight: 2,
				Threats: []string{"unauthorized-access"}},
			{ID: "off-t-06", Predicate: Yes("incidents.threats_received"), Target: TargetThreat, Weight: 2,
				Threats: []string{"bomb-threat", "executive-threat"}},

			// Threat likelihood: exposure profile
			{ID: "off-t-07", Predicate: Yes("profile.high_value_merchandise"), Target: TargetThreat, Weight: 1,
				Threats: []string{"burglary", "internal-theft"}},
			{ID: "off-t-08", Predicate: Yes("profile.executive_presence"), Target: TargetThreat, Weight: 1,
				Threats: []string{"executive-threat", "espionage"}},
			{ID: "off-t-09", Predicate: Yes("profile.sensitive_data"), Target: TargetThreat, Weight: 1,
				Threats: []string{"espionage"}},
			{ID: "off-t-10", Predicate: Yes("profile.multi_tenant"), Target: TargetThreat, Weight: 1,
				Threats: []string{"unauthorized-access"}},
			{ID: "off-t-11", Predicate: Yes("profile.high_visitor_volume"), Target: TargetThreat, Weight: 1,
				Threats: []string{"unauthorized-access", "workplace-violence"}},

			// Threat likelihood: physical configuration
			{ID: "off-t-12", Predicate: Yes("profile.always_occupied"), Target: TargetThreat, Weight: -1,
				Threats: []string{"burglary"}},
			{ID: "off-t-13", Predicate: Contains("personnel.guard_coverage", "24"), Target: TargetThreat, Weight: -1,
				Threats: []string{"burglary", "unauthorized-access"}},

			// Impact: facility scale and business function
			{ID: "off-i-01", Predicate: AtLeast("profile.headcount", 250), Target: TargetImpact, Weight: 1},
			{ID: "off-i-02", Predicate: AtLeast("profile.annual_revenue", 50_000_000), Target: TargetImpact, Weight: 1,
				Threats: []string{"burglary", "internal-theft", "espionage"}},
			{ID: "off-i-03", Predicate: Yes("profile.sensitive_data"), Target: TargetImpact, Weight: 1,
				Threats: []string{"espionage", "unauthorized-access"}},
			{ID: "off-i-04", Predicate: Yes("profile.regulated_industry"), Target: TargetImpact, Weight: 1,
				Threats: []string{"espionage", "internal-theft"}},
		},

		Gaps: []GapStatement{
			{Predicate: No("access.electronic_badge_system"),
				Threats:   []string{"unauthorized-access", "burglary", "internal-theft", "espionage"},
				Statement: "No electronic access control system; entry relies on mechanical keys that cannot be audited or quickly revoked."},
			{Predicate: No("access.visitor_management"),
				Threats:   []string{"unauthorized-access", "espionage", "workplace-violence"},
				Statement: "Visitors are not registered, badged or escorted, so non-employees move through the facility unverified."},
			{Predicate: No("surveillance.cctv_installed"),
				Threats:   []string{"burglary", "internal-theft", "vandalism", "unauthorized-access"},
				Statement: "No video surveillance coverage; incidents cannot be detected in progress or reconstructed afterward."},
			{Predicate: No("intrusion.alarm_system"),
				Threats:   []string{"burglary"},
				Statement: "No intrusion alarm system protecting the premises outside business hours."},
			{Predicate: No("perimeter.lighting_adequate"),
				Threats:   []string{"burglary", "vandalism", "workplace-violence"},
				Statement: "Exterior lighting is inadequate, providing concealment around entrances and parking areas after dark."},
			{Predicate: No("personnel.background_checks"),
				Threats:   []string{"internal-theft", "espionage", "workplace-violence"},
				Statement: "Pre-employment background screening is not performed for staff with facility access."},
			{Predicate: No("personnel.termination_procedures"),
				Threats:   []string{"workplace-violence", "internal-theft", "unauthorized-access"},
				Statement: "No formal termination procedure for recovering credentials and revoking access on separation."},
			{Predicate: No("infosec.server_room_locked"),
				Threats:   []string{"espionage", "internal-theft"},
				Statement: "Server and network rooms are not secured separately from general office space."},
			{Predicate: No("emergency.action_plan"),
				Threats:   []string{"active-shooter", "bomb-threat", "workplace-violence", "civil-disturbance"},
				Statement: "No written emergency action plan covering violence, evacuation and shelter-in-place scenarios."},
			{Predicate: No("emergency.lockdown_capability"),
				Threats:   []string{"active-shooter"},
				Statement: "The facility cannot be locked down quickly from inside during a violent intrusion."},
		},
	}
}
