package catalog

import (
	"siteguard-engine/internal/domain/models"
)

// ManufacturingCatalog returns the threat catalog and rule tables for
// manufacturing plants and distribution warehouses.
func ManufacturingCatalog() *FacilityCatalog {
	return &FacilityCatalog{
		FacilityType:          models.FacilityManufacturing,
		VulnerabilityBaseline: 3,
		StabilityDivisor:      3,

		Threats: []ThreatDefinition{
			{
				ID: "cargo-theft", Name: "Cargo / Inventory Theft", Category: "property-crime",
				BaselineLikelihood: 3, BaselineImpact: 4,
				Description: "Theft of finished goods or raw material from docks, yards or trailers.",
				Reference:   "TAPA-FSR-A",
			},
			{
				ID: "equipment-theft", Name: "Equipment and Tool Theft", Category: "property-crime",
				BaselineLikelihood: 3, BaselineImpact: 3,
				Description: "Theft of tooling, metals and portable equipment from the production floor.",
				Reference:   "UCR-230",
			},
			{
				ID: "sabotage", Name: "Sabotage", Category: "disruption",
				BaselineLikelihood: 2, BaselineImpact: 4,
				Description: "Deliberate damage to production equipment or product by insiders or intruders.",
				Reference:   "CISA-IT-1",
			},
			{
				ID: "trespass", Name: "Trespass / Unauthorized Entry", Category: "intrusion",
				BaselineLikelihood: 3, BaselineImpact: 2,
				Description: "Entry onto the site perimeter or into buildings by unauthorized persons.",
				Reference:   "ASIS-GSRA-5.2",
			},
			{
				ID: "workplace-violence", Name: "Workplace Violence", Category: "violence",
				BaselineLikelihood: 2, BaselineImpact: 4,
				Description: "Assault or threats between workers, contractors or former employees.",
				Reference:   "ASIS-WVPI-1",
			},
			{
				ID: "active-shooter", Name: "Active Assailant", Category: "violence",
				BaselineLikelihood: 1, BaselineImpact: 5, LifeSafety: true,
				Description: "Armed assailant attacking workers on the production floor or in offices.",
				Reference:   "DHS-AS-2017",
			},
			{
				ID: "ip-theft", Name: "Intellectual Property Theft", Category: "espionage",
				BaselineLikelihood: 2, BaselineImpact: 4,
				Description: "Theft of designs, formulas or process documentation through physical access.",
				Reference:   "NISPOM-1-302",
			},
			{
				ID: "arson", Name: "Arson / Incendiary Attack", Category: "disruption",
				BaselineLikelihood: 1, BaselineImpact: 5, LifeSafety: true,
				Description: "Deliberate fire-setting threatening life and continuity of operations.",
				Reference:   "NFPA-730-9",
			},
			{
				ID: "supply-chain-tamper", Name: "Supply Chain Tampering", Category: "disruption",
				BaselineLikelihood: 2, BaselineImpact: 4,
				Description: "Introduction of counterfeit or adulterated material into inbound or outbound product.",
				Reference:   "TAPA-TSR-2",
			},
			{
				ID: "hazmat-release", Name: "Hazardous Material Release", Category: "disruption",
				BaselineLikelihood: 1, BaselineImpact: 5, LifeSafety: true,
				Description: "Malicious or negligent release of stored hazardous material.",
				Reference:   "EPA-RMP-68",
			},
		},

		Rules: []ScoringRule{
			// Vulnerability gaps
			{ID: "mfg-v-01", Predicate: No("perimeter.fencing"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"trespass", "cargo-theft", "equipment-theft", "sabotage"}},
			{ID: "mfg-v-02", Predicate: No("perimeter.lighting_adequate"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"trespass", "cargo-theft", "equipment-theft"}},
			{ID: "mfg-v-03", Predicate: No("access.electronic_badge_system"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"trespass", "ip-theft", "sabotage", "equipment-theft"}},
			{ID: "mfg-v-04", Predicate: No("mfg.shipping_verification"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"cargo-theft", "supply-chain-tamper"}},
			{ID: "mfg-v-05", Predicate: No("mfg.inventory_audits"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"cargo-theft", "equipment-theft"}},
			{ID: "mfg-v-06", Predicate: No("mfg.contractor_escort"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"ip-theft", "sabotage", "trespass"}},
			{ID: "mfg-v-07", Predicate: No("mfg.hazmat_secured"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"hazmat-release", "sabotage"}},
			{ID: "mfg-v-08", Predicate: No("surveillance.cctv_installed"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"cargo-theft", "equipment-theft", "trespass", "sabotage"}},
			{ID: "mfg-v-09", Predicate: AnyOf("surveillance.cctv_blind_spots", "loading_dock", "yard", "perimeter"),
				Target: TargetVulnerability, Weight: 2,
				Threats: []string{"cargo-theft", "trespass"}},
			{ID: "mfg-v-10", Predicate: No("intrusion.alarm_system"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"cargo-theft", "equipment-theft", "trespass"}},
			{ID: "mfg-v-11", Predicate: No("personnel.background_checks"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"equipment-theft", "sabotage", "ip-theft", "workplace-violence"}},
			{ID: "mfg-v-12", Predicate: No("personnel.termination_procedures"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"sabotage", "workplace-violence"}},
			{ID: "mfg-v-13", Predicate: No("emergency.action_plan"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"active-shooter", "arson", "hazmat-release", "workplace-violence"}},
			{ID: "mfg-v-14", Predicate: No("emergency.drills_conducted"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"active-shooter", "arson", "hazmat-release"}},
			{ID: "mfg-v-15", Predicate: No("fire.detection_system"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"arson"}},
			{ID: "mfg-v-16", Predicate: No("infosec.document_shredding"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"ip-theft"}},
			{ID: "mfg-v-17", Predicate: AtMost("surveillance.recording_retention_days", 30), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"cargo-theft", "supply-chain-tamper"}},

			// Threat likelihood: documented incident history
			{ID: "mfg-t-01", Predicate: Yes("incidents.cargo_theft"), Target: TargetThreat, Weight: 2,
				Threats: []string{"cargo-theft"}},
			{ID: "mfg-t-02", Predicate: Yes("incidents.theft"), Target: TargetThreat, Weight: 2,
				Threats: []string{"equipment-theft"}},
			{ID: "mfg-t-03", Predicate: Yes("incidents.trespass"), Target: TargetThreat, Weight: 2,
				Threats: []string{"trespass"}},
			{ID: "mfg-t-04", Predicate: Yes("incidents.violence"), Target: TargetThreat, Weight: 2,
				Threats: []string{"workplace-violence"}},
			{ID: "mfg-t-05", Predicate: Yes("incidents.sabotage"), Target: TargetThreat, Weight: 2,
				Threats: []string{"sabotage", "supply-chain-tamper"}},

			// Threat likelihood: exposure profile
			{ID: "mfg-t-06", Predicate: Yes("profile.high_value_merchandise"), Target: TargetThreat, Weight: 1,
				Threats: []string{"cargo-theft", "equipment-theft"}},
			{ID: "mfg-t-07", Predicate: Yes("profile.sensitive_data"), Target: TargetThreat, Weight: 1,
				Threats: []string{"ip-theft"}},
			{ID: "mfg-t-08", Predicate: Contains("mfg.commodity_type", "electronics"), Target: TargetThreat, Weight: 1,
				Threats: []string{"cargo-theft"}},
			{ID: "mfg-t-09", Predicate: Yes("mfg.labor_dispute_active"), Target: TargetThreat, Weight: 1,
				Threats: []string{"sabotage", "workplace-violence"}},

			// Threat likelihood: physical configuration
			{ID: "mfg-t-10", Predicate: Yes("profile.always_occupied"), Target: TargetThreat, Weight: -1,
				Threats: []string{"cargo-theft", "equipment-theft", "trespass"}},
			{ID: "mfg-t-11", Predicate: Contains("personnel.guard_coverage", "24"), Target: TargetThreat, Weight: -1,
				Threats: []string{"cargo-theft", "trespass", "arson"}},

			// Impact: facility scale and business function
			{ID: "mfg-i-01", Predicate: AtLeast("profile.headcount", 200), Target: TargetImpact, Weight: 1},
			{ID: "mfg-i-02", Predicate: AtLeast("profile.annual_revenue", 100_000_000), Target: TargetImpact, Weight: 1,
				Threats: []string{"cargo-theft", "sabotage", "supply-chain-tamper"}},
			{ID: "mfg-i-03", Predicate: Yes("profile.regulated_industry"), Target: TargetImpact, Weight: 1,
				Threats: []string{"supply-chain-tamper", "hazmat-release", "ip-theft"}},
			{ID: "mfg-i-04", Predicate: Yes("mfg.single_site_production"), Target: TargetImpact, Weight: 1,
				Threats: []string{"sabotage", "arson"}},
		},

		Gaps: []GapStatement{
			{Predicate: No("perimeter.fencing"),
				Threats:   []string{"trespass", "cargo-theft", "equipment-theft", "sabotage"},
				Statement: "The site perimeter is unfenced; vehicles and persons reach buildings and yard storage unchallenged."},
			{Predicate: No("mfg.shipping_verification"),
				Threats:   []string{"cargo-theft", "supply-chain-tamper"},
				Statement: "Outbound shipments are not verified against orders, enabling dock-level diversion and tampering."},
			{Predicate: No("mfg.inventory_audits"),
				Threats:   []string{"cargo-theft", "equipment-theft"},
				Statement: "No cyclical inventory audits; shrinkage surfaces only at annual count, long after the loss."},
			{Predicate: No("mfg.contractor_escort"),
				Threats:   []string{"ip-theft", "sabotage", "trespass"},
				Statement: "Contractors and vendors move through production areas unescorted."},
			{Predicate: No("mfg.hazmat_secured"),
				Threats:   []string{"hazmat-release", "sabotage"},
				Statement: "Hazardous material storage is not locked or access-logged."},
			{Predicate: No("surveillance.cctv_installed"),
				Threats:   []string{"cargo-theft", "equipment-theft", "trespass", "sabotage"},
				Statement: "No camera coverage of docks, yard or production floor."},
			{Predicate: No("personnel.background_checks"),
				Threats:   []string{"equipment-theft", "sabotage", "ip-theft", "workplace-violence"},
				Statement: "Workers and temporary labor are placed without background screening."},
			{Predicate: No("emergency.action_plan"),
				Threats:   []string{"active-shooter", "arson", "hazmat-release", "workplace-violence"},
				Statement: "No emergency action plan covering violence, fire or hazardous material scenarios."},
			{Predicate: No("fire.detection_system"),
				Threats:   []string{"arson"},
				Statement: "No automatic fire detection in production or storage areas."},
		},
	}
}
