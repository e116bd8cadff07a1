package catalog

import (
	"siteguard-engine/internal/domain/models"
)

// RetailCatalog returns the threat catalog and rule tables for retail stores.
// Retail sees high baseline event frequency, so gap points are divided by 2
// rather than 3 to keep one or two isolated weaknesses from saturating V.
func RetailCatalog() *FacilityCatalog {
	return &FacilityCatalog{
		FacilityType:          models.FacilityRetail,
		VulnerabilityBaseline: 3,
		StabilityDivisor:      2,

		Threats: []ThreatDefinition{
			{
				ID: "shoplifting", Name: "Shoplifting", Category: "property-crime",
				BaselineLikelihood: 4, BaselineImpact: 2,
				Description: "Opportunistic theft of merchandise by customers during business hours.",
				Reference:   "NRF-NRSS-1",
			},
			{
				ID: "organized-retail-crime", Name: "Organized Retail Crime", Category: "property-crime",
				BaselineLikelihood: 3, BaselineImpact: 3,
				Description: "Coordinated group theft targeting high-value merchandise for resale.",
				Reference:   "NRF-ORC-3",
			},
			{
				ID: "employee-theft", Name: "Employee Theft", Category: "property-crime",
				BaselineLikelihood: 3, BaselineImpact: 3,
				Description: "Merchandise, cash or refund theft by store associates.",
				Reference:   "ACFE-RTN-A2",
			},
			{
				ID: "robbery", Name: "Robbery", Category: "violence",
				BaselineLikelihood: 2, BaselineImpact: 4,
				Description: "Theft of cash or merchandise by force or threat of force against staff.",
				Reference:   "UCR-030",
			},
			{
				ID: "burglary", Name: "Burglary / Break-In", Category: "property-crime",
				BaselineLikelihood: 3, BaselineImpact: 3,
				Description: "After-hours forced entry targeting stock and cash on premises.",
				Reference:   "UCR-220",
			},
			{
				ID: "refund-fraud", Name: "Return / Refund Fraud", Category: "fraud",
				BaselineLikelihood: 3, BaselineImpact: 2,
				Description: "Fraudulent returns, receipt manipulation and POS abuse.",
				Reference:   "NRF-RF-2",
			},
			{
				ID: "vandalism", Name: "Vandalism", Category: "property-crime",
				BaselineLikelihood: 2, BaselineImpact: 2,
				Description: "Storefront, signage or fixture damage including glass breakage.",
				Reference:   "UCR-290",
			},
			{
				ID: "active-shooter", Name: "Active Assailant", Category: "violence",
				BaselineLikelihood: 1, BaselineImpact: 5, LifeSafety: true,
				Description: "Armed assailant actively attacking customers or staff in the store.",
				Reference:   "DHS-AS-2017",
			},
			{
				ID: "parking-lot-crime", Name: "Parking Lot Crime", Category: "violence",
				BaselineLikelihood: 3, BaselineImpact: 3,
				Description: "Assault, robbery or vehicle crime against customers and staff on the lot.",
				Reference:   "CPTED-PL-1",
			},
			{
				ID: "civil-disturbance", Name: "Civil Disturbance / Looting", Category: "external",
				BaselineLikelihood: 2, BaselineImpact: 3,
				Description: "Unrest escalating into storefront damage and mass theft.",
				Reference:   "FEMA-386-7",
			},
		},

		Rules: []ScoringRule{
			// Vulnerability gaps
			{ID: "ret-v-01", Predicate: No("retail.eas_system"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"shoplifting", "organized-retail-crime"}},
			{ID: "ret-v-02", Predicate: No("retail.high_shrink_items_secured"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"shoplifting", "organized-retail-crime"}},
			{ID: "ret-v-03", Predicate: No("surveillance.cctv_installed"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"shoplifting", "organized-retail-crime", "employee-theft", "robbery", "burglary", "refund-fraud"}},
			{ID: "ret-v-04", Predicate: AnyOf("surveillance.cctv_blind_spots", "stockroom", "registers", "entrances", "receiving"),
				Target: TargetVulnerability, Weight: 2,
				Threats: []string{"employee-theft", "shoplifting", "organized-retail-crime"}},
			{ID: "ret-v-05", Predicate: No("retail.cash_management_policy"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"robbery", "employee-theft"}},
			{ID: "ret-v-06", Predicate: No("retail.safe_installed"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"robbery", "burglary"}},
			{ID: "ret-v-07", Predicate: No("retail.pos_exception_monitoring"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"refund-fraud", "employee-theft"}},
			{ID: "ret-v-08", Predicate: No("retail.fitting_room_controls"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"shoplifting"}},
			{ID: "ret-v-09", Predicate: No("intrusion.alarm_system"), Target: TargetVulnerability, Weight: 3,
				Threats: []string{"burglary"}},
			{ID: "ret-v-10", Predicate: No("intrusion.glass_break_sensors"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"burglary", "civil-disturbance"}},
			{ID: "ret-v-11", Predicate: No("perimeter.lighting_adequate"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"parking-lot-crime", "burglary", "vandalism"}},
			{ID: "ret-v-12", Predicate: No("perimeter.lot_patrols"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"parking-lot-crime"}},
			{ID: "ret-v-13", Predicate: No("personnel.background_checks"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"employee-theft", "refund-fraud"}},
			{ID: "ret-v-14", Predicate: No("personnel.security_training"), Target: TargetVulnerability, Weight: 1,
				Threats: []string{"shoplifting", "robbery", "refund-fraud"}},
			{ID: "ret-v-15", Predicate: No("emergency.action_plan"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"active-shooter", "robbery", "civil-disturbance"}},
			{ID: "ret-v-16", Predicate: No("emergency.duress_alarms"), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"robbery", "active-shooter"}},
			{ID: "ret-v-17", Predicate: AtMost("retail.staff_per_shift", 2), Target: TargetVulnerability, Weight: 2,
				Threats: []string{"robbery", "shoplifting"}},

			// Threat likelihood: documented incident history
			{ID: "ret-t-01", Predicate: Yes("incidents.shoplifting"), Target: TargetThreat, Weight: 2,
				Threats: []string{"shoplifting", "organized-retail-crime"}},
			{ID: "ret-t-02", Predicate: Yes("incidents.robbery"), Target: TargetThreat, Weight: 2,
				Threats: []string{"robbery"}},
			{ID: "ret-t-03", Predicate: Yes("incidents.burglary"), Target: TargetThreat, Weight: 2,
				Threats: []string{"burglary"}},
			{ID: "ret-t-04", Predicate: Yes("incidents.theft"), Target: TargetThreat, Weight: 2,
				Threats: []string{"employee-theft", "refund-fraud"}},
			{ID: "ret-t-05", Predicate: Yes("incidents.parking_lot"), Target: TargetThreat, Weight: 2,
				Threats: []string{"parking-lot-crime"}},

			// Threat likelihood: exposure profile
			{ID: "ret-t-06", Predicate: Yes("profile.high_value_merchandise"), Target: TargetThreat, Weight: 1,
				Threats: []string{"organized-retail-crime", "burglary", "robbery"}},
			{ID: "ret-t-07", Predicate: Yes("profile.high_visitor_volume"), Target: TargetThreat, Weight: 1,
				Threats: []string{"shoplifting", "parking-lot-crime"}},
			{ID: "ret-t-08", Predicate: Contains("retail.cash_handling", "large"), Target: TargetThreat, Weight: 1,
				Threats: []string{"robbery", "burglary"}},
			{ID: "ret-t-09", Predicate: Yes("retail.late_hours"), Target: TargetThreat, Weight: 1,
				Threats: []string{"robbery", "parking-lot-crime"}},

			// Threat likelihood: physical configuration
			{ID: "ret-t-10", Predicate: Yes("profile.always_occupied"), Target: TargetThreat, Weight: -1,
				Threats: []string{"burglary"}},
			{ID: "ret-t-11", Predicate: Contains("personnel.guard_coverage", "24"), Target: TargetThreat, Weight: -1,
				Threats: []string{"burglary", "civil-disturbance"}},

			// Impact: facility scale and business function
			{ID: "ret-i-01", Predicate: AtLeast("profile.annual_revenue", 10_000_000), Target: TargetImpact, Weight: 1,
				Threats: []string{"organized-retail-crime", "burglary", "civil-disturbance", "employee-theft"}},
			{ID: "ret-i-02", Predicate: Yes("profile.high_value_merchandise"), Target: TargetImpact, Weight: 1,
				Threats: []string{"organized-retail-crime", "burglary", "robbery"}},
			{ID: "ret-i-03", Predicate: AtLeast("profile.headcount", 50), Target: TargetImpact, Weight: 1,
				Threats: []string{"robbery", "parking-lot-crime"}},
		},

		Gaps: []GapStatement{
			{Predicate: No("retail.eas_system"),
				Threats:   []string{"shoplifting", "organized-retail-crime"},
				Statement: "No electronic article surveillance; merchandise leaves the store without any exit detection."},
			{Predicate: No("retail.high_shrink_items_secured"),
				Threats:   []string{"shoplifting", "organized-retail-crime"},
				Statement: "High-shrink merchandise is displayed openly rather than in locked or tethered fixtures."},
			{Predicate: No("surveillance.cctv_installed"),
				Threats:   []string{"shoplifting", "organized-retail-crime", "employee-theft", "robbery", "burglary", "refund-fraud"},
				Statement: "No camera coverage of the sales floor, registers or receiving; losses cannot be detected or evidenced."},
			{Predicate: No("retail.cash_management_policy"),
				Threats:   []string{"robbery", "employee-theft"},
				Statement: "No cash management policy limiting drawer amounts and scheduling pulls, leaving large amounts exposed."},
			{Predicate: No("retail.pos_exception_monitoring"),
				Threats:   []string{"refund-fraud", "employee-theft"},
				Statement: "POS exception reporting is not monitored, so refund and void abuse patterns go unnoticed."},
			{Predicate: No("intrusion.alarm_system"),
				Threats:   []string{"burglary"},
				Statement: "No intrusion alarm protecting the store outside trading hours."},
			{Predicate: No("perimeter.lighting_adequate"),
				Threats:   []string{"parking-lot-crime", "burglary", "vandalism"},
				Statement: "Parking areas and the building approach are poorly lit after dark."},
			{Predicate: No("emergency.duress_alarms"),
				Threats:   []string{"robbery", "active-shooter"},
				Statement: "Registers and offices lack duress alarms for summoning help silently during a robbery."},
			{Predicate: No("personnel.security_training"),
				Threats:   []string{"shoplifting", "robbery", "refund-fraud"},
				Statement: "Associates are not trained on theft deterrence, robbery response or fraud recognition."},
			{Predicate: AtMost("retail.staff_per_shift", 2),
				Threats:   []string{"robbery", "shoplifting"},
				Statement: "Minimal staffing per shift leaves the floor unobserved and single employees exposed at close."},
		},
	}
}
