package catalog

import (
	"siteguard-engine/internal/domain/models"
)

// costs is shorthand for a three-bucket cost table
func costs(smallMin, smallMax, medMin, medMax, largeMin, largeMax float64) map[models.SizeBucket]CostRange {
	return map[models.SizeBucket]CostRange{
		models.SizeSmall:  {Min: smallMin, Max: smallMax},
		models.SizeMedium: {Min: medMin, Max: medMax},
		models.SizeLarge:  {Min: largeMin, Max: largeMax},
	}
}

// Controls returns the shared mitigating-control catalog. Effectiveness
// figures are planning estimates drawn from published loss-prevention and
// physical-security research, graded by evidence confidence.
func Controls() []ControlDefinition {
	return []ControlDefinition{
		{
			ID: "electronic-access-control", Name: "Electronic Access Control System", Category: CategoryDelay,
			Description:         "Badge-based access control on perimeter and interior doors with audit logging and instant credential revocation.",
			Costs:               costs(15_000, 40_000, 40_000, 120_000, 120_000, 400_000),
			MaintenanceFraction: 0.10,
			Effectiveness: Effectiveness{RiskReduction: 0.25, EvidenceSource: "Sandia PSEEP access control studies",
				Confidence: ConfidenceHigh},
			Mitigates: []string{"unauthorized-access", "burglary", "internal-theft", "espionage", "trespass",
				"insider-sabotage"},
			ImplementedKey: "access.electronic_badge_system",
		},
		{
			ID: "video-surveillance", Name: "Video Surveillance System", Category: CategoryDetection,
			Description:         "Camera coverage of entrances, high-value areas, registers and docks with minimum 30-day retention.",
			Costs:               costs(8_000, 25_000, 25_000, 80_000, 80_000, 250_000),
			MaintenanceFraction: 0.12,
			Effectiveness: Effectiveness{RiskReduction: 0.20, EvidenceSource: "Campbell Collaboration CCTV meta-analysis",
				Confidence: ConfidenceMedium},
			Mitigates: []string{"shoplifting", "organized-retail-crime", "employee-theft", "burglary", "internal-theft",
				"vandalism", "cargo-theft", "equipment-theft", "trespass", "unauthorized-access", "hardware-theft"},
			ImplementedKey: "surveillance.cctv_installed",
		},
		{
			ID: "intrusion-alarm", Name: "Monitored Intrusion Alarm", Category: CategoryDetection,
			Description:         "Perimeter and interior intrusion detection with central-station monitoring and police dispatch.",
			Costs:               costs(3_000, 10_000, 10_000, 30_000, 30_000, 90_000),
			MaintenanceFraction: 0.20,
			Effectiveness: Effectiveness{RiskReduction: 0.30, EvidenceSource: "UNC Charlotte convicted-burglar survey",
				Confidence: ConfidenceHigh},
			Mitigates:      []string{"burglary", "trespass", "cargo-theft", "equipment-theft"},
			ImplementedKey: "intrusion.alarm_system",
		},
		{
			ID: "eas-system", Name: "Electronic Article Surveillance", Category: CategoryDetection,
			Description:         "Exit-gate tag detection with hard tags on high-shrink merchandise.",
			Costs:               costs(10_000, 20_000, 20_000, 45_000, 45_000, 120_000),
			MaintenanceFraction: 0.15,
			Effectiveness: Effectiveness{RiskReduction: 0.35, EvidenceSource: "Loss Prevention Research Council field trials",
				Confidence: ConfidenceHigh},
			Mitigates:      []string{"shoplifting", "organized-retail-crime"},
			Applicability:  Applicability{Formats: []models.FacilityType{models.FacilityRetail}},
			ImplementedKey: "retail.eas_system",
		},
		{
			ID: "merchandise-protection", Name: "High-Value Merchandise Protection", Category: CategoryDelay,
			Description:         "Locked showcases, tethers and keeper boxes for high-shrink and high-value product lines.",
			Costs:               costs(5_000, 15_000, 15_000, 40_000, 40_000, 100_000),
			MaintenanceFraction: 0.05,
			Effectiveness: Effectiveness{RiskReduction: 0.40, EvidenceSource: "LPRC product protection studies",
				Confidence: ConfidenceHigh},
			Mitigates: []string{"shoplifting", "organized-retail-crime"},
			Applicability: Applicability{Formats: []models.FacilityType{models.FacilityRetail},
				RequiresFlag: models.FlagHighValueMerchandise},
			ImplementedKey: "retail.high_shrink_items_secured",
		},
		{
			ID: "security-officers", Name: "Contract Security Officers", Category: CategoryResponse,
			Description:         "Uniformed officer presence during operating hours with patrol and incident response duties.",
			Costs:               costs(60_000, 90_000, 120_000, 200_000, 250_000, 600_000),
			MaintenanceFraction: 0.90,
			Effectiveness: Effectiveness{RiskReduction: 0.25, EvidenceSource: "ASIS guard effectiveness surveys",
				Confidence: ConfidenceMedium},
			Mitigates: []string{"robbery", "workplace-violence", "trespass", "civil-disturbance", "parking-lot-crime",
				"unauthorized-access", "shoplifting"},
			ImplementedKey: "personnel.onsite_guards",
		},
		{
			ID: "exterior-lighting", Name: "Exterior Lighting Upgrade", Category: CategoryDeterrence,
			Description:         "IES-compliant illumination of parking areas, walkways, entrances and building perimeter.",
			Costs:               costs(5_000, 15_000, 15_000, 50_000, 50_000, 150_000),
			MaintenanceFraction: 0.08,
			Effectiveness: Effectiveness{RiskReduction: 0.15, EvidenceSource: "Campbell Collaboration lighting meta-analysis",
				Confidence: ConfidenceMedium},
			Mitigates:      []string{"burglary", "vandalism", "parking-lot-crime", "trespass"},
			ImplementedKey: "perimeter.lighting_adequate",
		},
		{
			ID: "visitor-management", Name: "Visitor Management System", Category: CategoryDeterrence,
			Description:         "Registration, badging, watchlist screening and escort tracking for all non-employees.",
			Costs:               costs(2_000, 6_000, 6_000, 20_000, 20_000, 60_000),
			MaintenanceFraction: 0.20,
			Effectiveness: Effectiveness{RiskReduction: 0.15, EvidenceSource: "ASIS workplace access studies",
				Confidence: ConfidenceLow},
			Mitigates:      []string{"unauthorized-access", "espionage", "workplace-violence", "social-engineering"},
			ImplementedKey: "access.visitor_management",
		},
		{
			ID: "cash-management", Name: "Cash Management Program", Category: CategoryDeterrence,
			Description:         "Drawer limits, scheduled pulls, time-delay drops and armored carrier pickup.",
			Costs:               costs(1_000, 3_000, 3_000, 8_000, 8_000, 25_000),
			MaintenanceFraction: 0.30,
			Effectiveness: Effectiveness{RiskReduction: 0.30, EvidenceSource: "NIOSH robbery prevention evaluations",
				Confidence: ConfidenceHigh},
			Mitigates:      []string{"robbery", "employee-theft"},
			Applicability:  Applicability{Formats: []models.FacilityType{models.FacilityRetail}},
			ImplementedKey: "retail.cash_management_policy",
		},
		{
			ID: "smart-safe", Name: "Smart Safe / Time-Delay Safe", Category: CategoryDelay,
			Description:         "Time-delay deposit safe with bill validation and provisional credit.",
			Costs:               costs(4_000, 8_000, 8_000, 18_000, 18_000, 50_000),
			MaintenanceFraction: 0.15,
			Effectiveness: Effectiveness{RiskReduction: 0.25, EvidenceSource: "NIOSH robbery prevention evaluations",
				Confidence: ConfidenceHigh},
			Mitigates:      []string{"robbery", "burglary"},
			Applicability:  Applicability{Formats: []models.FacilityType{models.FacilityRetail}},
			ImplementedKey: "retail.safe_installed",
		},
		{
			ID: "pos-analytics", Name: "POS Exception Analytics", Category: CategoryDetection,
			Description:         "Transaction exception reporting for refunds, voids, discounts and no-sales tied to associate and camera.",
			Costs:               costs(3_000, 8_000, 8_000, 25_000, 25_000, 75_000),
			MaintenanceFraction: 0.25,
			Effectiveness: Effectiveness{RiskReduction: 0.40, EvidenceSource: "LPRC exception reporting trials",
				Confidence: ConfidenceHigh},
			Mitigates:      []string{"refund-fraud", "employee-theft"},
			Applicability:  Applicability{Formats: []models.FacilityType{models.FacilityRetail}},
			ImplementedKey: "retail.pos_exception_monitoring",
		},
		{
			ID: "background-screening", Name: "Pre-Employment Screening Program", Category: CategoryDeterrence,
			Description:         "Criminal history, employment verification and reference checks for all staff and embedded contractors.",
			Costs:               costs(2_000, 5_000, 5_000, 15_000, 15_000, 50_000),
			MaintenanceFraction: 0.60,
			Effectiveness: Effectiveness{RiskReduction: 0.20, EvidenceSource: "ACFE occupational fraud reports",
				Confidence: ConfidenceMedium},
			Mitigates: []string{"internal-theft", "employee-theft", "insider-sabotage", "espionage", "ip-theft",
				"workplace-violence", "sabotage"},
			ImplementedKey: "personnel.background_checks",
		},
		{
			ID: "duress-alarms", Name: "Duress Alarm Points", Category: CategoryResponse,
			Description:         "Fixed and wearable duress buttons at registers, reception and executive areas with monitored response.",
			Costs:               costs(1_500, 4_000, 4_000, 12_000, 12_000, 35_000),
			MaintenanceFraction: 0.15,
			Effectiveness: Effectiveness{RiskReduction: 0.10, EvidenceSource: "vendor response-time case studies",
				Confidence: ConfidenceLow},
			Mitigates:      []string{"robbery", "workplace-violence", "executive-threat", "active-shooter"},
			ImplementedKey: "emergency.duress_alarms",
		},
		{
			ID: "emergency-program", Name: "Emergency Preparedness Program", Category: CategoryResponse,
			Description:         "Written emergency action plan, lockdown procedures, drills and staff violence-response training.",
			Costs:               costs(3_000, 8_000, 8_000, 20_000, 20_000, 60_000),
			MaintenanceFraction: 0.30,
			Effectiveness: Effectiveness{RiskReduction: 0.15, EvidenceSource: "FEMA preparedness outcome reviews",
				Confidence: ConfidenceMedium},
			Mitigates: []string{"active-shooter", "bomb-threat", "workplace-violence", "arson", "hazmat-release",
				"civil-disturbance"},
			ImplementedKey: "emergency.action_plan",
		},
		{
			ID: "perimeter-fencing", Name: "Perimeter Fencing and Gates", Category: CategoryDelay,
			Description:         "Anti-climb perimeter fence with controlled vehicle and pedestrian gates.",
			Costs:               costs(20_000, 50_000, 50_000, 150_000, 150_000, 500_000),
			MaintenanceFraction: 0.05,
			Effectiveness: Effectiveness{RiskReduction: 0.20, EvidenceSource: "TAPA facility security requirements data",
				Confidence: ConfidenceMedium},
			Mitigates: []string{"trespass", "cargo-theft", "equipment-theft", "utility-attack", "sabotage"},
			Applicability: Applicability{Formats: []models.FacilityType{models.FacilityManufacturing,
				models.FacilityDatacenter}},
			ImplementedKey: "perimeter.fencing",
		},
		{
			ID: "vehicle-barriers", Name: "Vehicle Barriers / Bollards", Category: CategoryDelay,
			Description:         "Crash-rated bollards and barriers protecting the building face and utility yard from vehicle approach.",
			Costs:               costs(25_000, 60_000, 60_000, 150_000, 150_000, 400_000),
			MaintenanceFraction: 0.03,
			Effectiveness: Effectiveness{RiskReduction: 0.50, EvidenceSource: "DoD anti-ram barrier certification data",
				Confidence: ConfidenceHigh},
			Mitigates:      []string{"vehicle-attack"},
			Applicability:  Applicability{Formats: []models.FacilityType{models.FacilityDatacenter}},
			ImplementedKey: "perimeter.bollards",
		},
		{
			ID: "mantrap-portal", Name: "Mantrap Entry Portal", Category: CategoryDelay,
			Description:         "Interlocked two-door portal with anti-tailgating detection at data hall entry.",
			Costs:               costs(30_000, 60_000, 60_000, 120_000, 120_000, 300_000),
			MaintenanceFraction: 0.08,
			Effectiveness: Effectiveness{RiskReduction: 0.35, EvidenceSource: "TIA-942 tiered facility guidance",
				Confidence: ConfidenceHigh},
			Mitigates:      []string{"unauthorized-access", "social-engineering", "hardware-theft"},
			Applicability:  Applicability{Formats: []models.FacilityType{models.FacilityDatacenter}},
			ImplementedKey: "dc.mantrap_entry",
		},
		{
			ID: "cabinet-locking", Name: "Cabinet-Level Locking", Category: CategoryDelay,
			Description:         "Electronic rack locks with per-cabinet authorization and audit trail.",
			Costs:               costs(10_000, 25_000, 25_000, 75_000, 75_000, 200_000),
			MaintenanceFraction: 0.10,
			Effectiveness: Effectiveness{RiskReduction: 0.30, EvidenceSource: "colocation audit findings aggregate",
				Confidence: ConfidenceMedium},
			Mitigates: []string{"hardware-theft", "espionage", "insider-sabotage"},
			Applicability: Applicability{Formats: []models.FacilityType{models.FacilityDatacenter},
				RequiresFlag: models.FlagMultiTenant},
			ImplementedKey: "dc.rack_locks",
		},
		{
			ID: "shipment-verification", Name: "Shipment Verification Program", Category: CategoryDetection,
			Description:         "Seal control, order-to-load verification and driver identity checks at shipping and receiving.",
			Costs:               costs(5_000, 12_000, 12_000, 35_000, 35_000, 100_000),
			MaintenanceFraction: 0.25,
			Effectiveness: Effectiveness{RiskReduction: 0.35, EvidenceSource: "TAPA incident trend analysis",
				Confidence: ConfidenceHigh},
			Mitigates:      []string{"cargo-theft", "supply-chain-tamper"},
			Applicability:  Applicability{Formats: []models.FacilityType{models.FacilityManufacturing}},
			ImplementedKey: "mfg.shipping_verification",
		},
		{
			ID: "executive-protection", Name: "Executive Protection Program", Category: CategoryResponse,
			Description:         "Threat assessment, travel security and residence liaison for targeted senior leadership.",
			Costs:               costs(25_000, 60_000, 60_000, 150_000, 150_000, 400_000),
			MaintenanceFraction: 0.70,
			Effectiveness: Effectiveness{RiskReduction: 0.30, EvidenceSource: "ASIS executive protection benchmarks",
				Confidence: ConfidenceLow},
			Mitigates:      []string{"executive-threat", "espionage"},
			Applicability:  Applicability{RequiresFlag: models.FlagExecutivePresence},
			ImplementedKey: "exec.protection_program",
		},
	}
}
