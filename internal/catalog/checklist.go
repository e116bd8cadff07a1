package catalog

// Posture checklist categories
const (
	CategoryAccessControl = "access_control"
	CategorySurveillance  = "surveillance"
	CategoryIntrusion     = "intrusion_detection"
	CategoryEmergency     = "emergency_preparedness"
	CategoryPersonnel     = "personnel"
	CategoryInfoSec       = "information_security"
	CategoryPerimeter     = "perimeter"
)

// Checklist returns the facility-agnostic posture checklist. Items are
// evaluated in declaration order, which fixes the order findings and
// strengths appear in the posture summary.
func Checklist() []ChecklistItem {
	return []ChecklistItem{
		// access control
		{Category: CategoryAccessControl, Predicate: Yes("access.electronic_badge_system"),
			Finding:  "No electronic access control; doors rely on mechanical keys that cannot be audited or quickly revoked",
			Strength: "Electronic access control provides auditable, revocable entry credentials"},
		{Category: CategoryAccessControl, Predicate: Yes("access.visitor_management"),
			Finding:  "Visitors are not registered, badged or escorted",
			Strength: "A visitor management process registers and badges all non-employees"},
		{Category: CategoryAccessControl, Predicate: Yes("access.after_hours_restricted"),
			Finding:  "After-hours access is not restricted to an authorized subset of staff",
			Strength: "After-hours access is limited to an authorized list"},
		{Category: CategoryAccessControl, Predicate: Yes("access.key_inventory_current"),
			Finding:  "No inventory of issued mechanical keys is maintained",
			Strength: "Issued mechanical keys are inventoried and accounted for"},

		// surveillance
		{Category: CategorySurveillance, Predicate: Yes("surveillance.cctv_installed"),
			Finding:  "No camera coverage of entrances or critical areas",
			Strength: "Camera coverage is in place at entrances and critical areas"},
		{Category: CategorySurveillance, Predicate: AtLeast("surveillance.recording_retention_days", 30),
			Finding:  "Video retention is under 30 days, limiting investigative value",
			Strength: "Video is retained for at least 30 days"},

		// intrusion detection
		{Category: CategoryIntrusion, Predicate: Yes("intrusion.alarm_system"),
			Finding:  "No monitored intrusion alarm protects the facility outside business hours",
			Strength: "A monitored intrusion alarm protects the facility outside business hours"},
		{Category: CategoryIntrusion, Predicate: Yes("emergency.duress_alarms"),
			Finding:  "Staff in exposed positions have no duress alarm",
			Strength: "Duress alarms are available to staff in exposed positions"},

		// emergency preparedness
		{Category: CategoryEmergency, Predicate: Yes("emergency.action_plan"),
			Finding:  "No written emergency action plan exists",
			Strength: "A written emergency action plan is in place"},
		{Category: CategoryEmergency, Predicate: Yes("emergency.drills_conducted"),
			Finding:  "Emergency drills are not conducted",
			Strength: "Emergency drills are conducted on a recurring schedule"},
		{Category: CategoryEmergency, Predicate: Yes("emergency.lockdown_capability"),
			Finding:  "No lockdown procedure is defined for violence events",
			Strength: "A lockdown procedure is defined and communicated"},

		// personnel
		{Category: CategoryPersonnel, Predicate: Yes("personnel.background_checks"),
			Finding:  "Staff are hired without background screening",
			Strength: "All staff undergo pre-employment background screening"},
		{Category: CategoryPersonnel, Predicate: Yes("personnel.termination_procedures"),
			Finding:  "Departing staff retain credentials; no same-day revocation process exists",
			Strength: "A termination process revokes credentials on the last day of employment"},
		{Category: CategoryPersonnel, Predicate: Yes("personnel.security_training"),
			Finding:  "Staff receive no security awareness training",
			Strength: "Staff receive recurring security awareness training"},

		// information security
		{Category: CategoryInfoSec, Predicate: Yes("infosec.clean_desk_policy"),
			Finding:  "Sensitive documents are left accessible; no clean desk policy is enforced",
			Strength: "A clean desk policy keeps sensitive documents secured"},
		{Category: CategoryInfoSec, Predicate: Yes("infosec.document_shredding"),
			Finding:  "Sensitive documents are discarded without shredding",
			Strength: "Sensitive documents are destroyed by shredding"},

		// perimeter
		{Category: CategoryPerimeter, Predicate: Yes("perimeter.lighting_adequate"),
			Finding:  "Exterior lighting leaves parking areas and approaches in darkness",
			Strength: "Exterior lighting covers parking areas and building approaches"},
		{Category: CategoryPerimeter, Predicate: No("perimeter.blind_spots_reported"),
			Finding:  "Unlit or unobserved blind spots have been reported on the property",
			Strength: "No blind spots have been reported on the property"},
	}
}
