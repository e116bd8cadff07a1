package models

// LetterGrade is the A-F grade derived from the overall posture score
type LetterGrade string

const (
	GradeA LetterGrade = "A"
	GradeB LetterGrade = "B"
	GradeC LetterGrade = "C"
	GradeD LetterGrade = "D"
	GradeF LetterGrade = "F"
)

// GradeFor maps a 0-100 posture score to a letter grade via fixed bands
func GradeFor(score float64) LetterGrade {
	switch {
	case score >= 90:
		return GradeA
	case score >= 80:
		return GradeB
	case score >= 70:
		return GradeC
	case score >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// CategoryScore is the checklist result for one control category
type CategoryScore struct {
	Satisfied int     `json:"satisfied"`
	Total     int     `json:"total"`
	Pct       float64 `json:"pct"`
}

// SecurityPostureSummary is the facility-level roll-up of one scoring run.
// Findings and strengths keep checklist evaluation order, not severity order,
// so consecutive runs over the same responses compare byte-for-byte.
type SecurityPostureSummary struct {
	OverallScore      float64                  `json:"overall_score"` // 0-100
	LetterGrade       LetterGrade              `json:"letter_grade"`
	PerCategoryScores map[string]CategoryScore `json:"per_category_scores"`
	TopFindings       []string                 `json:"top_findings"`
	TopStrengths      []string                 `json:"top_strengths"`
	RiskLevelCounts   map[RiskLevel]int        `json:"risk_level_counts"`
}
