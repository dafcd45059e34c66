package scoring

// RiskLevel labels the AI-risk classification of an applicant.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	// RiskCritical is only ever sourced from an external final assessment;
	// the engine never computes it.
	RiskCritical RiskLevel = "critical"
)

// ClassifyCombined maps a combined 0-100 AI score onto a risk level. Both
// bounds are inclusive: exactly 70 is high, exactly 40 is moderate.
func ClassifyCombined(score int) RiskLevel {
	switch {
	case score >= 70:
		return RiskHigh
	case score >= 40:
		return RiskModerate
	default:
		return RiskLow
	}
}

// Display labels for the 0-10 overall analysis scale.
const (
	OverallHigh   = "Alto"
	OverallMedium = "Medio"
	OverallLow    = "Bajo"
)

// ClassifyOverall maps an externally supplied 0-10 overall analysis score
// onto its display label.
func ClassifyOverall(score float64) string {
	switch {
	case score >= 7:
		return OverallHigh
	case score >= 4:
		return OverallMedium
	default:
		return OverallLow
	}
}

// ResolveRisk prefers an externally supplied final-assessment risk level,
// passed through verbatim, over the locally computed classification.
func ResolveRisk(finalAssessment, computed RiskLevel) RiskLevel {
	if finalAssessment != "" {
		return finalAssessment
	}
	return computed
}
