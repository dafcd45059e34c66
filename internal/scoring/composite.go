package scoring

import "math"

// Settings are the aggregation weights and penalty caps. They are threaded
// explicitly into every aggregation call; the engine holds no ambient
// configuration. Weights are percentage-like integers.
type Settings struct {
	AutoAnalysisWeight int `json:"auto_analysis_weight"`
	IABackWeight       int `json:"ia_back_weight"`
	IAFrontWeight      int `json:"ia_front_weight"`
	MaxIABackPenalty   int `json:"max_ia_back_penalty"`
	MaxIAFrontPenalty  int `json:"max_ia_front_penalty"`
}

// DefaultSettings returns the documented defaults applied whenever settings
// are absent or malformed.
func DefaultSettings() Settings {
	return Settings{
		AutoAnalysisWeight: 80,
		IABackWeight:       20,
		IAFrontWeight:      10,
		MaxIABackPenalty:   25,
		MaxIAFrontPenalty:  5,
	}
}

// withDefaults replaces non-positive fields with their defaults so a zero or
// partially filled Settings never blocks scoring.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.AutoAnalysisWeight <= 0 {
		s.AutoAnalysisWeight = d.AutoAnalysisWeight
	}
	if s.IABackWeight <= 0 {
		s.IABackWeight = d.IABackWeight
	}
	if s.IAFrontWeight <= 0 {
		s.IAFrontWeight = d.IAFrontWeight
	}
	if s.MaxIABackPenalty <= 0 {
		s.MaxIABackPenalty = d.MaxIABackPenalty
	}
	if s.MaxIAFrontPenalty <= 0 {
		s.MaxIAFrontPenalty = d.MaxIAFrontPenalty
	}
	return s
}

// CombinedScore carries the per-applicant signal averages: the externally
// supplied front detection score, the locally estimated humanness score, and
// their plain average. All three are 0-100 integers.
type CombinedScore struct {
	Front    int `json:"front"`
	Back     int `json:"back"`
	Combined int `json:"combined"`
}

// CombineAnswers averages the front AI score and the humanness score across
// all answered questions. Missing front scores count as zero; a missing
// answer still runs through the estimator, which floors it.
func CombineAnswers(answers []string, frontScores []int, est Estimator) CombinedScore {
	if len(answers) == 0 {
		return CombinedScore{}
	}
	frontTotal, backTotal := 0, 0
	for i, answer := range answers {
		front := 0
		if i < len(frontScores) {
			front = clampInt(frontScores[i], 0, 100)
		}
		frontTotal += front
		backTotal += est.HumannessScore(answer)
	}
	n := float64(len(answers))
	front := int(math.Round(float64(frontTotal) / n))
	back := int(math.Round(float64(backTotal) / n))
	combined := int(math.Round(float64(front+back) / 2))
	return CombinedScore{Front: front, Back: back, Combined: combined}
}

// Strategy folds an applicant's signal averages into one 0-100 composite
// score. The two legacy aggregation formulas are preserved as distinct,
// explicitly selected strategies rather than silently merged.
type Strategy interface {
	Composite(autoAvg float64, backAvg, frontAvg int, s Settings) int
}

// SimpleAverage ignores the auto-analysis signal and the settings and
// averages the two AI signals, as the applicant detail view always did.
type SimpleAverage struct{}

func (SimpleAverage) Composite(_ float64, backAvg, frontAvg int, _ Settings) int {
	return clampInt(int(math.Round(float64(frontAvg+backAvg)/2)), 0, 100)
}

// WeightedWithPenalties starts from the auto-analysis average (0-10, scaled
// to percent) weighted by AutoAnalysisWeight, then deducts penalties derived
// from the two AI-likelihood signals, each capped by its configured maximum.
// This is the exam-report aggregation path.
type WeightedWithPenalties struct{}

func (WeightedWithPenalties) Composite(autoAvg float64, backAvg, frontAvg int, s Settings) int {
	s = s.withDefaults()
	base := clamp(autoAvg, 0, 10) * 10 * float64(s.AutoAnalysisWeight) / 100

	backPenalty := float64(AILikelihood(backAvg)) * float64(s.IABackWeight) / 100
	if max := float64(s.MaxIABackPenalty); backPenalty > max {
		backPenalty = max
	}
	frontPenalty := float64(clampInt(frontAvg, 0, 100)) * float64(s.IAFrontWeight) / 100
	if max := float64(s.MaxIAFrontPenalty); frontPenalty > max {
		frontPenalty = max
	}

	return clampInt(int(math.Round(base-backPenalty-frontPenalty)), 0, 100)
}
