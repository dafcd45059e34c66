package scoring

import (
	"math"
	"strings"
)

// ModelAnswer is the minimal view of a reference answer the engine needs.
type ModelAnswer struct {
	QuestionOrder int
	CorrectAnswer string
	KeyPoints     []string
}

const (
	keyPointMaxScore   = 5.0
	similaritySubScore = 5.0
	// Below this key-point coverage the similarity criterion is not evaluated.
	similarityGate = 0.25
	// Minimum matched-word ratio that earns the similarity sub-score.
	similarityMinRatio = 0.25
	// Tokens of the correct answer must be longer than this to count as
	// expected words.
	minExpectedWordLen = 2
)

// ScoreQuestion grades one free-text answer against its model answer and
// returns an integer in [0,10]. An absent answer or model answer scores zero.
//
// Half the scale comes from key-point coverage (continuous, kp*5) and half
// from text similarity with the correct answer (all-or-nothing at the
// similarityMinRatio threshold, gated on minimum coverage).
func ScoreQuestion(answer string, model *ModelAnswer) int {
	if answer == "" || model == nil {
		return 0
	}
	userText := strings.ToLower(answer)
	expectedText := strings.ToLower(model.CorrectAnswer)

	kp := KeyPointCoverage(answer, model.KeyPoints)
	score := kp * keyPointMaxScore

	// An answer with negligible key-point coverage earns no similarity credit.
	if kp >= similarityGate && textSimilarity(userText, expectedText) >= similarityMinRatio {
		score += similaritySubScore
	}
	return int(math.Round(clamp(score, 0, 10)))
}

// textSimilarity is the share of the model's significant words found in the
// applicant text, with concept-pair matches counted as conceptPairBonus
// words each. No expected words means zero similarity.
func textSimilarity(userText, expectedText string) float64 {
	expected := expectedWords(expectedText)
	if len(expected) == 0 {
		return 0
	}
	matched := 0
	for _, w := range expected {
		if strings.Contains(userText, w) {
			matched++
		}
	}
	matched += ConceptBonus(userText, expectedText)
	return float64(matched) / float64(len(expected))
}

func expectedWords(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if len([]rune(w)) > minExpectedWordLen {
			out = append(out, w)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
