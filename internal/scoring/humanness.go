package scoring

import (
	"regexp"
	"strings"
)

// Estimator scores how human-authored a single answer reads, in [10,95].
// Higher means more human-like; AI likelihood is 100 minus the score. The
// built-in implementation is a stylometric proxy, not a classifier, so keep
// it a secondary signal behind this interface and swap in a real model later
// without touching the aggregator.
type Estimator interface {
	HumannessScore(answer string) int
}

const (
	humannessBaseline = 50
	humannessMin      = 10
	humannessMax      = 95
	humanMatchBonus   = 8
	aiMatchPenalty    = 5

	// ShortAnswerScore is returned for empty answers and answers under
	// shortAnswerLen characters. The legacy dashboards disagreed (20 on the
	// detail and dashboard views, 80 on reports); a very short answer reads
	// as low-effort human typing, so 20 applies uniformly.
	ShortAnswerScore = 20
	shortAnswerLen   = 10
)

// Hedging, fillers, repeated punctuation, common misspellings, tentative
// phrasing. Matched against the lowercased answer.
var humanPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(creo|pienso|me parece|considero)\b`),
	regexp.MustCompile(`\b(eh|um|bueno|entonces)\b`),
	regexp.MustCompile(`[.]{2,}|\?{2,}|!{2,}`),
	regexp.MustCompile(`\b(procentaje|porcentage|exito|exelente)\b`),
	regexp.MustCompile(`\b(si falla|si funciona|creo que|tal vez)\b`),
}

// Enumerator openers, formal technical vocabulary, stock transitions.
var aiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(en primer lugar|en segundo lugar|finalmente)`),
	regexp.MustCompile(`\b(implementar|optimizar|eficiencia|escalabilidad)\b`),
	regexp.MustCompile(`\b(es importante destacar|cabe mencionar|es fundamental)\b`),
}

// templatedStructure flags a capitalized sentence immediately followed by
// another; it runs against the raw answer, before casefolding.
var templatedStructure = regexp.MustCompile(`^[A-Z][^.!?]*[.!?]\s*[A-Z]`)

var (
	terminalPunct = regexp.MustCompile(`[.!?]$`)
	strayParticle = regexp.MustCompile(`\b(a|de|en)\s+\b`)
)

// PatternEstimator scores answers with fixed stylometric regex indicators.
type PatternEstimator struct{}

func (PatternEstimator) HumannessScore(answer string) int {
	if len([]rune(answer)) < shortAnswerLen {
		return ShortAnswerScore
	}
	text := strings.ToLower(answer)
	score := humannessBaseline
	for _, p := range humanPatterns {
		score += humanMatchBonus * len(p.FindAllString(text, -1))
	}
	for _, p := range aiPatterns {
		score -= aiMatchPenalty * len(p.FindAllString(text, -1))
	}
	score -= aiMatchPenalty * len(templatedStructure.FindAllString(answer, -1))

	if len(answer) > 200 && !strings.Contains(text, ".") {
		score -= 10
	}
	if len(strings.Split(answer, " ")) > 50 {
		score -= 5
	}
	if !terminalPunct.MatchString(strings.TrimSpace(answer)) {
		score += 5
	}
	if strayParticle.MatchString(text) {
		score += 3
	}
	if strings.Contains(text, "  ") {
		score += 3
	}

	if score < humannessMin {
		return humannessMin
	}
	if score > humannessMax {
		return humannessMax
	}
	return score
}

// AILikelihood inverts a humanness score onto the 0-100 AI-likelihood scale.
func AILikelihood(humanness int) int {
	return clampInt(100-humanness, 0, 100)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
