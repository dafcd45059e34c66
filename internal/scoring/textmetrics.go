package scoring

import (
	"regexp"
	"strings"
)

// TextMetrics summarizes surface statistics of an answer.
type TextMetrics struct {
	WordCount         int     `json:"word_count"`
	CharCount         int     `json:"char_count"`
	AvgWordLength     float64 `json:"avg_word_length"`
	SentenceCount     int     `json:"sentence_count"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// AnalyzeText computes word, character and sentence statistics.
func AnalyzeText(text string) TextMetrics {
	words := strings.Fields(text)
	sentences := 0
	for _, s := range sentenceEnd.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	m := TextMetrics{
		WordCount:     len(words),
		CharCount:     len([]rune(text)),
		SentenceCount: sentences,
	}
	if len(words) > 0 {
		sum := 0
		for _, w := range words {
			sum += len([]rune(w))
		}
		m.AvgWordLength = float64(sum) / float64(len(words))
	}
	if sentences > 0 {
		m.AvgSentenceLength = float64(len(words)) / float64(sentences)
	}
	return m
}

// TypingSpeedScore rates how suspicious the writing pace is, 0-100. Humans
// typically type 40-60 words per minute; pasted or generated text arrives
// much faster. A non-positive duration with any words present is treated as
// instantaneous, hence maximally suspicious.
func TypingSpeedScore(timeSpentSec, wordCount int) int {
	if wordCount <= 0 {
		return 20
	}
	if timeSpentSec <= 0 {
		return 80
	}
	wpm := float64(wordCount) / float64(timeSpentSec) * 60
	switch {
	case wpm > 150:
		return 80
	case wpm > 100:
		return 60
	case wpm > 70:
		return 40
	default:
		return 20
	}
}

// Stylistic markers of generated text reported by PatternIndicators.
const (
	IndicatorFormalConnectors = "excessive_formal_connectors"
	IndicatorListStructure    = "list_structure"
	IndicatorNoContractions   = "no_contractions"
	IndicatorTechnicalVocab   = "excessive_technical_vocabulary"
)

var formalConnectors = []string{
	"furthermore", "moreover", "additionally",
	"consequently", "therefore", "thus",
}

var contractions = []string{"don't", "can't", "won't", "i'm", "it's"}

var (
	listMarker    = regexp.MustCompile(`\d+\.\s|•`)
	longWordRegex = regexp.MustCompile(`(?i)\b[a-z]{10,}\b`)
)

// PatternIndicators lists stylistic AI markers found in the text.
func PatternIndicators(text string) []string {
	indicators := []string{}
	lower := strings.ToLower(text)

	connectorCount := 0
	for _, c := range formalConnectors {
		if strings.Contains(lower, c) {
			connectorCount++
		}
	}
	if connectorCount > 2 {
		indicators = append(indicators, IndicatorFormalConnectors)
	}

	if listMarker.MatchString(text) {
		indicators = append(indicators, IndicatorListStructure)
	}

	hasContraction := false
	for _, c := range contractions {
		if strings.Contains(lower, c) {
			hasContraction = true
			break
		}
	}
	if !hasContraction && len(text) > 100 {
		indicators = append(indicators, IndicatorNoContractions)
	}

	longWords := longWordRegex.FindAllString(text, -1)
	if float64(len(longWords)) > float64(len(strings.Fields(text)))*0.15 {
		indicators = append(indicators, IndicatorTechnicalVocab)
	}
	return indicators
}
