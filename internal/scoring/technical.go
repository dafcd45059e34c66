package scoring

import (
	"math"
	"strings"
)

// TechnicalProfile lists the keywords and concepts a strong answer to a
// known technical question should mention.
type TechnicalProfile struct {
	Keywords []string
	Concepts []string
}

var technicalProfiles = map[string]TechnicalProfile{
	"aws_messaging": {
		Keywords: []string{"sns", "sqs", "asincrono", "evento"},
		Concepts: []string{"fan-out", "desacoplamiento", "patron abanico", "distribuir", "garantizar procesamiento"},
	},
	"mvc_pattern": {
		Keywords: []string{"model", "view", "controller", "mvc"},
		Concepts: []string{"separacion responsabilidades", "mantenimiento", "testabilidad", "reutilizacion"},
	},
	"database_optimization": {
		Keywords: []string{"indice", "query", "optimizacion", "performance"},
		Concepts: []string{"explain plan", "cache", "normalizacion", "particionado"},
	},
}

// TechnicalAnalysis is the keyword/concept coverage breakdown of one answer.
type TechnicalAnalysis struct {
	Score           int      `json:"score"` // 0-100
	Level           string   `json:"level"` // excellent|good|fair|poor
	FoundKeywords   []string `json:"found_keywords"`
	FoundConcepts   []string `json:"found_concepts"`
	MissingKeywords []string `json:"missing_keywords"`
	MissingConcepts []string `json:"missing_concepts"`
	KeywordCoverage float64  `json:"keyword_coverage"`
	ConceptCoverage float64  `json:"concept_coverage"`
}

// AnalyzeTechnicalResponse measures how many expected keywords and technical
// concepts an answer mentions, half the score each. Empty expectation lists
// contribute zero coverage instead of dividing by zero.
func AnalyzeTechnicalResponse(answer string, keywords, concepts []string) TechnicalAnalysis {
	lower := strings.ToLower(answer)

	found := func(expected []string) (hit, miss []string) {
		hit, miss = []string{}, []string{}
		for _, e := range expected {
			if strings.Contains(lower, strings.ToLower(e)) {
				hit = append(hit, e)
			} else {
				miss = append(miss, e)
			}
		}
		return hit, miss
	}
	foundKw, missKw := found(keywords)
	foundCon, missCon := found(concepts)

	kwCov, conCov := 0.0, 0.0
	if len(keywords) > 0 {
		kwCov = float64(len(foundKw)) / float64(len(keywords))
	}
	if len(concepts) > 0 {
		conCov = float64(len(foundCon)) / float64(len(concepts))
	}

	score := int(math.Round(math.Min(kwCov*50+conCov*50, 100)))
	level := "poor"
	switch {
	case score >= 80:
		level = "excellent"
	case score >= 60:
		level = "good"
	case score >= 40:
		level = "fair"
	}

	return TechnicalAnalysis{
		Score:           score,
		Level:           level,
		FoundKeywords:   foundKw,
		FoundConcepts:   foundCon,
		MissingKeywords: missKw,
		MissingConcepts: missCon,
		KeywordCoverage: kwCov,
		ConceptCoverage: conCov,
	}
}

// DetectQuestionType guesses which technical profile a question belongs to,
// or "" when none applies.
func DetectQuestionType(questionText string) string {
	q := strings.ToLower(questionText)
	switch {
	case strings.Contains(q, "sns") || strings.Contains(q, "sqs") || strings.Contains(q, "messaging"):
		return "aws_messaging"
	case strings.Contains(q, "mvc") || strings.Contains(q, "patron"):
		return "mvc_pattern"
	case strings.Contains(q, "sql") || strings.Contains(q, "base de datos") || strings.Contains(q, "optimizar"):
		return "database_optimization"
	default:
		return ""
	}
}

// Profile returns the expectations for a detected question type.
func Profile(questionType string) (TechnicalProfile, bool) {
	p, ok := technicalProfiles[questionType]
	return p, ok
}
