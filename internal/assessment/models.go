package assessment

import "github.com/clearhire/screening/internal/scoring"

type ApplicantStatus string

const (
	StatusEnabled  ApplicantStatus = "enabled"
	StatusDisabled ApplicantStatus = "disabled"
)

// Applicant is one registered candidate with their submitted answer set and
// any externally supplied AI analysis.
type Applicant struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	DNI            string          `json:"dni"`
	TestType       string          `json:"test_type"`
	Status         ApplicantStatus `json:"status,omitempty"`
	DisabledReason string          `json:"disabled_reason,omitempty"`

	Answers      []string `json:"answers"`        // aligned to question order
	TimeSpentSec []int    `json:"time_spent_sec"` // per question, seconds

	// External analysis results, opaque to the engine.
	FrontScores  []int             `json:"front_scores,omitempty"`  // 0-100 per question
	OverallScore float64           `json:"overall_score,omitempty"` // 0-10 composite
	FinalRisk    scoring.RiskLevel `json:"final_risk,omitempty"`    // verbatim pass-through

	SubmittedAt int64 `json:"submitted_at,omitempty"`
}

// Criteria is the per-tier rubric text of a model answer.
type Criteria struct {
	Excellent string `json:"excellent"`
	Good      string `json:"good"`
	Fair      string `json:"fair"`
	Poor      string `json:"poor"`
}

// ModelAnswer is the reference answer and rubric for one question of a test
// type. Immutable reference data, looked up by (test type, question order).
type ModelAnswer struct {
	ID              string   `json:"id"`
	TestType        string   `json:"test_type"`
	QuestionOrder   int      `json:"question_order"`
	CorrectAnswer   string   `json:"correct_answer"`
	KeyPoints       []string `json:"key_points"`
	ScoringCriteria Criteria `json:"scoring_criteria"`
}

// engineView projects a stored model answer onto the engine's minimal type.
func (m ModelAnswer) engineView() *scoring.ModelAnswer {
	return &scoring.ModelAnswer{
		QuestionOrder: m.QuestionOrder,
		CorrectAnswer: m.CorrectAnswer,
		KeyPoints:     m.KeyPoints,
	}
}

type QuestionCategory string

const (
	CategoryTechnical   QuestionCategory = "technical"
	CategoryBehavioral  QuestionCategory = "behavioral"
	CategorySituational QuestionCategory = "situational"
)

// Question is one prompt of a test type, paired 1:1 with a ModelAnswer via
// its order.
type Question struct {
	ID                   string           `json:"id"`
	TestType             string           `json:"test_type"`
	Order                int              `json:"order"`
	QuestionText         string           `json:"question_text"`
	Category             QuestionCategory `json:"category"`
	ExpectedAnswerLength int              `json:"expected_answer_length"` // word count guideline
}

// Evaluation is the full scoring output for one applicant.
type Evaluation struct {
	ApplicantID    string            `json:"applicant_id"`
	Name           string            `json:"name"`
	DNI            string            `json:"dni"`
	QuestionScores []int             `json:"question_scores"` // 0-10 each
	ExamTotal      float64           `json:"exam_total"`      // 0-20, one decimal
	AIFrontAvg     int               `json:"ai_front_avg"`    // 0-100
	AIBackAvg      int               `json:"ai_back_avg"`     // 0-100 humanness
	CombinedAI     int               `json:"combined_ai"`     // 0-100
	Composite      int               `json:"composite"`       // strategy output, 0-100
	RiskLevel      scoring.RiskLevel `json:"risk_level"`
	OverallLabel   string            `json:"overall_label"` // Alto/Medio/Bajo
}
