package scoring_test

import (
	"strings"
	"testing"

	"github.com/clearhire/screening/internal/scoring"
)

func TestScoreQuestion_ZeroFloor(t *testing.T) {
	model := &scoring.ModelAnswer{CorrectAnswer: "algo", KeyPoints: []string{"algo"}}
	if got := scoring.ScoreQuestion("", model); got != 0 {
		t.Fatalf("empty answer: expected 0, got %d", got)
	}
	if got := scoring.ScoreQuestion("cualquier texto", nil); got != 0 {
		t.Fatalf("nil model: expected 0, got %d", got)
	}
}

func TestScoreQuestion_FullMatch(t *testing.T) {
	model := &scoring.ModelAnswer{
		CorrectAnswer: "usar sns y sqs para desacoplar servicios",
		KeyPoints:     []string{"SNS", "SQS"},
	}
	got := scoring.ScoreQuestion("Usamos SNS y SQS para desacoplar", model)
	if got != 10 {
		t.Fatalf("expected 10/10, got %d", got)
	}
}

func TestScoreQuestion_NoMatch(t *testing.T) {
	model := &scoring.ModelAnswer{
		CorrectAnswer: "hacer rollback inmediato del despliegue",
		KeyPoints:     []string{"rollback"},
	}
	got := scoring.ScoreQuestion("no mencionamos nada relevante", model)
	if got != 0 {
		t.Fatalf("expected 0/10, got %d", got)
	}
}

func TestScoreQuestion_Proportional(t *testing.T) {
	// Half the key points plus enough word overlap: 2.5 + 5, rounded to 8.
	model := &scoring.ModelAnswer{
		CorrectAnswer: "alpha beta gamma delta",
		KeyPoints:     []string{"alpha", "beta"},
	}
	got := scoring.ScoreQuestion("alpha gamma delta", model)
	if got != 8 {
		t.Fatalf("expected 8/10, got %d", got)
	}
}

func TestScoreQuestion_SimilarityGate(t *testing.T) {
	// Key-point coverage below 25% blocks similarity credit even when the
	// answer copies the correct answer's vocabulary.
	model := &scoring.ModelAnswer{
		CorrectAnswer: "alpha beta gamma delta",
		KeyPoints:     []string{"uno", "dos", "tres", "cuatro", "cinco"},
	}
	got := scoring.ScoreQuestion("alpha beta gamma delta", model)
	if got != 0 {
		t.Fatalf("expected gate to block similarity, got %d", got)
	}
}

func TestScoreQuestion_ConceptBonusCredit(t *testing.T) {
	// One literal word match alone is 1/5 = 0.2, under the similarity
	// threshold; the concept pair latencia -> tiempo adds two
	// word-equivalents and lifts the ratio to 0.6.
	model := &scoring.ModelAnswer{
		CorrectAnswer: "reducir la latencia observada midiendo continuamente",
		KeyPoints:     []string{"latencia"},
	}
	got := scoring.ScoreQuestion("la latencia mejora con el tiempo", model)
	if got != 10 {
		t.Fatalf("expected concept credit to complete the score, got %d", got)
	}
}

func TestScoreQuestion_Range(t *testing.T) {
	model := &scoring.ModelAnswer{
		CorrectAnswer: strings.Repeat("palabra clave importante ", 100),
		KeyPoints:     []string{"palabra", "clave", "importante"},
	}
	inputs := []string{
		"",
		"x",
		strings.Repeat("palabra clave importante ", 500),
		strings.Repeat("zzz ", 3000),
	}
	for _, in := range inputs {
		got := scoring.ScoreQuestion(in, model)
		if got < 0 || got > 10 {
			t.Fatalf("score out of range for input len %d: %d", len(in), got)
		}
	}
}

func TestScoreQuestion_Deterministic(t *testing.T) {
	model := &scoring.ModelAnswer{
		CorrectAnswer: "usar sns y sqs para desacoplar servicios",
		KeyPoints:     []string{"sns", "sqs"},
	}
	answer := "Usamos SNS y SQS para desacoplar"
	first := scoring.ScoreQuestion(answer, model)
	for i := 0; i < 10; i++ {
		if got := scoring.ScoreQuestion(answer, model); got != first {
			t.Fatalf("non-deterministic score: %d != %d", got, first)
		}
	}
}
