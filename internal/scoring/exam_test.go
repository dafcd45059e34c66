package scoring_test

import (
	"testing"

	"github.com/clearhire/screening/internal/scoring"
)

func TestExamTotal_Proportional(t *testing.T) {
	// Four questions, two perfect and two zero: (1+1+0+0) * 5 = 10.0/20.
	perfect := &scoring.ModelAnswer{
		CorrectAnswer: "usar sns y sqs para desacoplar servicios",
		KeyPoints:     []string{"sns", "sqs"},
	}
	miss := &scoring.ModelAnswer{
		CorrectAnswer: "hacer rollback inmediato del despliegue",
		KeyPoints:     []string{"rollback"},
	}
	answers := []string{
		"Usamos SNS y SQS para desacoplar",
		"Usamos SNS y SQS para desacoplar",
		"no mencionamos nada relevante",
		"tampoco aqui",
	}
	models := map[int]*scoring.ModelAnswer{1: perfect, 2: perfect, 3: miss}
	got := scoring.ExamTotal(answers, models)
	if got != 10.0 {
		t.Fatalf("expected 10.0, got %v", got)
	}
}

func TestExamTotal_NoAnswers(t *testing.T) {
	if got := scoring.ExamTotal(nil, nil); got != 0 {
		t.Fatalf("expected 0 for empty answer set, got %v", got)
	}
}

func TestExamTotal_MissingModelsContributeZero(t *testing.T) {
	answers := []string{"respuesta uno", "respuesta dos"}
	if got := scoring.ExamTotal(answers, map[int]*scoring.ModelAnswer{}); got != 0 {
		t.Fatalf("expected 0 without models, got %v", got)
	}
}

func TestExamTotal_Range(t *testing.T) {
	perfect := &scoring.ModelAnswer{
		CorrectAnswer: "usar sns y sqs para desacoplar servicios",
		KeyPoints:     []string{"sns", "sqs"},
	}
	answers := []string{"Usamos SNS y SQS para desacoplar servicios", "Usamos SNS y SQS para desacoplar servicios", "Usamos SNS y SQS para desacoplar servicios"}
	models := map[int]*scoring.ModelAnswer{1: perfect, 2: perfect, 3: perfect}
	got := scoring.ExamTotal(answers, models)
	if got < 0 || got > 20 {
		t.Fatalf("total out of range: %v", got)
	}
	if got != 20.0 {
		t.Fatalf("expected full marks 20.0, got %v", got)
	}
}
