package scoring_test

import (
	"testing"

	"github.com/clearhire/screening/internal/scoring"
)

func TestAnalyzeTechnicalResponse(t *testing.T) {
	profile, ok := scoring.Profile("aws_messaging")
	if !ok {
		t.Fatalf("expected aws_messaging profile")
	}
	got := scoring.AnalyzeTechnicalResponse(
		"Usamos SNS y SQS con fan-out para desacoplamiento",
		profile.Keywords, profile.Concepts,
	)
	// 2/4 keywords and 2/5 concepts: 25 + 20 = 45, "fair".
	if got.Score != 45 {
		t.Fatalf("expected score 45, got %d", got.Score)
	}
	if got.Level != "fair" {
		t.Fatalf("expected level fair, got %s", got.Level)
	}
	if len(got.FoundKeywords) != 2 || len(got.MissingKeywords) != 2 {
		t.Fatalf("unexpected keyword split: %+v", got)
	}
}

func TestAnalyzeTechnicalResponse_EmptyExpectations(t *testing.T) {
	got := scoring.AnalyzeTechnicalResponse("cualquier texto", nil, nil)
	if got.Score != 0 || got.Level != "poor" {
		t.Fatalf("expected zero score and poor level, got %+v", got)
	}
}

func TestDetectQuestionType(t *testing.T) {
	cases := []struct {
		question string
		want     string
	}{
		{"¿Cómo usarías SNS y SQS?", "aws_messaging"},
		{"Explica el patron MVC", "mvc_pattern"},
		{"¿Cómo optimizar una consulta en base de datos?", "database_optimization"},
		{"Cuéntame de tu experiencia en equipo", ""},
	}
	for _, c := range cases {
		if got := scoring.DetectQuestionType(c.question); got != c.want {
			t.Fatalf("%q: expected %q, got %q", c.question, c.want, got)
		}
	}
}
