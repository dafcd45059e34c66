package scoring_test

import (
	"strings"
	"testing"

	"github.com/clearhire/screening/internal/scoring"
)

func TestKeyPointCoverage_LiteralMatch(t *testing.T) {
	kp := []string{"SNS", "SQS"}
	got := scoring.KeyPointCoverage("Usamos SNS y SQS para desacoplar", kp)
	if got != 1.0 {
		t.Fatalf("expected full coverage, got %v", got)
	}
	got = scoring.KeyPointCoverage("Usamos SNS solamente", kp)
	if got != 0.5 {
		t.Fatalf("expected half coverage, got %v", got)
	}
}

func TestKeyPointCoverage_Synonyms(t *testing.T) {
	// "memoria" has a registered synonym set; "ligero" counts as a mention.
	got := scoring.KeyPointCoverage("es ligero y consume pocos recursos", []string{"memoria"})
	if got != 1.0 {
		t.Fatalf("expected synonym match, got %v", got)
	}
	// Key points outside the table match literally only.
	got = scoring.KeyPointCoverage("es ligero", []string{"rollback"})
	if got != 0 {
		t.Fatalf("expected no match for unrelated key point, got %v", got)
	}
}

func TestKeyPointCoverage_ZeroKeyPoints(t *testing.T) {
	if got := scoring.KeyPointCoverage("cualquier texto", nil); got != 0 {
		t.Fatalf("expected 0 coverage with no key points, got %v", got)
	}
}

func TestKeyPointCoverage_Monotonic(t *testing.T) {
	kp := []string{"alpha", "beta", "gamma"}
	subset := "menciona alpha"
	superset := subset + " y tambien beta"
	a := scoring.KeyPointCoverage(subset, kp)
	b := scoring.KeyPointCoverage(superset, kp)
	if b < a {
		t.Fatalf("superset coverage %v < subset coverage %v", b, a)
	}
}

func TestKeyPointCoverage_CaseInsensitive(t *testing.T) {
	if got := scoring.KeyPointCoverage("USAMOS CHECKSUM", []string{"Checksum"}); got != 1.0 {
		t.Fatalf("expected case-insensitive match, got %v", got)
	}
}

func TestKeyPointCoverage_LongInput(t *testing.T) {
	long := strings.Repeat("palabra ", 1500)
	got := scoring.KeyPointCoverage(long, []string{"alpha", "beta"})
	if got < 0 || got > 1 {
		t.Fatalf("coverage out of range: %v", got)
	}
}

func TestConceptBonus(t *testing.T) {
	// Model mentions "latencia", applicant says "tiempo de respuesta":
	// one pair matched, two word-equivalents.
	got := scoring.ConceptBonus("mejora el tiempo", "reduce la latencia")
	if got != 2 {
		t.Fatalf("expected bonus 2, got %d", got)
	}
	if got := scoring.ConceptBonus("sin relacion", "texto neutro"); got != 0 {
		t.Fatalf("expected bonus 0, got %d", got)
	}
}
