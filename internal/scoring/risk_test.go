package scoring_test

import (
	"testing"

	"github.com/clearhire/screening/internal/scoring"
)

func TestClassifyCombined_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  scoring.RiskLevel
	}{
		{100, scoring.RiskHigh},
		{70, scoring.RiskHigh},
		{69, scoring.RiskModerate},
		{40, scoring.RiskModerate},
		{39, scoring.RiskLow},
		{0, scoring.RiskLow},
	}
	for _, c := range cases {
		if got := scoring.ClassifyCombined(c.score); got != c.want {
			t.Fatalf("score %d: expected %s, got %s", c.score, c.want, got)
		}
	}
}

func TestClassifyOverall_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{10, scoring.OverallHigh},
		{7, scoring.OverallHigh},
		{6.9, scoring.OverallMedium},
		{4, scoring.OverallMedium},
		{3.9, scoring.OverallLow},
		{0, scoring.OverallLow},
	}
	for _, c := range cases {
		if got := scoring.ClassifyOverall(c.score); got != c.want {
			t.Fatalf("score %v: expected %s, got %s", c.score, c.want, got)
		}
	}
}

func TestResolveRisk_PassThrough(t *testing.T) {
	// An external final assessment wins, including levels the engine never
	// computes itself.
	got := scoring.ResolveRisk(scoring.RiskCritical, scoring.RiskLow)
	if got != scoring.RiskCritical {
		t.Fatalf("expected critical pass-through, got %s", got)
	}
	got = scoring.ResolveRisk("", scoring.RiskModerate)
	if got != scoring.RiskModerate {
		t.Fatalf("expected computed fallback, got %s", got)
	}
}
