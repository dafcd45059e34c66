package scoring_test

import (
	"testing"

	"github.com/clearhire/screening/internal/scoring"
)

// fixedEstimator returns the same humanness score for every answer.
type fixedEstimator int

func (f fixedEstimator) HumannessScore(string) int { return int(f) }

func TestCombineAnswers(t *testing.T) {
	got := scoring.CombineAnswers([]string{"una", "dos"}, []int{40, 60}, fixedEstimator(60))
	if got.Front != 50 || got.Back != 60 || got.Combined != 55 {
		t.Fatalf("unexpected combined score: %+v", got)
	}
}

func TestCombineAnswers_Empty(t *testing.T) {
	got := scoring.CombineAnswers(nil, nil, fixedEstimator(60))
	if got.Front != 0 || got.Back != 0 || got.Combined != 0 {
		t.Fatalf("expected zero scores, got %+v", got)
	}
}

func TestCombineAnswers_MissingFrontScores(t *testing.T) {
	// Front scores shorter than the answer set count as zero.
	got := scoring.CombineAnswers([]string{"una", "dos"}, []int{100}, fixedEstimator(50))
	if got.Front != 50 {
		t.Fatalf("expected front average 50, got %d", got.Front)
	}
}

func TestSimpleAverage(t *testing.T) {
	var s scoring.SimpleAverage
	got := s.Composite(0, 60, 50, scoring.Settings{})
	if got != 55 {
		t.Fatalf("expected 55, got %d", got)
	}
}

func TestWeightedWithPenalties_Defaults(t *testing.T) {
	var s scoring.WeightedWithPenalties
	// base 8.0*10*0.8 = 64; back likelihood 40 -> penalty 8; front 30 -> 3.
	got := s.Composite(8.0, 60, 30, scoring.DefaultSettings())
	if got != 53 {
		t.Fatalf("expected 53, got %d", got)
	}
}

func TestWeightedWithPenalties_PenaltyCaps(t *testing.T) {
	var s scoring.WeightedWithPenalties
	cfg := scoring.Settings{
		AutoAnalysisWeight: 80,
		IABackWeight:       50,
		IAFrontWeight:      50,
		MaxIABackPenalty:   25,
		MaxIAFrontPenalty:  5,
	}
	// base 10*10*0.8 = 80; raw back penalty 90*0.5=45 capped at 25; raw
	// front penalty 100*0.5=50 capped at 5.
	got := s.Composite(10.0, 10, 100, cfg)
	if got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestWeightedWithPenalties_ZeroSettingsFallBack(t *testing.T) {
	var s scoring.WeightedWithPenalties
	withDefaults := s.Composite(8.0, 60, 30, scoring.DefaultSettings())
	withZero := s.Composite(8.0, 60, 30, scoring.Settings{})
	if withDefaults != withZero {
		t.Fatalf("zero settings should behave as defaults: %d != %d", withZero, withDefaults)
	}
}

func TestComposite_Range(t *testing.T) {
	strategies := []scoring.Strategy{scoring.SimpleAverage{}, scoring.WeightedWithPenalties{}}
	for _, strat := range strategies {
		for _, back := range []int{-50, 0, 10, 95, 500} {
			for _, front := range []int{-50, 0, 100, 500} {
				got := strat.Composite(10, back, front, scoring.Settings{})
				if got < 0 || got > 100 {
					t.Fatalf("composite out of range: %d (back=%d front=%d)", got, back, front)
				}
			}
		}
	}
}
