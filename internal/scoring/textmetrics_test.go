package scoring_test

import (
	"strings"
	"testing"

	"github.com/clearhire/screening/internal/scoring"
)

func TestAnalyzeText(t *testing.T) {
	m := scoring.AnalyzeText("Hola mundo. Esto es una prueba.")
	if m.WordCount != 6 {
		t.Fatalf("expected 6 words, got %d", m.WordCount)
	}
	if m.SentenceCount != 2 {
		t.Fatalf("expected 2 sentences, got %d", m.SentenceCount)
	}
	if m.AvgSentenceLength != 3 {
		t.Fatalf("expected avg sentence length 3, got %v", m.AvgSentenceLength)
	}
}

func TestAnalyzeText_Empty(t *testing.T) {
	m := scoring.AnalyzeText("")
	if m.WordCount != 0 || m.SentenceCount != 0 || m.AvgWordLength != 0 {
		t.Fatalf("expected zero metrics, got %+v", m)
	}
}

func TestTypingSpeedScore(t *testing.T) {
	cases := []struct {
		sec, words, want int
	}{
		{60, 200, 80}, // 200 wpm: far beyond human typing
		{60, 120, 60},
		{60, 80, 40},
		{60, 50, 20},
		{0, 10, 80}, // instantaneous submission
		{60, 0, 20},
	}
	for _, c := range cases {
		if got := scoring.TypingSpeedScore(c.sec, c.words); got != c.want {
			t.Fatalf("(%ds, %d words): expected %d, got %d", c.sec, c.words, c.want, got)
		}
	}
}

func TestPatternIndicators(t *testing.T) {
	text := "Furthermore, the approach is robust. Moreover it scales. Therefore we conclude. Additionally: 1. first 2. second " + strings.Repeat("plain words here ", 3)
	got := scoring.PatternIndicators(text)
	want := map[string]bool{}
	for _, in := range got {
		want[in] = true
	}
	if !want[scoring.IndicatorFormalConnectors] {
		t.Fatalf("expected formal connector indicator, got %v", got)
	}
	if !want[scoring.IndicatorListStructure] {
		t.Fatalf("expected list structure indicator, got %v", got)
	}
	if !want[scoring.IndicatorNoContractions] {
		t.Fatalf("expected no-contractions indicator, got %v", got)
	}
}

func TestPatternIndicators_CleanText(t *testing.T) {
	got := scoring.PatternIndicators("I'm sure it's fine, we tested it briefly.")
	if len(got) != 0 {
		t.Fatalf("expected no indicators, got %v", got)
	}
}
