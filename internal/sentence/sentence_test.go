package sentence

import (
	"math"
	"testing"
)

func TestSplitTwoSentences(t *testing.T) {
	s, err := Shared()
	if err != nil {
		t.Fatalf("load splitter: %v", err)
	}
	got := s.Split("The cat sat on the mat. The cat slept.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %q", len(got), got)
	}
	if got[0] != "The cat sat on the mat." || got[1] != "The cat slept." {
		t.Fatalf("unexpected sentences %q", got)
	}
}

func TestSplitBlank(t *testing.T) {
	s, err := Shared()
	if err != nil {
		t.Fatalf("load splitter: %v", err)
	}
	if got := s.Split(" \n\t "); len(got) != 0 {
		t.Fatalf("expected no sentences, got %q", got)
	}
}

func TestAverageWords(t *testing.T) {
	if got := AverageWords(nil); got != 0 {
		t.Fatalf("expected 0 for no sentences, got %v", got)
	}
	got := AverageWords([]string{"The cat sat on the mat.", "The cat slept."})
	if math.Abs(got-4.5) > 1e-9 {
		t.Fatalf("expected 4.5, got %v", got)
	}
}
