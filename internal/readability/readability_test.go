package readability

import (
	"math"
	"testing"
)

func TestSyllables(t *testing.T) {
	cases := map[string]int{
		"cat":         1,
		"the":         1,
		"make":        1,
		"table":       2,
		"little":      2,
		"jumped":      1,
		"wanted":      2,
		"boxes":       2,
		"makes":       1,
		"free":        1,
		"beautiful":   3,
		"readability": 5,
		"Cat's":       1,
	}
	for word, want := range cases {
		if got := Syllables(word); got != want {
			t.Errorf("Syllables(%q) = %d, want %d", word, got, want)
		}
	}
}

func TestFleschKincaidGrade(t *testing.T) {
	got := FleschKincaidGrade("The cat sat on the mat. The cat slept.", 1)
	if math.Abs(got-(-0.28)) > 1e-9 {
		t.Fatalf("expected -0.28, got %v", got)
	}
}

func TestFleschKincaidGradeLongerWordsScoreHigher(t *testing.T) {
	simple := FleschKincaidGrade("The dog ran. The cat sat.", 2)
	dense := FleschKincaidGrade("Institutional considerations necessitate comprehensive evaluation of organizational methodology.", 1)
	if dense <= simple {
		t.Fatalf("expected dense text to grade higher: simple=%v dense=%v", simple, dense)
	}
}

func TestFleschKincaidGradeNoWords(t *testing.T) {
	if got := FleschKincaidGrade("  ... 123 !!", 0); got != 0 {
		t.Fatalf("expected 0 grade for text without words, got %v", got)
	}
}

func TestFleschKincaidGradeZeroSentences(t *testing.T) {
	withZero := FleschKincaidGrade("just some words", 0)
	withOne := FleschKincaidGrade("just some words", 1)
	if withZero != withOne {
		t.Fatalf("expected zero sentences to grade as one: %v vs %v", withZero, withOne)
	}
}

func TestRound(t *testing.T) {
	if got := Round(3.14159, 2); got != 3.14 {
		t.Fatalf("expected 3.14, got %v", got)
	}
}
