package stopwords

import "testing"

func TestEnglishLoadsEmbeddedList(t *testing.T) {
	set := English()
	if set.Len() != 179 {
		t.Fatalf("expected 179 english stopwords, got %d", set.Len())
	}
	for _, w := range []string{"the", "on", "THE", "Isn't"} {
		if !set.Contains(w) {
			t.Fatalf("expected %q to be a stopword", w)
		}
	}
	for _, w := range []string{"cat", "mat", "slept"} {
		if set.Contains(w) {
			t.Fatalf("did not expect %q to be a stopword", w)
		}
	}
}

func TestNewNormalizes(t *testing.T) {
	set := New(" Foo ", "", "BAR")
	if set.Len() != 2 || !set.Contains("foo") || !set.Contains("bar") {
		t.Fatalf("unexpected set %v", set)
	}
}
