package analyzer

import (
	"slices"
	"strings"
	"unicode"

	"doc_analyzer/internal/stopwords"
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}

func countCharacters(text string) int {
	n := 0
	for _, r := range text {
		switch r {
		case ' ', '\n', '\r':
			continue
		}
		n++
	}
	return n
}

func countPunctuation(text string) int {
	n := 0
	for _, r := range text {
		if r < 0x80 && strings.ContainsRune(punctuation, r) {
			n++
		}
	}
	return n
}

func normalizeWord(token string) string {
	trimmed := strings.TrimFunc(token, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	return strings.ToLower(trimmed)
}

func normalizeWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if w := normalizeWord(tok); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func countUnique(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return len(seen)
}

// topWords returns the n most frequent non-stopwords. Ties keep the order in
// which the words first appeared.
func topWords(words []string, stop stopwords.Set, n int) []WordCount {
	index := map[string]int{}
	counts := make([]WordCount, 0)
	for _, w := range words {
		if stop.Contains(w) {
			continue
		}
		if i, ok := index[w]; ok {
			counts[i].Count++
			continue
		}
		index[w] = len(counts)
		counts = append(counts, WordCount{Word: w, Count: 1})
	}

	slices.SortStableFunc(counts, func(a, b WordCount) int {
		return b.Count - a.Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
