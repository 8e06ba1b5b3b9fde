package readability

import (
	"math"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[A-Za-z]+(?:'[A-Za-z]+)?`)
var vowelGroupPattern = regexp.MustCompile(`[aeiouy]+`)

func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

func FleschKincaidGrade(text string, sentences int) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}
	if sentences < 1 {
		sentences = 1
	}
	syllables := 0
	for _, w := range words {
		syllables += Syllables(w)
	}
	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))
	return Round(0.39*wordsPerSentence+11.8*syllablesPerWord-15.59, 2)
}

func Syllables(word string) int {
	w := strings.ToLower(strings.Trim(word, "'"))
	w = strings.TrimSuffix(w, "'s")
	if w == "" {
		return 0
	}
	if len(w) <= 3 {
		return 1
	}

	count := len(vowelGroupPattern.FindAllString(w, -1))
	switch {
	case strings.HasSuffix(w, "le") && len(w) > 2 && !isVowel(w[len(w)-3]):
	case strings.HasSuffix(w, "ed"):
		if prev := w[len(w)-3]; prev != 't' && prev != 'd' && !isVowel(prev) {
			count--
		}
	case strings.HasSuffix(w, "es"):
		if prev := w[len(w)-3]; !strings.ContainsRune("sxzcgh", rune(prev)) && !isVowel(prev) {
			count--
		}
	case strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "ee"):
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
