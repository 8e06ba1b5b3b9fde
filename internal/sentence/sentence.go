package sentence

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

type Splitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

var shared = sync.OnceValues(func() (*Splitter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load english punkt model: %w", err)
	}
	return &Splitter{tokenizer: tok}, nil
})

func Shared() (*Splitter, error) {
	return shared()
}

func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	out := make([]string, 0, 8)
	for _, sent := range s.tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func AverageWords(sents []string) float64 {
	if len(sents) == 0 {
		return 0
	}
	total := 0
	for _, s := range sents {
		total += len(strings.Fields(s))
	}
	return float64(total) / float64(len(sents))
}
