package stopwords

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"
)

//go:embed english.json
var englishJSON []byte

type Set map[string]struct{}

var English = sync.OnceValue(func() Set {
	var raw []string
	if err := json.Unmarshal(englishJSON, &raw); err != nil {
		panic("stopwords: embedded english.json is invalid: " + err.Error())
	}
	return New(raw...)
})

func New(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

func (s Set) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

func (s Set) Len() int {
	return len(s)
}
