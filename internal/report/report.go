package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"doc_analyzer/internal/analyzer"
)

const Footer = "Analysis complete!"

type Field struct {
	Name  string
	Value string
}

func Fields(res *analyzer.Result) []Field {
	fields := make([]Field, 0, 10)
	if res.SourcePath != "" {
		fields = append(fields, Field{
			Name:  "Source",
			Value: fmt.Sprintf("%s (%s, %s)", res.SourcePath, res.Format, humanize.Bytes(uint64(res.SourceBytes))),
		})
	}
	return append(fields,
		Field{"Total Lines", fmt.Sprint(res.TotalLines)},
		Field{"Total Characters", fmt.Sprint(res.TotalCharacters)},
		Field{"Total Words", fmt.Sprint(res.TotalWords)},
		Field{"Unique Words", fmt.Sprint(res.UniqueWords)},
		Field{"Special Characters", fmt.Sprint(res.SpecialCharacters)},
		Field{fmt.Sprintf("Top %d Frequent Words", topWordsLimit(res)), FormatTopWords(res.TopWords)},
		Field{"Reading Level (Flesch-Kincaid Grade)", fmt.Sprintf("%.2f", res.ReadingLevel)},
		Field{"Average Sentence Length", fmt.Sprintf("%.2f", res.AverageSentenceLength)},
		Field{"Sentiment", res.SentimentLabel},
	)
}

func topWordsLimit(res *analyzer.Result) int {
	if res.TopWordsLimit > 0 {
		return res.TopWordsLimit
	}
	return analyzer.DefaultTopWords
}

func FormatTopWords(words []analyzer.WordCount) string {
	parts := make([]string, 0, len(words))
	for _, wc := range words {
		parts = append(parts, fmt.Sprintf("%s: %d", wc.Word, wc.Count))
	}
	return strings.Join(parts, ", ")
}

func Format(res *analyzer.Result) string {
	var b strings.Builder
	for _, f := range Fields(res) {
		fmt.Fprintf(&b, "%s: %s\n", f.Name, f.Value)
	}
	b.WriteString("\n")
	b.WriteString(Footer)
	b.WriteString("\n")
	return b.String()
}

func Write(path string, res *analyzer.Result) error {
	var raw []byte
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		raw = append(data, '\n')
	} else {
		raw = []byte(Format(res))
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
