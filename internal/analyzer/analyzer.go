package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"doc_analyzer/internal/ingest"
	"doc_analyzer/internal/logging"
	"doc_analyzer/internal/readability"
	"doc_analyzer/internal/sentence"
	"doc_analyzer/internal/sentiment"
	"doc_analyzer/internal/stopwords"
)

const (
	DefaultTopWords       = 10
	DefaultSentimentChars = 512
)

type Result struct {
	SourcePath  string `json:"source_path,omitempty"`
	SourceBytes int64  `json:"source_bytes"`
	Format      string `json:"format,omitempty"`

	TotalLines            int         `json:"total_lines"`
	TotalCharacters       int         `json:"total_characters"`
	TotalWords            int         `json:"total_words"`
	UniqueWords           int         `json:"unique_words"`
	SpecialCharacters     int         `json:"special_characters"`
	TopWords              []WordCount `json:"top_words"`
	TopWordsLimit         int         `json:"top_words_limit"`
	ReadingLevel          float64     `json:"reading_level"`
	AverageSentenceLength float64     `json:"average_sentence_length"`
	SentimentLabel        string      `json:"sentiment_label"`

	SentimentProvider string    `json:"sentiment_provider,omitempty"`
	AnalyzedAt        time.Time `json:"analyzed_at"`
}

type Analyzer struct {
	stop           stopwords.Set
	splitter       *sentence.Splitter
	classifier     sentiment.Classifier
	logger         *zap.Logger
	topN           int
	sentimentChars int
	now            func() time.Time
}

type Option func(*Analyzer)

func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) { a.logger = logging.OrNop(l) }
}

func WithClassifier(c sentiment.Classifier) Option {
	return func(a *Analyzer) { a.classifier = c }
}

func WithStopwords(s stopwords.Set) Option {
	return func(a *Analyzer) { a.stop = s }
}

func WithTopWords(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.topN = n
		}
	}
}

func WithSentimentChars(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.sentimentChars = n
		}
	}
}

func withClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

func New(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		stop:           stopwords.English(),
		logger:         zap.NewNop(),
		topN:           DefaultTopWords,
		sentimentChars: DefaultSentimentChars,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	splitter, err := sentence.Shared()
	if err != nil {
		return nil, err
	}
	a.splitter = splitter

	if a.classifier == nil {
		lex, err := sentiment.Shared()
		if err != nil {
			return nil, err
		}
		a.classifier = lex
	}
	return a, nil
}

// Analyze loads the document at path and analyzes its text. Load failures are
// reported as ErrIO, anything after as ErrProcessing.
func (a *Analyzer) Analyze(ctx context.Context, path string) (*Result, error) {
	started := time.Now()
	parsed, err := ingest.ParseFile(path)
	if err != nil {
		a.logger.Debug("document load failed", zap.String("path", path), zap.Error(err))
		return nil, ioError(path, err)
	}
	a.logger.Debug("document loaded",
		zap.String("path", path),
		zap.String("format", parsed.Format),
		zap.Int64("bytes", parsed.SourceBytes))

	res, err := a.analyze(ctx, parsed.Text)
	if err != nil {
		return nil, processingError(path, err)
	}
	res.SourcePath = parsed.SourcePath
	res.SourceBytes = parsed.SourceBytes
	res.Format = parsed.Format

	a.logger.Info("document analyzed",
		zap.String("path", path),
		zap.Int("words", res.TotalWords),
		zap.String("sentiment", res.SentimentLabel),
		zap.Duration("elapsed", time.Since(started)))
	return res, nil
}

func (a *Analyzer) AnalyzeText(ctx context.Context, text string) (*Result, error) {
	res, err := a.analyze(ctx, text)
	if err != nil {
		return nil, processingError("", err)
	}
	return res, nil
}

func (a *Analyzer) analyze(ctx context.Context, text string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := strings.Fields(text)
	words := normalizeWords(tokens)
	res := &Result{
		TotalLines:        countLines(text),
		TotalCharacters:   countCharacters(text),
		TotalWords:        len(tokens),
		UniqueWords:       countUnique(words),
		SpecialCharacters: countPunctuation(text),
		TopWords:          topWords(words, a.stop, a.topN),
		TopWordsLimit:     a.topN,
		SentimentLabel:    sentiment.LabelNeutral,
		AnalyzedAt:        a.now().UTC(),
	}
	if len(tokens) == 0 {
		a.logger.Debug("document has no words")
		return res, nil
	}

	sents := a.splitter.Split(text)
	res.AverageSentenceLength = sentence.AverageWords(sents)
	res.ReadingLevel = readability.FleschKincaidGrade(text, len(sents))
	a.logger.Debug("text statistics computed",
		zap.Int("tokens", len(tokens)),
		zap.Int("sentences", len(sents)),
		zap.Float64("reading_level", res.ReadingLevel))

	pred, err := a.classifier.Classify(ctx, sentiment.Truncate(text, a.sentimentChars))
	if err != nil {
		return nil, fmt.Errorf("classify sentiment: %w", err)
	}
	res.SentimentLabel = pred.Label
	res.SentimentProvider = pred.Provider
	return res, nil
}
