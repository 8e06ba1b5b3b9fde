package sentiment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"doc_analyzer/internal/config"
	"doc_analyzer/internal/logging"
)

const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	// LabelNeutral is reported for texts with no words; no classifier runs.
	LabelNeutral = "NEUTRAL"
)

type Prediction struct {
	Label    string  `json:"label"`
	Score    float64 `json:"score"`
	Provider string  `json:"provider"`
}

type Classifier interface {
	Classify(ctx context.Context, text string) (Prediction, error)
}

func Load(cfg *config.Config, logger *zap.Logger) (Classifier, error) {
	logger = logging.OrNop(logger)
	local, err := Shared()
	if err != nil {
		return nil, err
	}

	switch cfg.Sentiment.Provider {
	case "", config.ProviderNaiveBayes:
		logger.Debug("sentiment classifier ready", zap.String("provider", local.Name()))
		return local, nil
	case config.ProviderHuggingFace:
		hf := NewHuggingFace(cfg.Sentiment.URL, cfg.Sentiment.Token, cfg.SentimentTimeout())
		logger.Debug("sentiment classifier ready",
			zap.String("provider", hf.Name()),
			zap.Bool("fallback", cfg.Sentiment.Fallback))
		if cfg.Sentiment.Fallback {
			return NewFallback(hf, local, logger), nil
		}
		return hf, nil
	default:
		return nil, fmt.Errorf("unknown sentiment provider %q", cfg.Sentiment.Provider)
	}
}

func Truncate(text string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}
