package config

import (
	"fmt"
	"slices"

	"go.uber.org/zap/zapcore"
)

var ValidProviders = []string{ProviderNaiveBayes, ProviderHuggingFace}

func (c *Config) Validate() error {
	checks := []func(*Config) error{
		validateLogging,
		validateAnalysis,
		validateSentiment,
		validateBatch,
	}
	for _, check := range checks {
		if err := check(c); err != nil {
			return err
		}
	}
	return nil
}

func validateLogging(cfg *Config) error {
	if _, err := zapcore.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.Logging.Level)
	}
	return nil
}

func validateAnalysis(cfg *Config) error {
	if cfg.Analysis.TopWords < 1 {
		return fmt.Errorf("analysis.top_words must be positive, got %d", cfg.Analysis.TopWords)
	}
	if cfg.Analysis.SentimentChars < 1 {
		return fmt.Errorf("analysis.sentiment_chars must be positive, got %d", cfg.Analysis.SentimentChars)
	}
	return nil
}

func validateSentiment(cfg *Config) error {
	if !slices.Contains(ValidProviders, cfg.Sentiment.Provider) {
		return fmt.Errorf("invalid sentiment provider: %s (valid: %v)", cfg.Sentiment.Provider, ValidProviders)
	}
	if cfg.Sentiment.Provider == ProviderHuggingFace && cfg.Sentiment.URL == "" {
		return fmt.Errorf("sentiment.url is required for the %s provider", ProviderHuggingFace)
	}
	return nil
}

func validateBatch(cfg *Config) error {
	if cfg.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must not be negative, got %d", cfg.Batch.Workers)
	}
	return nil
}
