package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderNaiveBayes  = "naivebayes"
	ProviderHuggingFace = "huggingface"

	DefaultSentimentURL = "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"
)

type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	History   HistoryConfig   `yaml:"history"`
	Batch     BatchConfig     `yaml:"batch"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type AnalysisConfig struct {
	TopWords       int `yaml:"top_words"`
	SentimentChars int `yaml:"sentiment_chars"`
}

type SentimentConfig struct {
	Provider string `yaml:"provider"` // naivebayes, huggingface
	URL      string `yaml:"url"`
	Token    string `yaml:"token"`
	Timeout  string `yaml:"timeout"`
	// use the local model when the remote provider fails
	Fallback bool `yaml:"fallback"`
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type BatchConfig struct {
	Workers int `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn"},
		Analysis: AnalysisConfig{
			TopWords:       10,
			SentimentChars: 512,
		},
		Sentiment: SentimentConfig{
			Provider: ProviderNaiveBayes,
			URL:      DefaultSentimentURL,
			Timeout:  "30s",
			Fallback: true,
		},
		History: HistoryConfig{Enabled: false},
		Batch:   BatchConfig{Workers: 0},
	}
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	c.Logging.Level = getEnv("DOC_ANALYZER_LOG_LEVEL", c.Logging.Level)
	c.Sentiment.Provider = getEnv("DOC_ANALYZER_SENTIMENT_PROVIDER", c.Sentiment.Provider)
	c.Sentiment.URL = getEnv("HF_API_URL", c.Sentiment.URL)
	c.Sentiment.Token = getEnv("HF_TOKEN", c.Sentiment.Token)
	c.History.Enabled = getEnvBool("DOC_ANALYZER_HISTORY", c.History.Enabled)
	c.History.Path = getEnv("DOC_ANALYZER_HISTORY_PATH", c.History.Path)
	c.Batch.Workers = getEnvInt("DOC_ANALYZER_WORKERS", c.Batch.Workers)
}

func (c *Config) SentimentTimeout() time.Duration {
	d, err := time.ParseDuration(c.Sentiment.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
