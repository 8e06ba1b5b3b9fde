package sentiment

import (
	"context"
	"fmt"
	"sync"

	nb "github.com/cdipaolo/sentiment"
)

type NaiveBayes struct {
	// the model's text sanitizer keeps per-call state
	mu     sync.Mutex
	models nb.Models
}

var shared = sync.OnceValues(func() (*NaiveBayes, error) {
	models, err := nb.Restore()
	if err != nil {
		return nil, fmt.Errorf("restore sentiment model: %w", err)
	}
	return &NaiveBayes{models: models}, nil
})

func Shared() (*NaiveBayes, error) {
	return shared()
}

func (c *NaiveBayes) Name() string {
	return "naivebayes"
}

func (c *NaiveBayes) Classify(ctx context.Context, text string) (Prediction, error) {
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}

	c.mu.Lock()
	class, prob := c.models[nb.English].Probability(text)
	c.mu.Unlock()

	label := LabelNegative
	if class == 1 {
		label = LabelPositive
	}
	return Prediction{Label: label, Score: prob, Provider: c.Name()}, nil
}
