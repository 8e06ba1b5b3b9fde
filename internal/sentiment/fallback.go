package sentiment

import (
	"context"

	"go.uber.org/zap"

	"doc_analyzer/internal/logging"
)

type Fallback struct {
	Primary   Classifier
	Secondary Classifier
	logger    *zap.Logger
}

func NewFallback(primary, secondary Classifier, logger *zap.Logger) *Fallback {
	return &Fallback{Primary: primary, Secondary: secondary, logger: logging.OrNop(logger)}
}

func (f *Fallback) Classify(ctx context.Context, text string) (Prediction, error) {
	pred, err := f.Primary.Classify(ctx, text)
	if err == nil {
		return pred, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Prediction{}, ctxErr
	}
	f.logger.Warn("sentiment provider unavailable, using fallback", zap.Error(err))
	return f.Secondary.Classify(ctx, text)
}
