package usecase

import (
	"context"
	"errors"
	"time"

	"intent-gateway/internal/intent"
	"intent-gateway/internal/metrics"
	"intent-gateway/pkg/llmprovider"
	pkgLog "intent-gateway/pkg/log"
)

// Generator is the slice of *llmprovider.Manager the classifier needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type llmClassifier struct {
	l       pkgLog.Logger
	gen     Generator
	metrics *metrics.Metrics
}

// NewClassifier adapts a provider manager to intent.Classifier.
func NewClassifier(l pkgLog.Logger, gen Generator, m *metrics.Metrics) *llmClassifier {
	return &llmClassifier{l: l, gen: gen, metrics: m}
}

var _ intent.Classifier = (*llmClassifier)(nil)

// Classify sends the prompt as a single user turn and returns the reply text
// unmodified. Every failure comes back as *intent.ModelError.
func (c *llmClassifier) Classify(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := c.gen.GenerateContent(ctx, llmprovider.UserText(prompt))
	if err != nil {
		c.metrics.ObserveModelCall(metrics.OutcomeModelError, time.Since(start))
		kind := intent.ErrModelUnavailable
		if errors.Is(err, llmprovider.ErrContentBlocked) {
			kind = intent.ErrModelRejected
		}
		return "", &intent.ModelError{Kind: kind, Err: err}
	}

	c.metrics.ObserveModelCall(metrics.OutcomeSuccess, time.Since(start))
	return resp.Text(), nil
}
