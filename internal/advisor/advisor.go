// Package advisor turns an aggregate spending summary and a question
// into advisory text. The Gemini implementation is optional; callers
// fall back to rule-based answers when it is unavailable.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrAdvisoryUnavailable means no advisory text could be produced.
// Callers should degrade to the rule-based insights.
var ErrAdvisoryUnavailable = errors.New("advisory unavailable")

// TextAdvisor answers a question given a plain-text financial summary.
type TextAdvisor interface {
	Advise(ctx context.Context, summary, question string) (string, error)
}

// Static is a deterministic advisor used when no model is configured.
// It echoes the summary back with a generic pointer, so the ask surface
// still works offline.
type Static struct{}

func (Static) Advise(_ context.Context, summary, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("%w: empty question", ErrAdvisoryUnavailable)
	}
	return fmt.Sprintf("Here is your current position:\n%s\nReview the largest category above for the quickest savings.", summary), nil
}
