// Package review turns learner code into AI feedback. The feedback
// text is shown to the user verbatim; no structure is imposed on it.
package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeace-app/codeace/internal/llm"
)

// Config tunes the review completion.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard review settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// Service produces code-review feedback through a model provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a review service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Review analyzes the given code and returns feedback on efficiency,
// style and potential errors. A single attempt is made; transient
// provider failures are retried inside the provider stack, anything
// else surfaces to the caller for a user-visible retry.
func (s *Service) Review(ctx context.Context, code, language string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", fmt.Errorf("review: no code to analyze")
	}

	resp, err := s.provider.Complete(ctx, llm.Request{
		System:      reviewSystemPrompt,
		Prompt:      buildReviewPrompt(code, language),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("code review: %w", err)
	}

	feedback := strings.TrimSpace(resp.Text)
	if feedback == "" {
		return "", fmt.Errorf("code review: %w", &llm.ErrInvalidResponse{
			Err: fmt.Errorf("empty feedback"),
		})
	}
	return feedback, nil
}
