package mock

import (
	"context"

	"github.com/fwojciec/docquiz"
)

var _ docquiz.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of docquiz.TokenCounter.
type TokenCounter struct {
	CountQuizTokensFn func(ctx context.Context, section docquiz.Section, opts docquiz.QuizOptions) (int, error)
}

func (tc *TokenCounter) CountQuizTokens(ctx context.Context, section docquiz.Section, opts docquiz.QuizOptions) (int, error) {
	return tc.CountQuizTokensFn(ctx, section, opts)
}
