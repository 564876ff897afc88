package mock

import (
	"context"

	"github.com/fwojciec/docquiz"
)

var _ docquiz.QuizGenerator = (*QuizGenerator)(nil)

// QuizGenerator is a mock implementation of docquiz.QuizGenerator.
type QuizGenerator struct {
	GenerateQuizFn func(ctx context.Context, section docquiz.Section, opts docquiz.QuizOptions) (string, error)
}

func (g *QuizGenerator) GenerateQuiz(ctx context.Context, section docquiz.Section, opts docquiz.QuizOptions) (string, error) {
	return g.GenerateQuizFn(ctx, section, opts)
}
