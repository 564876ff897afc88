package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docquiz"
)

var _ docquiz.QuizGenerator = (*LoggingQuizGenerator)(nil)

// LoggingQuizGenerator wraps a QuizGenerator with logging.
type LoggingQuizGenerator struct {
	next   docquiz.QuizGenerator
	logger *slog.Logger
}

// NewLoggingQuizGenerator creates a new LoggingQuizGenerator.
func NewLoggingQuizGenerator(next docquiz.QuizGenerator, logger *slog.Logger) *LoggingQuizGenerator {
	return &LoggingQuizGenerator{next: next, logger: logger}
}

// GenerateQuiz delegates to the wrapped generator and logs the operation.
func (g *LoggingQuizGenerator) GenerateQuiz(ctx context.Context, section docquiz.Section, opts docquiz.QuizOptions) (quiz string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("quiz",
			"section", section.Title,
			"blocks", len(section.Blocks),
			"questions", opts.MaxQuestions,
			"chars", len(quiz),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateQuiz(ctx, section, opts)
}
