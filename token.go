package docquiz

import "context"

// TokenCounter estimates the size of a quiz request before it is sent.
type TokenCounter interface {
	// CountQuizTokens returns the number of tokens in the request a
	// QuizGenerator would send for section, instructions included.
	// Returns EINVALID if the section cannot be quizzed on.
	CountQuizTokens(ctx context.Context, section Section, opts QuizOptions) (int, error)
}
