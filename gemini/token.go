package gemini

import (
	"context"

	"github.com/fwojciec/docquiz"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ docquiz.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts quiz request tokens offline with the Gemini tokenizer.
type TokenCounter struct {
	tok   *tokenizer.LocalTokenizer
	model string
}

// NewTokenCounter loads the local tokenizer for model. An empty model
// means DefaultModel.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, docquiz.WrapError(docquiz.EINVALID, err, "no local tokenizer for model %q", model)
	}
	return &TokenCounter{tok: tok, model: model}, nil
}

// Model returns the model whose tokenizer is used.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountQuizTokens counts the system instruction and the quiz prompt that
// GenerateQuiz sends for section.
func (tc *TokenCounter) CountQuizTokens(_ context.Context, section docquiz.Section, opts docquiz.QuizOptions) (int, error) {
	if err := docquiz.ValidateQuizSection(section); err != nil {
		return 0, err
	}

	contents := append([]*genai.Content{genai.NewContentFromText(quizInstruction, genai.RoleUser)}, quizContents(section, opts)...)

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, docquiz.WrapError(docquiz.EINTERNAL, err, "count tokens for section %q", section.Title)
	}
	return int(result.TotalTokens), nil
}
