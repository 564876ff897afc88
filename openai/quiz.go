// Package openai generates quizzes with OpenAI-compatible chat completion APIs.
package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/docquiz"
	goopenai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "gpt-4o"

const systemPrompt = "You are a technical interviewer writing quizzes about software documentation. " +
	"Only use the documentation section provided. Never invent APIs or behaviour that the section does not describe."

// Client is the subset of *goopenai.Client used for quiz generation.
type Client interface {
	CreateChatCompletion(ctx context.Context, request goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

var _ Client = (*goopenai.Client)(nil)

// NewClient returns a chat client for apiKey. A non-empty baseURL points
// the client at another OpenAI-compatible endpoint.
func NewClient(apiKey, baseURL string) *goopenai.Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return goopenai.NewClientWithConfig(cfg)
}

var _ docquiz.QuizGenerator = (*QuizGenerator)(nil)

// QuizGenerator implements docquiz.QuizGenerator using chat completions.
type QuizGenerator struct {
	client Client
	model  string
}

// Option configures a QuizGenerator.
type Option func(*QuizGenerator)

// WithModel sets the model name. An empty name keeps DefaultModel.
func WithModel(model string) Option {
	return func(g *QuizGenerator) {
		if model != "" {
			g.model = model
		}
	}
}

// NewQuizGenerator creates a new QuizGenerator.
func NewQuizGenerator(client Client, opts ...Option) *QuizGenerator {
	g := &QuizGenerator{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Model returns the configured model name.
func (g *QuizGenerator) Model() string {
	return g.model
}

// GenerateQuiz asks the model for a multiple-choice quiz on section.
func (g *QuizGenerator) GenerateQuiz(ctx context.Context, section docquiz.Section, opts docquiz.QuizOptions) (string, error) {
	if err := docquiz.ValidateQuizSection(section); err != nil {
		return "", err
	}
	if g.client == nil {
		return "", docquiz.Errorf(docquiz.EINVALID, "openai client not configured; set OPENAI_API_KEY")
	}

	resp, err := g.client.CreateChatCompletion(ctx, BuildRequest(g.model, section, opts))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", docquiz.Errorf(docquiz.EINTERNAL, "openai returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", docquiz.Errorf(docquiz.EINTERNAL, "openai returned an empty quiz")
	}
	return text, nil
}

// BuildRequest returns the chat completion request for a quiz on section.
func BuildRequest(model string, section docquiz.Section, opts docquiz.QuizOptions) goopenai.ChatCompletionRequest {
	return goopenai.ChatCompletionRequest{
		Model: model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: docquiz.BuildQuizPrompt(section, opts)},
		},
		Temperature: 0.7,
		N:           1,
	}
}
