package gemini

import (
	"context"

	"github.com/fwojciec/docquiz"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure QuizGenerator implements docquiz.QuizGenerator at compile time.
var _ docquiz.QuizGenerator = (*QuizGenerator)(nil)

// QuizGenerator implements docquiz.QuizGenerator using Google Gemini.
type QuizGenerator struct {
	client *genai.Client
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
func NewQuizGenerator(client *genai.Client, opts ...Option) *QuizGenerator {
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

// GenerateQuiz asks Gemini for a multiple-choice quiz on section.
func (g *QuizGenerator) GenerateQuiz(ctx context.Context, section docquiz.Section, opts docquiz.QuizOptions) (string, error) {
	if err := docquiz.ValidateQuizSection(section); err != nil {
		return "", err
	}
	if g.client == nil {
		return "", docquiz.Errorf(docquiz.EINVALID, "gemini client not configured; set GEMINI_API_KEY")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, quizContents(section, opts), BuildConfig())
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docquiz.Errorf(docquiz.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", docquiz.Errorf(docquiz.EINTERNAL, "gemini returned an empty quiz")
	}
	return text, nil
}

const quizInstruction = "You are a technical interviewer writing quizzes about software documentation. Only use the documentation section provided. Never invent APIs or behaviour that the section does not describe."

// quizContents is the user turn of a quiz request.
func quizContents(section docquiz.Section, opts docquiz.QuizOptions) []*genai.Content {
	return []*genai.Content{
		genai.NewContentFromText(docquiz.BuildQuizPrompt(section, opts), genai.RoleUser),
	}
}

// BuildConfig returns the GenerateContentConfig for quiz generation.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: quizInstruction}},
		},
		Temperature: &temp,
	}
}
