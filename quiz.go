package docquiz

import (
	"context"
	"fmt"
	"strings"
)

// DefaultMaxQuestions is the number of questions requested when QuizOptions
// leaves MaxQuestions unset.
const DefaultMaxQuestions = 3

// QuizOptions configures quiz generation.
type QuizOptions struct {
	// MaxQuestions caps the number of questions. Zero means DefaultMaxQuestions.
	MaxQuestions int

	// Language is the language the quiz is written in. Empty means the
	// model's default (English).
	Language string
}

// QuizGenerator generates multiple-choice quizzes from a documentation section.
type QuizGenerator interface {
	// GenerateQuiz returns the quiz text produced by a language model.
	// Returns EINVALID if the section has no title or no blocks.
	GenerateQuiz(ctx context.Context, section Section, opts QuizOptions) (string, error)
}

// ValidateQuizSection returns an error if section cannot be quizzed on.
func ValidateQuizSection(section Section) error {
	if section.Title == "" {
		return Errorf(EINVALID, "section title required")
	}
	if len(section.Blocks) == 0 {
		return Errorf(EINVALID, "section %q has no content", section.Title)
	}
	return nil
}

// BuildQuizPrompt builds the prompt asking a model for a quiz on section.
// The model is told to stay within the section's content.
func BuildQuizPrompt(section Section, opts QuizOptions) string {
	n := opts.MaxQuestions
	if n <= 0 {
		n = DefaultMaxQuestions
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create at most %d quiz questions based on the following developer documentation section.\n", n)
	sb.WriteString("Make them the level of question that could come up in a real developer interview or technical test.\n\n")
	fmt.Fprintf(&sb, "Section: %s\n\n", section.Title)
	sb.WriteString("Content:\n")
	sb.WriteString(FormatSection(section))
	sb.WriteString("Use this format:\n\n")
	sb.WriteString("Q1. [technical question]\n")
	sb.WriteString("1) [option 1]\n2) [option 2]\n3) [option 3]\n4) [option 4]\n")
	sb.WriteString("Answer: [number]\n\n")
	sb.WriteString("Explanation: [technical explanation of the answer and a real-world use case]\n\n")
	sb.WriteString("Guidelines:\n")
	sb.WriteString("- Test understanding of concepts, not rote memorization.\n")
	sb.WriteString("- Where possible, use code examples in the options.\n")
	sb.WriteString("- Reflect situations developers run into in practice.\n")
	sb.WriteString("- Only ask about the content above. Do not invent content that is not there.\n")
	if opts.Language != "" {
		fmt.Fprintf(&sb, "- Write the quiz in %s.\n", opts.Language)
	}
	return sb.String()
}
