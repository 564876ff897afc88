package docquiz_test

import (
	"testing"

	"github.com/fwojciec/docquiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuizPrompt(t *testing.T) {
	t.Parallel()

	section := docquiz.Section{
		Title: "Install",
		Blocks: []docquiz.ContentBlock{
			docquiz.TextBlock("Run npm i to install."),
			docquiz.CodeBlock("npm i next", "bash"),
		},
	}

	t.Run("includes section content in order", func(t *testing.T) {
		t.Parallel()

		prompt := docquiz.BuildQuizPrompt(section, docquiz.QuizOptions{})

		assert.Contains(t, prompt, "Section: Install")
		assert.Contains(t, prompt, "Explanation: Run npm i to install.\n\nCode example:\n```bash\nnpm i next\n```")
	})

	t.Run("defaults to three questions", func(t *testing.T) {
		t.Parallel()

		prompt := docquiz.BuildQuizPrompt(section, docquiz.QuizOptions{})

		assert.Contains(t, prompt, "at most 3 quiz questions")
	})

	t.Run("honors max questions", func(t *testing.T) {
		t.Parallel()

		prompt := docquiz.BuildQuizPrompt(section, docquiz.QuizOptions{MaxQuestions: 5})

		assert.Contains(t, prompt, "at most 5 quiz questions")
	})

	t.Run("forbids invented content", func(t *testing.T) {
		t.Parallel()

		prompt := docquiz.BuildQuizPrompt(section, docquiz.QuizOptions{})

		assert.Contains(t, prompt, "Do not invent content")
	})

	t.Run("adds language instruction only when set", func(t *testing.T) {
		t.Parallel()

		assert.NotContains(t, docquiz.BuildQuizPrompt(section, docquiz.QuizOptions{}), "Write the quiz in")
		assert.Contains(t, docquiz.BuildQuizPrompt(section, docquiz.QuizOptions{Language: "Korean"}), "Write the quiz in Korean.")
	})
}

func TestValidateQuizSection(t *testing.T) {
	t.Parallel()

	t.Run("rejects missing title", func(t *testing.T) {
		t.Parallel()

		err := docquiz.ValidateQuizSection(docquiz.Section{Blocks: []docquiz.ContentBlock{docquiz.TextBlock("x")}})

		require.Error(t, err)
		assert.Equal(t, docquiz.EINVALID, docquiz.ErrorCode(err))
	})

	t.Run("rejects section without blocks", func(t *testing.T) {
		t.Parallel()

		err := docquiz.ValidateQuizSection(docquiz.Section{Title: "Empty"})

		require.Error(t, err)
		assert.Equal(t, docquiz.EINVALID, docquiz.ErrorCode(err))
		assert.Contains(t, docquiz.ErrorMessage(err), "no content")
	})

	t.Run("accepts section with content", func(t *testing.T) {
		t.Parallel()

		err := docquiz.ValidateQuizSection(docquiz.Section{Title: "Ok", Blocks: []docquiz.ContentBlock{docquiz.TextBlock("x")}})

		assert.NoError(t, err)
	})
}

func TestSession_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		s := &docquiz.Session{Result: &docquiz.ParseResult{}}

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, docquiz.EINVALID, docquiz.ErrorCode(err))
	})

	t.Run("requires result", func(t *testing.T) {
		t.Parallel()

		s := &docquiz.Session{URL: "https://example.com"}

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, docquiz.EINVALID, docquiz.ErrorCode(err))
	})

	t.Run("accepts empty result", func(t *testing.T) {
		t.Parallel()

		s := &docquiz.Session{URL: "https://example.com", Result: &docquiz.ParseResult{}}

		assert.NoError(t, s.Validate())
	})
}
