package docquiz_test

import (
	"testing"

	"github.com/fwojciec/docquiz"
	"github.com/stretchr/testify/assert"
)

func TestFormatSection(t *testing.T) {
	t.Parallel()

	t.Run("formats text block as explanation", func(t *testing.T) {
		t.Parallel()

		section := docquiz.Section{
			Title:  "Install",
			Blocks: []docquiz.ContentBlock{docquiz.TextBlock("Run npm i to install.")},
		}

		result := docquiz.FormatSection(section)

		assert.Equal(t, "Explanation: Run npm i to install.\n\n", result)
	})

	t.Run("formats code block as fenced example", func(t *testing.T) {
		t.Parallel()

		section := docquiz.Section{
			Title:  "Usage",
			Blocks: []docquiz.ContentBlock{docquiz.CodeBlock("run()", "js")},
		}

		result := docquiz.FormatSection(section)

		assert.Equal(t, "Code example:\n```js\nrun()\n```\n\n", result)
	})

	t.Run("keeps block order", func(t *testing.T) {
		t.Parallel()

		section := docquiz.Section{
			Title: "Usage",
			Blocks: []docquiz.ContentBlock{
				docquiz.TextBlock("intro"),
				docquiz.CodeBlock("x=1", ""),
				docquiz.TextBlock("outro"),
			},
		}

		result := docquiz.FormatSection(section)

		expected := "Explanation: intro\n\nCode example:\n```\nx=1\n```\n\nExplanation: outro\n\n"
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty string for section without blocks", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docquiz.FormatSection(docquiz.Section{Title: "Empty"}))
	})
}
