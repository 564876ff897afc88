package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docquiz"
	"github.com/fwojciec/docquiz/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstBodyChild parses html and returns the first element inside <body>.
func firstBodyChild(t *testing.T, html string) *gq.Selection {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	sel := doc.Find("body").Children().First()
	require.Equal(t, 1, sel.Length())
	return sel
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("pre without code yields one code block", func(t *testing.T) {
		t.Parallel()

		node := firstBodyChild(t, "<pre>  plain\n  text  </pre>")

		blocks := goquery.Classify(node)

		assert.Equal(t, []docquiz.ContentBlock{docquiz.CodeBlock("plain\n  text", "")}, blocks)
	})

	t.Run("preserves whitespace inside code", func(t *testing.T) {
		t.Parallel()

		node := firstBodyChild(t, "<pre><code>\nif x {\n\treturn\n}\n</code></pre>")

		blocks := goquery.Classify(node)

		assert.Equal(t, []docquiz.ContentBlock{docquiz.CodeBlock("if x {\n\treturn\n}", "")}, blocks)
	})

	t.Run("skips empty code elements", func(t *testing.T) {
		t.Parallel()

		node := firstBodyChild(t, "<pre><code>  </code><code>b</code></pre>")

		blocks := goquery.Classify(node)

		assert.Equal(t, []docquiz.ContentBlock{docquiz.CodeBlock("b", "")}, blocks)
	})

	t.Run("empty pre yields nothing", func(t *testing.T) {
		t.Parallel()

		node := firstBodyChild(t, "<pre>   </pre>")

		assert.Empty(t, goquery.Classify(node))
	})

	t.Run("wrapper emits code before its text and keeps code in the text", func(t *testing.T) {
		t.Parallel()

		node := firstBodyChild(t, "<div>\n<p>Intro <code>x</code>.</p>\n<pre><code class=\"language-go\">fmt.Println()</code></pre>\n<p>Done.</p>\n</div>")

		blocks := goquery.Classify(node)

		assert.Equal(t, []docquiz.ContentBlock{
			docquiz.CodeBlock("fmt.Println()", "go"),
			docquiz.TextBlock("Intro x. fmt.Println() Done."),
		}, blocks)
	})

	t.Run("highlighter wrapper yields code and text", func(t *testing.T) {
		t.Parallel()

		node := firstBodyChild(t, `<div class="highlight"><pre><code>x=1</code></pre></div>`)

		blocks := goquery.Classify(node)

		assert.Equal(t, []docquiz.ContentBlock{
			docquiz.CodeBlock("x=1", ""),
			docquiz.TextBlock("x=1"),
		}, blocks)
	})

	t.Run("adjacent prose and pre text are joined without a separator", func(t *testing.T) {
		t.Parallel()

		node := firstBodyChild(t, `<div><p>Intro</p><pre>y()</pre></div>`)

		blocks := goquery.Classify(node)

		assert.Equal(t, []docquiz.ContentBlock{
			docquiz.CodeBlock("y()", ""),
			docquiz.TextBlock("Introy()"),
		}, blocks)
	})

	t.Run("noscript text is prose", func(t *testing.T) {
		t.Parallel()

		doc, err := gq.NewDocumentFromReader(strings.NewReader(`<div id="root"><noscript>Enable JS please</noscript></div>`))
		require.NoError(t, err)

		blocks := goquery.Classify(doc.Find("#root noscript"))

		assert.Equal(t, []docquiz.ContentBlock{docquiz.TextBlock("Enable JS please")}, blocks)
	})

	t.Run("collects code from several nested pre elements in order", func(t *testing.T) {
		t.Parallel()

		node := firstBodyChild(t, `<div><div><pre>one</pre></div> <pre><code>two</code></pre></div>`)

		blocks := goquery.Classify(node)

		assert.Equal(t, []docquiz.ContentBlock{
			docquiz.CodeBlock("one", ""),
			docquiz.CodeBlock("two", ""),
			docquiz.TextBlock("one two"),
		}, blocks)
	})

	t.Run("ignores script and style content", func(t *testing.T) {
		t.Parallel()

		node := firstBodyChild(t, `<div><style>.a{color:red}</style><p>Visible</p><script>var hidden = 1</script></div>`)

		blocks := goquery.Classify(node)

		assert.Equal(t, []docquiz.ContentBlock{docquiz.TextBlock("Visible")}, blocks)
	})

	t.Run("script sibling yields nothing", func(t *testing.T) {
		t.Parallel()

		doc, err := gq.NewDocumentFromReader(strings.NewReader(`<div id="root"><script>var x = 1</script></div>`))
		require.NoError(t, err)

		blocks := goquery.Classify(doc.Find("#root script"))

		assert.Empty(t, blocks)
	})

	t.Run("does not modify the source document", func(t *testing.T) {
		t.Parallel()

		doc, err := gq.NewDocumentFromReader(strings.NewReader(`<div id="root"><p>a <code>b</code></p><pre>c</pre></div>`))
		require.NoError(t, err)
		before, err := doc.Html()
		require.NoError(t, err)

		goquery.Classify(doc.Find("#root"))

		after, err := doc.Html()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("reads language hints", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			html string
			want string
		}{
			{"class on code", `<pre><code class="hljs language-Python">x</code></pre>`, "python"},
			{"class on pre", `<pre class="lang-rust"><code>x</code></pre>`, "rust"},
			{"class on container", `<div class="language-bash"><pre>x</pre></div>`, "bash"},
			{"data attribute", `<pre data-language="ts"><code>x</code></pre>`, "ts"},
			{"no hint", `<pre><code class="hljs">x</code></pre>`, ""},
		}

		for _, tt := range tests {
			node := firstBodyChild(t, tt.html)
			blocks := goquery.Classify(node)
			require.Len(t, blocks, 1, tt.name)
			assert.Equal(t, tt.want, blocks[0].Language, tt.name)
		}
	})
}
