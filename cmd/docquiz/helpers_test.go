package main_test

import (
	"bytes"
	"context"
	"time"

	"github.com/fwojciec/docquiz"
	main "github.com/fwojciec/docquiz/cmd/docquiz"
	"github.com/fwojciec/docquiz/extract"
	"github.com/fwojciec/docquiz/goquery"
	"github.com/fwojciec/docquiz/mock"
)

const introPage = `<html><head><title>Guide</title></head><body>
<h1>Intro</h1>
<p>Hello <code>world</code>.</p>
<h2>Usage</h2>
<pre><code class="language-go">fmt.Println("hi")</code></pre>
<p>Run it.</p>
</body></html>`

// pageFetcher serves HTML by URL and fails with ENETWORK for unknown URLs.
func pageFetcher(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			html, ok := pages[url]
			if !ok {
				return "", docquiz.Errorf(docquiz.ENETWORK, "connection refused")
			}
			return html, nil
		},
	}
}

func newExtractor(pages map[string]string) *extract.Service {
	return &extract.Service{
		Fetcher: pageFetcher(pages),
		Parser:  goquery.NewParser(),
	}
}

func newDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}
}

func storedSession() *docquiz.Session {
	r := &docquiz.ParseResult{}
	r.Set("Intro", []docquiz.ContentBlock{docquiz.TextBlock("Hello world.")})
	r.Set("Usage", []docquiz.ContentBlock{
		docquiz.CodeBlock("fmt.Println(\"hi\")\nfmt.Println(\"bye\")", "go"),
		docquiz.TextBlock("Run it."),
	})
	return &docquiz.Session{
		ID:        "3f2b9c1e-0000-4000-8000-000000000001",
		URL:       "https://example.com/guide",
		Title:     "Guide",
		Result:    r,
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// sessionStore returns a SessionService holding sessions.
func sessionStore(sessions ...*docquiz.Session) *mock.SessionService {
	return &mock.SessionService{
		FindSessionByIDFn: func(_ context.Context, id string) (*docquiz.Session, error) {
			for _, s := range sessions {
				if s.ID == id {
					return s, nil
				}
			}
			return nil, docquiz.Errorf(docquiz.ENOTFOUND, "session %q not found", id)
		},
		FindSessionsFn: func(_ context.Context, _ docquiz.SessionFilter) ([]*docquiz.Session, error) {
			return sessions, nil
		},
	}
}
