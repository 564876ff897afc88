package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docquiz"
	main "github.com/fwojciec/docquiz/cmd/docquiz"
	"github.com/fwojciec/docquiz/extract"
	"github.com/fwojciec/docquiz/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyCmd_Run(t *testing.T) {
	t.Parallel()

	const url = "https://example.com/guide"

	t.Run("stores a new session", func(t *testing.T) {
		t.Parallel()

		var created *docquiz.Session
		sessions := &mock.SessionService{
			FindSessionsFn: func(_ context.Context, filter docquiz.SessionFilter) ([]*docquiz.Session, error) {
				require.NotNil(t, filter.URL)
				assert.Equal(t, url, *filter.URL)
				assert.Equal(t, 1, filter.Limit)
				return nil, nil
			},
			CreateSessionFn: func(_ context.Context, s *docquiz.Session) error {
				s.ID = "sess-1"
				created = s
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Extractor = newExtractor(map[string]string{url: introPage})
		deps.Sessions = sessions

		require.NoError(t, (&main.StudyCmd{URL: url}).Run(deps))

		require.NotNil(t, created)
		assert.Equal(t, url, created.URL)
		assert.Equal(t, "Guide", created.Title)
		assert.Equal(t, []string{"Intro", "Usage"}, created.Result.Titles())
		assert.NotEmpty(t, created.ContentHash)
		assert.Contains(t, stdout.String(), "Created session sess-1")
		assert.Contains(t, stdout.String(), " 1. Intro")
		assert.Contains(t, stdout.String(), " 2. Usage")
	})

	t.Run("reuses latest session when content is unchanged", func(t *testing.T) {
		t.Parallel()

		ext := newExtractor(map[string]string{url: introPage})
		page, err := ext.Extract(context.Background(), url)
		require.NoError(t, err)
		hash, err := extract.ContentHash(page.Result)
		require.NoError(t, err)

		sessions := &mock.SessionService{
			FindSessionsFn: func(context.Context, docquiz.SessionFilter) ([]*docquiz.Session, error) {
				return []*docquiz.Session{{ID: "sess-old", URL: url, Result: page.Result, ContentHash: hash}}, nil
			},
			CreateSessionFn: func(context.Context, *docquiz.Session) error {
				t.Fatal("session must not be created")
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Extractor = ext
		deps.Sessions = sessions

		require.NoError(t, (&main.StudyCmd{URL: url}).Run(deps))
		assert.Contains(t, stdout.String(), "Unchanged since session sess-old")
	})

	t.Run("--new stores a session even if unchanged", func(t *testing.T) {
		t.Parallel()

		var createdCount int
		sessions := &mock.SessionService{
			FindSessionsFn: func(context.Context, docquiz.SessionFilter) ([]*docquiz.Session, error) {
				t.Fatal("lookup must be skipped")
				return nil, nil
			},
			CreateSessionFn: func(_ context.Context, s *docquiz.Session) error {
				createdCount++
				s.ID = "sess-new"
				return nil
			},
		}

		deps := newDeps(&bytes.Buffer{}, &bytes.Buffer{})
		deps.Extractor = newExtractor(map[string]string{url: introPage})
		deps.Sessions = sessions

		require.NoError(t, (&main.StudyCmd{URL: url, New: true}).Run(deps))
		assert.Equal(t, 1, createdCount)
	})

	t.Run("refuses pages without sections", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := newDeps(&bytes.Buffer{}, stderr)
		deps.Extractor = newExtractor(map[string]string{url: "<p>flat</p>"})
		deps.Sessions = &mock.SessionService{}

		err := (&main.StudyCmd{URL: url}).Run(deps)

		assert.Equal(t, docquiz.EINVALID, docquiz.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no sections found")
	})

	t.Run("reports fetch failure without storing", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := newDeps(&bytes.Buffer{}, stderr)
		deps.Extractor = newExtractor(nil)
		deps.Sessions = &mock.SessionService{}

		err := (&main.StudyCmd{URL: url}).Run(deps)

		assert.Equal(t, docquiz.ENETWORK, docquiz.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: connection refused")
	})
}
