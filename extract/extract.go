// Package extract fetches documentation pages and parses them into sections,
// one page at a time or in concurrent batches.
package extract

import (
	"context"
	"sync"

	"github.com/fwojciec/docquiz"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages ExtractAll processes at once.
const DefaultConcurrency = 3

var _ docquiz.Extractor = (*Service)(nil)

// Service combines a Fetcher and a Parser. Rate limiting and retries are
// Fetcher decorators; see LimitedFetcher and RetryFetcher.
type Service struct {
	Fetcher docquiz.Fetcher
	Parser  docquiz.Parser

	// Concurrency bounds ExtractAll. Zero means DefaultConcurrency.
	Concurrency int
}

// Extract fetches rawURL and parses the returned markup. Fetch errors are
// returned unmodified.
func (s *Service) Extract(ctx context.Context, rawURL string) (*docquiz.Page, error) {
	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	result, err := s.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	return &docquiz.Page{
		URL:    rawURL,
		Title:  s.Parser.Title(html),
		Result: result,
	}, nil
}

// ExtractAll extracts urls concurrently. The returned slice is in input
// order; the slot of a URL that failed is nil and its error is reported
// to progress. Only cancellation of ctx fails the batch.
func (s *Service) ExtractAll(ctx context.Context, urls []string, progress docquiz.ExtractProgressFunc) ([]*docquiz.Page, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	pages := make([]*docquiz.Page, len(urls))

	var (
		mu        sync.Mutex
		completed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		g.Go(func() error {
			page, err := s.Extract(gctx, u)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				pages[i] = page
			}
			completed++
			if progress != nil {
				progress(docquiz.ExtractProgress{
					URL:       u,
					Completed: completed,
					Total:     len(urls),
					Error:     err,
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return pages, err
	}
	return pages, nil
}
