package mock

import (
	"context"

	"github.com/fwojciec/docquiz"
)

var _ docquiz.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docquiz.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ docquiz.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of docquiz.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, url string) error
}

func (l *HostLimiter) Wait(ctx context.Context, url string) error {
	return l.WaitFn(ctx, url)
}
