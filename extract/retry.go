package extract

import (
	"context"
	"time"

	"github.com/fwojciec/docquiz"
)

var _ docquiz.Fetcher = (*RetryFetcher)(nil)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetryFetcher wraps a Fetcher and retries network failures with backoff.
// Errors with any code other than ENETWORK are returned immediately.
type RetryFetcher struct {
	fetcher docquiz.Fetcher
	delays  []time.Duration
	logf    LogFunc
}

// RetryOption configures a RetryFetcher.
type RetryOption func(*RetryFetcher)

// WithDelays sets the wait before each retry. The number of delays is the
// number of retries; an empty slice disables retrying.
func WithDelays(delays []time.Duration) RetryOption {
	return func(f *RetryFetcher) {
		f.delays = delays
	}
}

// WithLogFunc sets a function called before each retry.
func WithLogFunc(logf LogFunc) RetryOption {
	return func(f *RetryFetcher) {
		f.logf = logf
	}
}

// NewRetryFetcher returns a RetryFetcher using DefaultRetryDelays unless
// configured otherwise.
func NewRetryFetcher(fetcher docquiz.Fetcher, opts ...RetryOption) *RetryFetcher {
	f := &RetryFetcher{
		fetcher: fetcher,
		delays:  DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch fetches url, retrying ENETWORK failures once per configured delay.
// When ctx ends during a backoff wait the last fetch error is returned.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(f.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := f.fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if docquiz.ErrorCode(err) != docquiz.ENETWORK || attempt >= maxAttempts-1 {
			break
		}
		if ctx.Err() != nil {
			break
		}

		if f.logf != nil {
			f.logf("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		timer := time.NewTimer(f.delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", lastErr
		case <-timer.C:
		}
	}

	return "", lastErr
}
