package extract

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/docquiz"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond is the per-host rate used by the CLI.
const DefaultRequestsPerSecond = 2.0

var _ docquiz.HostLimiter = (*HostLimiter)(nil)

// HostLimiter keeps one token bucket per documentation host, so batches
// spanning several sites only queue behind requests to the same site.
type HostLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rps     float64
}

// NewHostLimiter allows rps page requests per second to each host, with a
// burst of 1.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		buckets: make(map[string]*rate.Limiter),
		rps:     rps,
	}
}

// Wait blocks until a request to rawURL's host is allowed.
func (h *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	if err := h.bucket(hostKey(rawURL)).Wait(ctx); err != nil {
		return docquiz.WrapError(docquiz.ENETWORK, err, "rate limit wait for %s", rawURL)
	}
	return nil
}

// Hosts returns how many hosts have been seen.
func (h *HostLimiter) Hosts() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.buckets)
}

func (h *HostLimiter) bucket(host string) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.buckets[host]
	if !ok {
		b = rate.NewLimiter(rate.Limit(h.rps), 1)
		h.buckets[host] = b
	}
	return b
}

// hostKey returns the lowercased host (with port) of rawURL, or rawURL
// itself when it has none.
func hostKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return strings.ToLower(u.Host)
}

var _ docquiz.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher waits on a HostLimiter before every fetch. Wrap it in a
// RetryFetcher so each attempt is limited.
type LimitedFetcher struct {
	fetcher docquiz.Fetcher
	limiter docquiz.HostLimiter
}

// NewLimitedFetcher returns a Fetcher that waits on limiter before
// delegating to fetcher.
func NewLimitedFetcher(fetcher docquiz.Fetcher, limiter docquiz.HostLimiter) *LimitedFetcher {
	return &LimitedFetcher{fetcher: fetcher, limiter: limiter}
}

// Fetch waits for rawURL's host and then fetches it.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return "", err
	}
	return f.fetcher.Fetch(ctx, rawURL)
}
