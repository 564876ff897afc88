package docquiz

import "context"

// Fetcher retrieves raw markup from URLs.
type Fetcher interface {
	// Fetch issues a GET for url and returns the response body as HTML,
	// whatever the status code. Failures to complete the request are
	// returned with code ENETWORK.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// HostLimiter rate limits page requests by the host of their URL.
type HostLimiter interface {
	// Wait blocks until a request to url is allowed or ctx is done.
	// A wait that ends early is returned with code ENETWORK.
	Wait(ctx context.Context, url string) error
}
