package docquiz

import "context"

// Parser turns HTML into heading-delimited sections of typed content blocks.
type Parser interface {
	// Parse segments html at h1-h3 headings and classifies each section's
	// content into text and code blocks. A document without headings yields
	// an empty result, not an error. Returns EPARSE if the markup cannot be
	// read at all.
	Parse(html string) (*ParseResult, error)

	// Title returns the document title, or "" if there is none.
	Title(html string) string
}

// Page is the result of extracting one URL.
type Page struct {
	URL    string
	Title  string
	Result *ParseResult
}

// Extractor fetches and parses documentation pages.
type Extractor interface {
	// Extract fetches url and parses it. Fetch errors are returned unmodified
	// and no partial result is produced.
	Extract(ctx context.Context, url string) (*Page, error)
}

// ExtractProgress reports progress during batch extraction.
type ExtractProgress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ExtractProgressFunc is called as pages are processed.
type ExtractProgressFunc func(ExtractProgress)
