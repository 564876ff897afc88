package extract

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docquiz"
)

// ContentHash returns a hex xxhash of the result's JSON encoding. Two
// results with the same sections, in the same order, hash equally.
func ContentHash(result *docquiz.ParseResult) (string, error) {
	if result == nil {
		return "", docquiz.Errorf(docquiz.EINVALID, "result required")
	}
	data, err := result.MarshalJSON()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", xxhash.Sum64(data)), nil
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatTokens formats token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}
