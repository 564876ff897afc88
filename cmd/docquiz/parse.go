package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/docquiz"
	"github.com/fwojciec/docquiz/extract"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	urls := uniqueURLs(c.URLs)

	if len(urls) == 1 {
		page, err := deps.Extractor.Extract(deps.Ctx, urls[0])
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
			return err
		}
		return writeJSON(deps, page.Result)
	}

	deps.Extractor.Concurrency = c.Concurrency

	var failed int
	pages, err := deps.Extractor.ExtractAll(deps.Ctx, urls, func(p docquiz.ExtractProgress) {
		if p.Error != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "[%d/%d] error: %s: %s\n", p.Completed, p.Total,
				extract.TruncateURL(p.URL, 60), docquiz.ErrorMessage(p.Error))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
		return err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, page := range pages {
		if page == nil {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(page.URL)
		if err != nil {
			return err
		}
		value, err := page.Result.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	if err := writeIndented(deps, buf.Bytes()); err != nil {
		return err
	}

	if failed > 0 {
		return docquiz.Errorf(docquiz.ENETWORK, "%d of %d pages failed", failed, len(urls))
	}
	return nil
}

func writeJSON(deps *Dependencies, result *docquiz.ParseResult) error {
	data, err := result.MarshalJSON()
	if err != nil {
		return err
	}
	return writeIndented(deps, data)
}

func writeIndented(deps *Dependencies, data []byte) error {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := deps.Stdout.Write(out.Bytes())
	return err
}

// uniqueURLs drops repeated URLs, keeping the first occurrence.
func uniqueURLs(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
