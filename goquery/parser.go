// Package goquery implements docquiz.Parser on top of goquery. It splits a
// page into h1-h3 sections and classifies each section's content into text
// and code blocks.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docquiz"
)

// Ensure Parser implements docquiz.Parser at compile time.
var _ docquiz.Parser = (*Parser)(nil)

// Parser extracts sections from HTML. It holds no per-document state and is
// safe for concurrent use.
type Parser struct {
	policy docquiz.TitlePolicy
}

// Option configures a Parser.
type Option func(*Parser)

// WithTitlePolicy sets how headings with the same cleaned title are stored.
// Defaults to docquiz.TitleOverwrite.
func WithTitlePolicy(policy docquiz.TitlePolicy) Option {
	return func(p *Parser) {
		p.policy = policy
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		policy: docquiz.TitleOverwrite,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse segments the document at h1-h3 headings and classifies every sibling
// in each segment. Sections without blocks are dropped.
func (p *Parser) Parse(html string) (*docquiz.ParseResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docquiz.WrapError(docquiz.EPARSE, err, "failed to parse HTML: %v", err)
	}

	result := &docquiz.ParseResult{}
	for _, seg := range Segments(doc) {
		var blocks []docquiz.ContentBlock
		for _, node := range seg.Nodes {
			blocks = append(blocks, Classify(node)...)
		}
		result.Add(seg.Heading, blocks, p.policy)
	}

	return result, nil
}

// Title returns the normalized document title.
func (p *Parser) Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return Normalize(doc.Find("title").First().Text())
}
