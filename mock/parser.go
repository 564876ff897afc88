package mock

import (
	"context"

	"github.com/fwojciec/docquiz"
)

var _ docquiz.Parser = (*Parser)(nil)

// Parser is a mock implementation of docquiz.Parser.
type Parser struct {
	ParseFn func(html string) (*docquiz.ParseResult, error)
	TitleFn func(html string) string
}

func (p *Parser) Parse(html string) (*docquiz.ParseResult, error) {
	return p.ParseFn(html)
}

func (p *Parser) Title(html string) string {
	return p.TitleFn(html)
}

var _ docquiz.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docquiz.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string) (*docquiz.Page, error)
}

func (e *Extractor) Extract(ctx context.Context, url string) (*docquiz.Page, error) {
	return e.ExtractFn(ctx, url)
}
