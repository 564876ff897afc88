package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docquiz"
)

var _ docquiz.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging.
type LoggingParser struct {
	next   docquiz.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next docquiz.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the section count.
func (p *LoggingParser) Parse(html string) (result *docquiz.ParseResult, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"bytes", len(html),
			"sections", result.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html)
}

// Title delegates to the wrapped parser.
func (p *LoggingParser) Title(html string) string {
	return p.next.Title(html)
}
