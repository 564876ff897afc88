package main

import (
	"fmt"

	"github.com/fwojciec/docquiz"
	"github.com/fwojciec/docquiz/extract"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	page, err := deps.Extractor.Extract(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
		return err
	}

	if page.Title != "" {
		fmt.Fprintf(deps.Stdout, "%s\n\n", page.Title)
	}

	if page.Result.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "No sections found. The page has no h1-h3 headings.")
		return nil
	}

	for i, s := range page.Result.Sections {
		line := fmt.Sprintf("%2d. %s  (%d text, %d code)", i+1, s.Title,
			s.Count(docquiz.BlockText), s.Count(docquiz.BlockCode))
		if deps.Tokens != nil {
			n, err := deps.Tokens.CountQuizTokens(deps.Ctx, s, docquiz.QuizOptions{})
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
				return err
			}
			line += "  " + extract.FormatTokens(n)
		}
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
