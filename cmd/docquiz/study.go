package main

import (
	"fmt"

	"github.com/fwojciec/docquiz"
	"github.com/fwojciec/docquiz/extract"
)

// Run executes the study command.
func (c *StudyCmd) Run(deps *Dependencies) error {
	page, err := deps.Extractor.Extract(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
		return err
	}

	if page.Result.Len() == 0 {
		fmt.Fprintf(deps.Stderr, "error: no sections found at %s\n", c.URL)
		return docquiz.Errorf(docquiz.EINVALID, "no sections found at %s", c.URL)
	}

	hash, err := extract.ContentHash(page.Result)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
		return err
	}

	if !c.New {
		latest, err := deps.Sessions.FindSessions(deps.Ctx, docquiz.SessionFilter{URL: &c.URL, Limit: 1})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
			return err
		}
		if len(latest) == 1 && latest[0].ContentHash == hash {
			fmt.Fprintf(deps.Stdout, "Unchanged since session %s\n", latest[0].ID)
			printTitles(deps, latest[0].Result)
			return nil
		}
	}

	session := &docquiz.Session{
		URL:         c.URL,
		Title:       page.Title,
		Result:      page.Result,
		ContentHash: hash,
	}
	if err := deps.Sessions.CreateSession(deps.Ctx, session); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created session %s\n", session.ID)
	printTitles(deps, session.Result)
	return nil
}

func printTitles(deps *Dependencies, result *docquiz.ParseResult) {
	for i, title := range result.Titles() {
		fmt.Fprintf(deps.Stdout, "%2d. %s\n", i+1, title)
	}
}
