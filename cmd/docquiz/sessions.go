package main

import (
	"fmt"

	"github.com/fwojciec/docquiz"
)

// Run executes the sessions command.
func (c *SessionsCmd) Run(deps *Dependencies) error {
	filter := docquiz.SessionFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	sessions, err := deps.Sessions.FindSessions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(deps.Stdout, "No sessions found. Use 'docquiz study' to create one.")
		return nil
	}

	for _, s := range sessions {
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %2d sections  %s  %s\n",
			s.ID, s.CreatedAt.Local().Format("2006-01-02 15:04"), s.Result.Len(), title, s.URL)
	}
	return nil
}
