package main

import (
	"fmt"

	"github.com/fwojciec/docquiz"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docquiz.Errorf(docquiz.EINVALID, "use --force to confirm deletion")
	}

	session, err := findSession(deps, c.Session)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
		return err
	}

	if err := deps.Sessions.DeleteSession(deps.Ctx, session.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted session %s (%s)\n", session.ID, session.URL)
	return nil
}
