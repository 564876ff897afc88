package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docquiz"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	session, err := findSession(deps, c.Session)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
		return err
	}

	section, err := findSection(session.Result, c.Section)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "# %s\n", section.Title)
	for _, b := range section.Blocks {
		fmt.Fprintln(deps.Stdout)
		switch b.Type {
		case docquiz.BlockCode:
			if b.Language != "" {
				fmt.Fprintf(deps.Stdout, "    [%s]\n", b.Language)
			}
			for _, line := range strings.Split(b.Content, "\n") {
				fmt.Fprintf(deps.Stdout, "    %s\n", line)
			}
		default:
			fmt.Fprintln(deps.Stdout, b.Content)
		}
	}
	return nil
}
