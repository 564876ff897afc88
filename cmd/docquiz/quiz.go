package main

import (
	"fmt"

	"github.com/fwojciec/docquiz"
)

// Run executes the quiz command.
func (c *QuizCmd) Run(deps *Dependencies) error {
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

	quiz, err := deps.Quiz.GenerateQuiz(deps.Ctx, section, docquiz.QuizOptions{
		MaxQuestions: c.Questions,
		Language:     c.Language,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docquiz.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n%s\n", section.Title, quiz)
	return nil
}
