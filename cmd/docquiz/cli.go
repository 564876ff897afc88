package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docquiz"
	"github.com/fwojciec/docquiz/extract"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor *extract.Service
	Sessions  docquiz.SessionService
	Quiz      docquiz.QuizGenerator
	Tokens    docquiz.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout   time.Duration `default:"10s" help:"Fetch timeout"`
	Retries   int           `default:"0" help:"Retries for failed fetches (backoff 1s, 2s, 4s)"`
	UserAgent string        `name:"user-agent" default:"${user_agent}" help:"User-Agent header sent when fetching"`
	Titles    string        `enum:"overwrite,numbered" default:"overwrite" help:"Repeated section titles: overwrite keeps the last, numbered keeps all"`
	DB        string        `name:"db" env:"DOCQUIZ_DB" help:"Session database path (default ~/.docquiz/docquiz.db)"`
	Verbose   bool          `short:"v" help:"Log fetches, parses and model calls to stderr"`

	GeminiAPIKey  string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	OpenAIAPIKey  string `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIBaseURL string `name:"openai-base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible API base URL"`

	Parse    ParseCmd    `cmd:"" help:"Extract sections from pages and print them as JSON"`
	Sections SectionsCmd `cmd:"" help:"Summarise the sections of a page"`
	Study    StudyCmd    `cmd:"" help:"Extract a page and store it as a study session"`
	Sessions SessionsCmd `cmd:"" help:"List stored study sessions"`
	Show     ShowCmd     `cmd:"" help:"Print a section of a stored session"`
	Quiz     QuizCmd     `cmd:"" help:"Generate a quiz for a section of a stored session"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a stored session"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs"`
	Concurrency int      `short:"c" default:"3" help:"Pages fetched at once"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Tokens bool   `help:"Estimate quiz prompt tokens per section"`
}

// StudyCmd is the "study" subcommand.
type StudyCmd struct {
	URL string `arg:"" help:"Page URL"`
	New bool   `help:"Store a new session even if the page is unchanged"`
}

// SessionsCmd is the "sessions" subcommand.
type SessionsCmd struct {
	URL   string `help:"Only list sessions for this URL"`
	Limit int    `short:"n" default:"0" help:"Maximum sessions to list (0 for all)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Session string `arg:"" help:"Session ID or unique ID prefix"`
	Section string `arg:"" help:"Section title or 1-based number"`
}

// QuizCmd is the "quiz" subcommand.
type QuizCmd struct {
	Session   string `arg:"" help:"Session ID or unique ID prefix"`
	Section   string `arg:"" help:"Section title or 1-based number"`
	Provider  string `enum:"gemini,openai" default:"gemini" help:"Model provider"`
	Model     string `help:"Model name (provider default when empty)"`
	Questions int    `short:"q" default:"3" help:"Maximum number of questions"`
	Language  string `help:"Language to write the quiz in"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Session string `arg:"" help:"Session ID or unique ID prefix"`
	Force   bool   `help:"Confirm deletion"`
}
