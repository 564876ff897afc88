package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docquiz"
	"github.com/fwojciec/docquiz/extract"
	"github.com/fwojciec/docquiz/gemini"
	"github.com/fwojciec/docquiz/goquery"
	qhttp "github.com/fwojciec/docquiz/http"
	"github.com/fwojciec/docquiz/openai"
	qslog "github.com/fwojciec/docquiz/slog"
	"github.com/fwojciec/docquiz/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	if err := LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configPath is read for flag defaults when it exists.
const configPath = "~/.docquiz/config.yaml"

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db and DOCQUIZ_DB override it.
	DBPath string

	// Config file paths searched for flag defaults.
	ConfigPaths []string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher, if set, replaces the HTTP fetcher. Used for end-to-end testing.
	Fetcher docquiz.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		ConfigPaths: []string{configPath},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docquiz"),
		kong.Description("Turn documentation pages into sections and quizzes."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"user_agent": qhttp.DefaultUserAgent},
		kong.Configuration(YAMLConfig, m.ConfigPaths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docquiz --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Extractor = m.newExtractor(cli, deps.Logger)

	cmd := kongCtx.Selected().Name

	switch cmd {
	case "study", "sessions", "show", "quiz", "delete":
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		if err := os.MkdirAll(filepath.Dir(m.DBPath), 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCQUIZ_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Sessions = sqlite.NewSessionService(m.DB)
	}

	if cmd == "quiz" {
		generator, err := newQuizGenerator(ctx, cli, stderr)
		if err != nil {
			return err
		}
		deps.Quiz = qslog.NewLoggingQuizGenerator(generator, deps.Logger)
	}

	if cmd == "sections" && cli.Sections.Tokens {
		counter, err := gemini.NewTokenCounter(gemini.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.Tokens = counter
	}

	return kongCtx.Run(deps)
}

func (m *Main) newExtractor(cli *CLI, logger *slog.Logger) *extract.Service {
	var fetcher docquiz.Fetcher = m.Fetcher
	if fetcher == nil {
		fetcher = qhttp.NewFetcher(
			qhttp.WithTimeout(cli.Timeout),
			qhttp.WithUserAgent(cli.UserAgent),
		)
	}
	fetcher = qslog.NewLoggingFetcher(fetcher, logger)
	fetcher = extract.NewLimitedFetcher(fetcher, extract.NewHostLimiter(extract.DefaultRequestsPerSecond))
	if cli.Retries > 0 {
		fetcher = extract.NewRetryFetcher(fetcher,
			extract.WithDelays(retryDelays(cli.Retries)),
			extract.WithLogFunc(func(format string, args ...any) {
				logger.Info(fmt.Sprintf(format, args...))
			}),
		)
	}

	parser := goquery.NewParser(goquery.WithTitlePolicy(docquiz.TitlePolicy(cli.Titles)))

	return &extract.Service{
		Fetcher: fetcher,
		Parser:  qslog.NewLoggingParser(parser, logger),
	}
}

func newQuizGenerator(ctx context.Context, cli *CLI, stderr io.Writer) (docquiz.QuizGenerator, error) {
	switch cli.Quiz.Provider {
	case "openai":
		if cli.OpenAIAPIKey == "" {
			fmt.Fprintln(stderr, "Hint: set OPENAI_API_KEY in the environment or in .env")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		client := openai.NewClient(cli.OpenAIAPIKey, cli.OpenAIBaseURL)
		return openai.NewQuizGenerator(client, openai.WithModel(cli.Quiz.Model)), nil
	default:
		if cli.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "Hint: set GEMINI_API_KEY in the environment or in .env. Get a key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewQuizGenerator(client, gemini.WithModel(cli.Quiz.Model)), nil
	}
}

// newLogger logs to stderr when verbose and discards otherwise.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, nil))
}

// retryDelays returns n backoff delays following DefaultRetryDelays and
// repeating its longest delay past the third retry.
func retryDelays(n int) []time.Duration {
	base := extract.DefaultRetryDelays()
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = base[min(i, len(base)-1)]
	}
	return delays
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "docquiz.db"
	}
	return filepath.Join(home, ".docquiz", "docquiz.db")
}
