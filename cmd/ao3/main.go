package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ao3"
	"github.com/fwojciec/ao3/archive"
	"github.com/fwojciec/ao3/gofeed"
	"github.com/fwojciec/ao3/goquery"
	"github.com/fwojciec/ao3/htmltomarkdown"
	ao3http "github.com/fwojciec/ao3/http"
	ao3slog "github.com/fwojciec/ao3/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Archive base URL. Set before calling Run().
	BaseURL string

	// User-Agent sent with every request. Set before calling Run().
	UserAgent string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		BaseURL:   envOr("AO3_BASE_URL", ao3.BaseURL),
		UserAgent: envOr("AO3_USER_AGENT", ao3http.DefaultUserAgent),
	}
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
		kong.Name("ao3"),
		kong.Description("Extract work and tag metadata from Archive of Our Own pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ao3 --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var fetcher ao3.Fetcher = ao3http.NewFetcher(
		ao3http.WithTimeout(cli.Timeout),
		ao3http.WithUserAgent(m.UserAgent),
	)
	fetcher = ao3slog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	pages := &archive.Service{
		Fetcher: fetcher,
		Parser:  goquery.NewParser(),
		BaseURL: m.BaseURL,
	}
	feeds := gofeed.NewFeedReader(fetcher)
	feeds.BaseURL = m.BaseURL

	deps.Logger = logger
	deps.Pages = ao3slog.NewLoggingPageService(pages, logger)
	deps.Feeds = ao3slog.NewLoggingFeedService(feeds, logger)
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
