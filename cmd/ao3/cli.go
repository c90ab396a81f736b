package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/ao3"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Pages     ao3.PageService
	Feeds     ao3.FeedService
	Converter ao3.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout time.Duration `short:"t" default:"30s" help:"Timeout per request"`
	Verbose bool          `short:"v" help:"Log every request"`

	Tag  TagCmd  `cmd:"" help:"Print the internal ID of a tag"`
	URL  URLCmd  `cmd:"" name:"url" help:"Print the URL of a work"`
	Work WorkCmd `cmd:"" help:"Print work metadata as JSON lines"`
	Feed FeedCmd `cmd:"" help:"List works from a tag's Atom feed"`
}

// TagCmd is the "tag" subcommand.
type TagCmd struct {
	Name string `arg:"" help:"Tag name, e.g. \"Fluff\""`
}

// URLCmd is the "url" subcommand.
type URLCmd struct {
	WorkID     string `arg:"" name:"work-id" help:"Work ID"`
	Chapter    string `short:"c" help:"Chapter ID"`
	Collection string `short:"C" help:"Collection name"`
}

// WorkCmd is the "work" subcommand.
type WorkCmd struct {
	IDs         []string `arg:"" name:"work-id" help:"Work IDs"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64  `short:"r" default:"1" help:"Requests per second (0 disables pacing)"`
	Markdown    bool     `short:"m" help:"Include the summary as Markdown"`
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	Tag    string `arg:"" help:"Tag ID, or tag name with --by-name"`
	ByName bool   `short:"n" help:"Resolve the argument as a tag name first"`
}

// errorText returns the message to show for err. Application errors show
// their message; anything else is shown in full.
func errorText(err error) string {
	if ao3.ErrorCode(err) == ao3.EINTERNAL {
		return err.Error()
	}
	return ao3.ErrorMessage(err)
}
