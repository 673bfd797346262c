package main

import (
	"context"
	"io"

	"github.com/revoapp/revodoc"
	"github.com/revoapp/revodoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Client    revodoc.DataClient
	Refresher revodoc.Refresher
	Renderer  revodoc.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Guide        GuideCmd        `cmd:"" help:"Show the Revo product guide"`
	Troubleshoot TroubleshootCmd `cmd:"" help:"Browse known fixes by category and query"`
	Changelog    ChangelogCmd    `cmd:"" help:"Show recent releases"`
	Refresh      RefreshCmd      `cmd:"" help:"Refresh cached data from the update server"`
	Build        BuildCmd        `cmd:"" help:"Generate the static documentation site"`
}

// GuideCmd is the "guide" subcommand.
type GuideCmd struct{}

// TroubleshootCmd is the "troubleshoot" subcommand.
type TroubleshootCmd struct {
	Category string   `short:"c" default:"all" enum:"all,windows,macos,macro,pro" help:"Filter by category"`
	Query    string   `short:"q" help:"Case-insensitive search over title, body, and labels"`
	Labels   []string `short:"l" default:"troubleshooting" help:"Issue labels to fetch (repeatable)"`
}

// ChangelogCmd is the "changelog" subcommand.
type ChangelogCmd struct {
	Limit int `short:"n" default:"10" help:"Maximum releases to show"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct {
	Labels []string `short:"l" default:"troubleshooting" help:"Issue labels to fetch (repeatable)"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Out    string   `short:"o" default:"site" help:"Output directory"`
	Labels []string `short:"l" default:"troubleshooting" help:"Issue labels to fetch (repeatable)"`
}
