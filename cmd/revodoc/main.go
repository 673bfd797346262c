package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/revoapp/revodoc/blackfriday"
	"github.com/revoapp/revodoc/cache"
	"github.com/revoapp/revodoc/github"
	revoslog "github.com/revoapp/revodoc/slog"
	"github.com/revoapp/revodoc/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// Repository the documentation data is read from, as "owner/repo".
	Repo string

	// SQLite database backing the durable cache tier.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Repo:   defaultRepo(),
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
		kong.Name("revodoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'revodoc --help' to see available commands")
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

	owner, repo, err := splitRepo(m.Repo)
	if err != nil {
		return err
	}

	// Open the durable cache tier. A missing database is created on open.
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set REVODOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	store := cache.New(sqlite.NewCacheService(m.DB), cache.WithLogger(logger))
	client := github.NewClient(store,
		github.WithRepo(owner, repo),
		github.WithLogger(logger),
	)

	deps.DB = m.DB
	deps.Client = revoslog.NewLoggingDataClient(client, logger)
	deps.Refresher = client
	deps.Renderer = blackfriday.NewRenderer()

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("REVODOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "revodoc.db"
	}
	dir := filepath.Join(home, ".revodoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "revodoc.db")
}

func defaultRepo() string {
	if repo := os.Getenv("REVODOC_REPO"); repo != "" {
		return repo
	}
	return github.DefaultOwner + "/" + github.DefaultRepo
}

func splitRepo(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/repo", repo)
	}
	return owner, name, nil
}
