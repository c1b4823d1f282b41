package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/folio"
	"github.com/fwojciec/folio/etree"
	"github.com/fwojciec/folio/fs"
	"github.com/fwojciec/folio/gob"
	"github.com/fwojciec/folio/goldmark"
	folioslog "github.com/fwojciec/folio/slog"
	"github.com/fwojciec/folio/sqlite"
	"github.com/fwojciec/folio/toml"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config path. Set before calling Run().
	ConfigPath string

	// Resolved configuration after Run().
	Config toml.Config

	// SQLite database used when the sqlite cache backend is selected.
	DB *sqlite.DB

	// Library for end-to-end testing.
	Library *folio.Library
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
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
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("folio"),
		kong.Description("Resolve, parse, and cache a catalog of plays."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'folio --help' to see available commands")
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

	// Load configuration; flags override file values.
	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	m.Config, err = toml.Load(configPath)
	if err != nil {
		return err
	}
	if cli.Corpus != "" {
		m.Config.CorpusDir = cli.Corpus
	}
	if cli.Verbose {
		m.Config.Verbose = true
	}
	if err := m.Config.Validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if m.Config.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire the artifact store for the configured backend.
	var store folio.ArtifactStore
	codec := gob.NewCodec()
	switch m.Config.CacheBackend {
	case toml.BackendSQLite:
		m.DB = sqlite.NewDB(m.Config.DBPath)
		if err := os.MkdirAll(filepath.Dir(m.Config.DBPath), 0755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: set db_path in the config to a writable location")
			return fmt.Errorf("failed to open database at %q: %w", m.Config.DBPath, err)
		}
		store = sqlite.NewArtifactStore(m.DB, codec)
	default:
		store = fs.NewStore(m.Config.CacheDir, codec)
	}
	store = folioslog.NewLoggingStore(store, logger)

	// Dispatch parsing by source extension; raw external sources fall
	// back to plain text.
	mux := folio.NewParserMux(fs.NewTextParser())
	mux.Register(".xml", etree.NewParser())
	mux.Register(".md", goldmark.NewParser())

	chooser := folio.DeclineChooser()
	if !cli.NoInput && isTerminal(stdin) {
		chooser = &terminalChooser{in: stdin, out: stderr}
	}

	m.Library = folio.NewLibrary(folio.LibraryOptions{
		CorpusDir:   m.Config.CorpusDir,
		CatalogFile: m.Config.CatalogFile,
		Parser:      mux,
		Store:       store,
		Chooser:     chooser,
		Logger:      logger,
	})
	if err := m.Library.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: set corpus_dir in the config or pass --corpus")
		return err
	}
	deps.Library = m.Library

	return kongCtx.Run(deps)
}

func defaultConfigPath() string {
	if path := os.Getenv("FOLIO_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "folio.toml"
	}
	return filepath.Join(home, ".folio", "folio.toml")
}
