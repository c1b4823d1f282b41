// Package toml loads folio configuration from a TOML file.
package toml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/fwojciec/folio"
)

// Cache backend names accepted in configuration.
const (
	BackendFS     = "fs"
	BackendSQLite = "sqlite"
)

// Config holds the settings of the folio CLI.
type Config struct {
	// CorpusDir holds the catalog table and the static source files.
	CorpusDir string `toml:"corpus_dir"`

	// CatalogFile is the catalog table file name inside CorpusDir.
	CatalogFile string `toml:"catalog_file"`

	// CacheBackend selects the artifact store: "fs" or "sqlite".
	CacheBackend string `toml:"cache_backend"`

	// CacheDir is where the fs backend keeps artifacts.
	CacheDir string `toml:"cache_dir"`

	// DBPath is where the sqlite backend keeps its database.
	DBPath string `toml:"db_path"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		CorpusDir:    "corpus",
		CatalogFile:  "index.tsv",
		CacheBackend: BackendFS,
		CacheDir:     defaultStateDir("artifacts"),
		DBPath:       defaultStateDir("folio.db"),
	}
}

// Load reads the configuration at path, filling unset fields with
// defaults. A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, folio.Errorf(folio.EINVALID, "config %q is not valid TOML: %s", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the CLI cannot work with.
func (c Config) Validate() error {
	if c.CorpusDir == "" {
		return folio.Errorf(folio.EINVALID, "corpus_dir must not be empty")
	}
	if c.CatalogFile == "" {
		return folio.Errorf(folio.EINVALID, "catalog_file must not be empty")
	}
	switch c.CacheBackend {
	case BackendFS, BackendSQLite:
	default:
		return folio.Errorf(folio.EINVALID, "cache_backend must be %q or %q, got %q", BackendFS, BackendSQLite, c.CacheBackend)
	}
	return nil
}

// defaultStateDir places mutable state under ~/.folio, falling back to
// the working directory when the home directory is unknown.
func defaultStateDir(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".folio", name)
}
