package folio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LibraryOptions configures a Library. Catalog input, parser, and
// artifact store are required; the rest have headless defaults.
type LibraryOptions struct {
	// CorpusDir is the directory holding the catalog table and the
	// source files of static entries.
	CorpusDir string

	// CatalogFile is the catalog table file name inside CorpusDir.
	// Defaults to "index.tsv".
	CatalogFile string

	// Parser produces documents from source files.
	Parser Parser

	// Store persists parsed documents across sessions.
	Store ArtifactStore

	// Chooser disambiguates multi-hit queries. Defaults to
	// DeclineChooser.
	Chooser Chooser

	// Logger receives diagnostics for the best-effort persistence
	// tier. Defaults to a disabled logger.
	Logger *slog.Logger
}

// Library is the process-wide context object owning the catalog, the
// in-memory document cache, and the persistence configuration. It is
// constructed once at startup; there is no implicit lazy
// initialization beyond the explicit Open call.
//
// The in-memory cache is monotonic: once a key maps to a document, it
// is never evicted or recomputed for the life of the process. A single
// mutex guards catalog appends and cache inserts together, and a
// singleflight group collapses concurrent loads so each key is parsed
// at most once per process.
type Library struct {
	opts LibraryOptions

	mu      sync.Mutex
	catalog *Catalog
	docs    map[string]*Document

	resolver *Resolver
	group    singleflight.Group
	logger   *slog.Logger
}

// NewLibrary creates an unopened Library.
func NewLibrary(opts LibraryOptions) *Library {
	if opts.CatalogFile == "" {
		opts.CatalogFile = "index.tsv"
	}
	if opts.Chooser == nil {
		opts.Chooser = DeclineChooser()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Library{
		opts:   opts,
		docs:   make(map[string]*Document),
		logger: logger,
	}
}

// Open loads the static catalog table. It must be called once before
// any lookup.
func (l *Library) Open() error {
	if l.opts.Parser == nil {
		return Errorf(EINVALID, "library parser required")
	}
	if l.opts.Store == nil {
		return Errorf(EINVALID, "library artifact store required")
	}

	path := filepath.Join(l.opts.CorpusDir, l.opts.CatalogFile)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open catalog at %q: %w", path, err)
	}
	defer f.Close()

	return l.openFrom(f)
}

// OpenFrom loads the catalog table from r instead of the corpus
// directory. Useful for tests and embedded catalogs.
func (l *Library) OpenFrom(r io.Reader) error {
	if l.opts.Parser == nil {
		return Errorf(EINVALID, "library parser required")
	}
	if l.opts.Store == nil {
		return Errorf(EINVALID, "library artifact store required")
	}
	return l.openFrom(r)
}

func (l *Library) openFrom(r io.Reader) error {
	catalog, err := ParseCatalog(r)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.catalog = catalog
	l.resolver = NewResolver(catalog, l.opts.Chooser)
	return nil
}

// Works returns the catalog entries in catalog order, including any
// synthetic entries appended during this process.
func (l *Library) Works() []Work {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog.Works()
}

// Resolve maps query to a catalog key without materializing the
// document. See Resolver.Resolve for matching semantics.
func (l *Library) Resolve(query string, materialize bool) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.resolver == nil {
		return "", Errorf(EINVALID, "library not opened")
	}
	return l.resolver.Resolve(query, materialize)
}

// Lookup resolves query and materializes the matching document,
// appending a synthetic catalog entry if the query matches nothing.
// Because the cache check in Load runs on the resolved key, repeated
// lookups of the same raw source reuse the entry created on first
// call.
func (l *Library) Lookup(ctx context.Context, query string) (*Document, error) {
	key, err := l.Resolve(query, true)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, key)
}

// Load materializes the document for key: the in-memory cache is
// checked first, then the artifact store, and finally the source file
// is parsed. A fresh parse is written back to the artifact store on a
// best-effort basis and then cached.
//
// Storage-tier failures are absorbed: a failed artifact read falls
// through to parsing and a failed write is logged and ignored. A
// missing source file is an ECONFIG error; parser errors propagate
// unmodified.
func (l *Library) Load(ctx context.Context, key string) (*Document, error) {
	l.mu.Lock()
	if doc, ok := l.docs[key]; ok {
		l.mu.Unlock()
		return doc, nil
	}
	if l.catalog == nil {
		l.mu.Unlock()
		return nil, Errorf(EINVALID, "library not opened")
	}
	work, ok := l.catalog.ByKey(key)
	l.mu.Unlock()

	if !ok {
		return nil, Errorf(ENOTFOUND, "no catalog entry for key %q", key)
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		return l.materialize(ctx, work)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Document), nil
}

func (l *Library) materialize(ctx context.Context, work Work) (*Document, error) {
	// A loser of a singleflight race may arrive here after the winner
	// already populated the cache.
	l.mu.Lock()
	if doc, ok := l.docs[work.Key]; ok {
		l.mu.Unlock()
		return doc, nil
	}
	l.mu.Unlock()

	doc, err := l.opts.Store.LoadArtifact(ctx, work.Key)
	if err == nil {
		l.cache(work.Key, doc)
		return doc, nil
	}
	if ErrorCode(err) != ENOTFOUND {
		l.logger.Warn("artifact read failed, falling back to parse",
			"key", work.Key,
			"error", err,
		)
	}

	path := l.sourcePath(work)
	if _, err := os.Stat(path); err != nil {
		return nil, Errorf(ECONFIG, "source for %q not found at %q", work.Key, path)
	}

	doc, err = l.opts.Parser.ParseDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	doc.Key = work.Key

	status, serr := l.opts.Store.SaveArtifact(ctx, work.Key, doc)
	if serr != nil || status == SaveSkippedUnwritable {
		l.logger.Warn("artifact write skipped",
			"key", work.Key,
			"status", status.String(),
			"error", serr,
		)
	} else {
		l.logger.Debug("artifact save",
			"key", work.Key,
			"status", status.String(),
		)
	}

	l.cache(work.Key, doc)
	return doc, nil
}

func (l *Library) cache(key string, doc *Document) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.docs[key] = doc
}

// sourcePath returns the file to parse for a work. Static entries live
// under the corpus directory; synthetic entries carry a raw path used
// as-is.
func (l *Library) sourcePath(work Work) string {
	if work.Synthetic {
		return work.Source
	}
	return filepath.Join(l.opts.CorpusDir, work.Source)
}
