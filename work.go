package folio

import (
	"context"
	"io"
	"time"
)

// Work represents a single catalog entry: one titled work backed by a
// source file. Works are immutable after creation.
type Work struct {
	// Key is the canonical short identifier, derived from the source
	// file name with its extension stripped (e.g., "hamlet").
	Key string `json:"key"`

	// Title is the human-readable display title used for lookup by
	// substring (e.g., "Hamlet, Prince of Denmark").
	Title string `json:"title"`

	// Source is the source file name relative to the corpus directory,
	// or, for synthetic entries, the raw path supplied by the caller.
	Source string `json:"source"`

	// Synthetic reports whether the entry was appended at runtime for a
	// source outside the static catalog.
	Synthetic bool `json:"synthetic,omitempty"`
}

// Document is the parsed form of a work. The resolution and caching
// machinery treats it as opaque: only parsers, codecs, and presentation
// code inspect its fields.
type Document struct {
	ID         string    `json:"id"`
	Key        string    `json:"key"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	SourceHash string    `json:"sourceHash"`
	ParsedAt   time.Time `json:"parsedAt"`

	Personae []string `json:"personae,omitempty"`
	Acts     []Act    `json:"acts,omitempty"`
	Body     string   `json:"body,omitempty"`
}

// Act is one act of a parsed work.
type Act struct {
	Number int     `json:"number"`
	Scenes []Scene `json:"scenes,omitempty"`
}

// Scene is one scene of an act.
type Scene struct {
	Number int    `json:"number"`
	Title  string `json:"title,omitempty"`
	Lines  int    `json:"lines"`
}

// Lines returns the total line count across all acts and scenes.
func (d *Document) Lines() int {
	var n int
	for _, act := range d.Acts {
		for _, scene := range act.Scenes {
			n += scene.Lines
		}
	}
	return n
}

// Parser produces a Document from a source file. Parse errors are
// fatal to the lookup that triggered them; they are never retried.
type Parser interface {
	ParseDocument(ctx context.Context, path string) (*Document, error)
}

// Codec serializes documents for the persistence tier.
type Codec interface {
	Encode(w io.Writer, doc *Document) error
	Decode(r io.Reader) (*Document, error)
}

// SaveStatus reports what a SaveArtifact call did. The persistence
// tier is best-effort, so callers get a reason rather than an error
// when nothing was written.
type SaveStatus int

const (
	// SaveWritten means a new artifact was written.
	SaveWritten SaveStatus = iota

	// SaveSkippedExists means an artifact already existed for the key.
	// Artifacts are write-once and never rewritten.
	SaveSkippedExists

	// SaveSkippedUnwritable means the storage location could not be
	// used. The tier is treated as unavailable, not as failed.
	SaveSkippedUnwritable
)

// String returns a short label for logs.
func (s SaveStatus) String() string {
	switch s {
	case SaveWritten:
		return "written"
	case SaveSkippedExists:
		return "skipped_exists"
	case SaveSkippedUnwritable:
		return "skipped_unwritable"
	}
	return "unknown"
}

// ArtifactStore persists parsed documents across sessions, keyed by
// catalog key. Absence of an artifact is reported as ENOTFOUND; any
// other failure is treated by callers as "tier unavailable" and never
// surfaced past the loading path.
type ArtifactStore interface {
	// LoadArtifact returns the persisted document for key.
	// Returns ENOTFOUND if no artifact exists.
	LoadArtifact(ctx context.Context, key string) (*Document, error)

	// SaveArtifact persists doc under key unless an artifact already
	// exists. The returned status says what happened; the error, if
	// any, explains a SaveSkippedUnwritable status.
	SaveArtifact(ctx context.Context, key string, doc *Document) (SaveStatus, error)
}
