// Package fs provides filesystem-backed implementations: the on-disk
// artifact store and the plain-text source parser.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/fwojciec/folio"
)

// artifactExt is the extension of persisted artifacts, one file per
// catalog key under the store directory.
const artifactExt = ".folio"

// Ensure Store implements folio.ArtifactStore at compile time.
var _ folio.ArtifactStore = (*Store)(nil)

// Store persists one serialized document per key under a base
// directory. Artifacts are write-once: an existing file is never
// rewritten, and every access failure degrades to a negative result
// rather than an error the caller must handle.
type Store struct {
	dir   string
	codec folio.Codec
}

// NewStore creates a store writing to dir with the given codec.
func NewStore(dir string, codec folio.Codec) *Store {
	return &Store{dir: dir, codec: codec}
}

// Path returns the artifact path for key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, key+artifactExt)
}

// LoadArtifact reads and decodes the artifact for key. A missing
// directory or file is ENOTFOUND, not an error condition.
func (s *Store) LoadArtifact(ctx context.Context, key string) (*folio.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, folio.Errorf(folio.ENOTFOUND, "no artifact for key %q", key)
		}
		return nil, folio.Errorf(folio.EUNAVAILABLE, "artifact for key %q unreadable: %s", key, err)
	}
	defer f.Close()

	doc, err := s.codec.Decode(f)
	if err != nil {
		return nil, folio.Errorf(folio.EUNAVAILABLE, "artifact for key %q corrupt: %s", key, err)
	}
	return doc, nil
}

// SaveArtifact writes doc under key unless an artifact already exists.
// A file lock serializes first writes across processes so the
// write-once guarantee holds even when two sessions parse the same
// work concurrently.
func (s *Store) SaveArtifact(ctx context.Context, key string, doc *folio.Document) (folio.SaveStatus, error) {
	if err := ctx.Err(); err != nil {
		return folio.SaveSkippedUnwritable, err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return folio.SaveSkippedUnwritable, err
	}

	path := s.Path(key)

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return folio.SaveSkippedUnwritable, err
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return folio.SaveSkippedExists, nil
		}
		return folio.SaveSkippedUnwritable, err
	}

	if err := s.codec.Encode(f, doc); err != nil {
		f.Close()
		// Remove the partial artifact so a later session can retry.
		_ = os.Remove(path)
		return folio.SaveSkippedUnwritable, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return folio.SaveSkippedUnwritable, err
	}

	return folio.SaveWritten, nil
}
