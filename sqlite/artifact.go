package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/folio"
)

// Compile-time interface verification.
var _ folio.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore implements folio.ArtifactStore using SQLite. Documents
// are serialized with the injected codec and stored as blobs, one row
// per key. Rows are write-once: INSERT OR IGNORE preserves the first
// artifact ever written for a key.
type ArtifactStore struct {
	db    *DB
	codec folio.Codec
}

// NewArtifactStore creates a new ArtifactStore.
func NewArtifactStore(db *DB, codec folio.Codec) *ArtifactStore {
	return &ArtifactStore{db: db, codec: codec}
}

// LoadArtifact retrieves and decodes the artifact for key.
// Returns ENOTFOUND if no artifact exists.
func (s *ArtifactStore) LoadArtifact(ctx context.Context, key string) (*folio.Document, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT doc FROM artifacts WHERE key = ?
	`, key).Scan(&blob)

	if err == sql.ErrNoRows {
		return nil, folio.Errorf(folio.ENOTFOUND, "no artifact for key %q", key)
	}
	if err != nil {
		return nil, folio.Errorf(folio.EUNAVAILABLE, "artifact for key %q unreadable: %s", key, err)
	}

	doc, err := s.codec.Decode(bytes.NewReader(blob))
	if err != nil {
		return nil, folio.Errorf(folio.EUNAVAILABLE, "artifact for key %q corrupt: %s", key, err)
	}
	return doc, nil
}

// SaveArtifact encodes doc and inserts it under key unless a row
// already exists.
func (s *ArtifactStore) SaveArtifact(ctx context.Context, key string, doc *folio.Document) (folio.SaveStatus, error) {
	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, doc); err != nil {
		return folio.SaveSkippedUnwritable, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO artifacts (key, doc, created_at)
		VALUES (?, ?, ?)
	`, key, buf.Bytes(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return folio.SaveSkippedUnwritable, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return folio.SaveSkippedUnwritable, err
	}
	if n == 0 {
		return folio.SaveSkippedExists, nil
	}
	return folio.SaveWritten, nil
}
