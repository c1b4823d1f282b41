// Package slog provides logging decorators for folio services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/folio"
)

// Ensure LoggingStore implements folio.ArtifactStore.
var _ folio.ArtifactStore = (*LoggingStore)(nil)

// LoggingStore wraps an ArtifactStore with debug logging for every
// artifact access, so the best-effort persistence tier stays
// observable even though its failures are never surfaced.
type LoggingStore struct {
	next   folio.ArtifactStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next folio.ArtifactStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// LoadArtifact delegates to the wrapped store and logs the outcome.
func (s *LoggingStore) LoadArtifact(ctx context.Context, key string) (*folio.Document, error) {
	begin := time.Now()
	doc, err := s.next.LoadArtifact(ctx, key)

	outcome := "hit"
	if err != nil {
		outcome = "miss"
		if folio.ErrorCode(err) != folio.ENOTFOUND {
			outcome = "error"
		}
	}
	s.logger.Debug("artifact load",
		"key", key,
		"outcome", outcome,
		"duration", time.Since(begin),
	)
	return doc, err
}

// SaveArtifact delegates to the wrapped store and logs the status.
func (s *LoggingStore) SaveArtifact(ctx context.Context, key string, doc *folio.Document) (folio.SaveStatus, error) {
	begin := time.Now()
	status, err := s.next.SaveArtifact(ctx, key, doc)

	s.logger.Debug("artifact save",
		"key", key,
		"status", status.String(),
		"duration", time.Since(begin),
		"error", err,
	)
	return status, err
}
