package mock

import (
	"context"

	"github.com/fwojciec/folio"
)

var _ folio.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of folio.ArtifactStore.
type ArtifactStore struct {
	LoadArtifactFn func(ctx context.Context, key string) (*folio.Document, error)
	SaveArtifactFn func(ctx context.Context, key string, doc *folio.Document) (folio.SaveStatus, error)
}

func (s *ArtifactStore) LoadArtifact(ctx context.Context, key string) (*folio.Document, error) {
	return s.LoadArtifactFn(ctx, key)
}

func (s *ArtifactStore) SaveArtifact(ctx context.Context, key string, doc *folio.Document) (folio.SaveStatus, error) {
	return s.SaveArtifactFn(ctx, key, doc)
}
