package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/folio"
	"github.com/fwojciec/folio/gob"
	"github.com/fwojciec/folio/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenStore(t *testing.T) *sqlite.ArtifactStore {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })

	return sqlite.NewArtifactStore(db, gob.NewCodec())
}

func TestArtifactStore(t *testing.T) {
	t.Parallel()

	t.Run("missing artifact is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		store := mustOpenStore(t)

		_, err := store.LoadArtifact(context.Background(), "hamlet")
		require.Error(t, err)
		assert.Equal(t, folio.ENOTFOUND, folio.ErrorCode(err))
	})

	t.Run("roundtrips a saved document", func(t *testing.T) {
		t.Parallel()

		store := mustOpenStore(t)
		ctx := context.Background()

		doc := &folio.Document{
			ID:       "doc-1",
			Key:      "hamlet",
			Title:    "Hamlet, Prince of Denmark",
			Personae: []string{"HAMLET", "CLAUDIUS", "GERTRUDE"},
			Acts:     []folio.Act{{Number: 1, Scenes: []folio.Scene{{Number: 1, Lines: 42}}}},
		}

		status, err := store.SaveArtifact(ctx, "hamlet", doc)
		require.NoError(t, err)
		assert.Equal(t, folio.SaveWritten, status)

		got, err := store.LoadArtifact(ctx, "hamlet")
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	})

	t.Run("never rewrites an existing artifact", func(t *testing.T) {
		t.Parallel()

		store := mustOpenStore(t)
		ctx := context.Background()

		_, err := store.SaveArtifact(ctx, "lear", &folio.Document{Key: "lear", Title: "first"})
		require.NoError(t, err)

		status, err := store.SaveArtifact(ctx, "lear", &folio.Document{Key: "lear", Title: "second"})
		require.NoError(t, err)
		assert.Equal(t, folio.SaveSkippedExists, status)

		got, err := store.LoadArtifact(ctx, "lear")
		require.NoError(t, err)
		assert.Equal(t, "first", got.Title)
	})
}
