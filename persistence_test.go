package folio_test

import (
	"context"
	"testing"

	"github.com/fwojciec/folio"
	"github.com/fwojciec/folio/fs"
	"github.com/fwojciec/folio/gob"
	"github.com/fwojciec/folio/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCrossSessionPersistence exercises the two cache tiers together:
// a second library over the same artifact directory stands in for a
// fresh process and must materialize from the persisted artifact
// without touching the parser.
func TestCrossSessionPersistence(t *testing.T) {
	t.Parallel()

	cacheDir := t.TempDir()
	ctx := context.Background()

	var parses int
	parser := &mock.Parser{
		ParseDocumentFn: func(_ context.Context, _ string) (*folio.Document, error) {
			parses++
			return &folio.Document{
				Title: "Hamlet, Prince of Denmark",
				Acts:  []folio.Act{{Number: 1, Scenes: []folio.Scene{{Number: 1, Lines: 7}}}},
			}, nil
		},
	}

	// First session parses and persists.
	first := newTestLibrary(t, parser, fs.NewStore(cacheDir, gob.NewCodec()))
	doc, err := first.Load(ctx, "hamlet")
	require.NoError(t, err)
	require.Equal(t, 1, parses)

	// Second session over the same cache directory.
	second := newTestLibrary(t, parser, fs.NewStore(cacheDir, gob.NewCodec()))
	got, err := second.Load(ctx, "hamlet")
	require.NoError(t, err)

	assert.Equal(t, 1, parses, "second session must not reparse")
	assert.Equal(t, doc.Title, got.Title)
	assert.Equal(t, doc.Lines(), got.Lines())
	assert.Equal(t, "hamlet", got.Key)
}
