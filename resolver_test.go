package folio_test

import (
	"testing"

	"github.com/fwojciec/folio"
	"github.com/fwojciec/folio/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("exact key match wins over title substrings", func(t *testing.T) {
		t.Parallel()

		// "hamlet" is a key and also a literal substring of the
		// village entry's title; the key must win.
		r := folio.NewResolver(mustParseCatalog(t), nil)

		key, err := r.Resolve("hamlet", false)
		require.NoError(t, err)
		assert.Equal(t, "hamlet", key)
	})

	t.Run("every catalog key resolves to itself", func(t *testing.T) {
		t.Parallel()

		c := mustParseCatalog(t)
		r := folio.NewResolver(c, nil)

		for _, w := range c.Works() {
			key, err := r.Resolve(w.Key, false)
			require.NoError(t, err)
			assert.Equal(t, w.Key, key)
		}
	})

	t.Run("single title substring resolves", func(t *testing.T) {
		t.Parallel()

		r := folio.NewResolver(mustParseCatalog(t), nil)

		key, err := r.Resolve("Macbeth", false)
		require.NoError(t, err)
		assert.Equal(t, "macbeth", key)
	})

	t.Run("case-insensitive search is a fallback only", func(t *testing.T) {
		t.Parallel()

		r := folio.NewResolver(mustParseCatalog(t), nil)

		// Zero literal hits, one folded hit.
		key, err := r.Resolve("MEASURE FOR", false)
		require.NoError(t, err)
		assert.Equal(t, "measure", key)
	})

	t.Run("literal hits shadow case-insensitive hits", func(t *testing.T) {
		t.Parallel()

		// "Hamlet" literally matches only the hamlet entry; its
		// lowered form would also match the village entry. The literal
		// pass found something, so the fold pass never runs and there
		// is no ambiguity.
		r := folio.NewResolver(mustParseCatalog(t), nil)

		key, err := r.Resolve("Hamlet", false)
		require.NoError(t, err)
		assert.Equal(t, "hamlet", key)
	})

	t.Run("multiple hits fail with EAMBIGUOUS when declined", func(t *testing.T) {
		t.Parallel()

		r := folio.NewResolver(mustParseCatalog(t), nil)

		_, err := r.Resolve("Henry IV", false)
		require.Error(t, err)
		assert.Equal(t, folio.EAMBIGUOUS, folio.ErrorCode(err))
		assert.Equal(t, []string{"Henry IV, Part 1", "Henry IV, Part 2"}, folio.ErrorCandidates(err))
	})

	t.Run("chooser selection resolves ambiguity", func(t *testing.T) {
		t.Parallel()

		var seen []string
		chooser := &mock.Chooser{
			ChooseOneFn: func(candidates []string) (int, bool) {
				seen = candidates
				return 1, true
			},
		}
		r := folio.NewResolver(mustParseCatalog(t), chooser)

		key, err := r.Resolve("Henry IV", false)
		require.NoError(t, err)
		assert.Equal(t, "2henryiv", key)
		assert.Equal(t, []string{"Henry IV, Part 1", "Henry IV, Part 2"}, seen)
	})

	t.Run("declined choice falls through to EAMBIGUOUS", func(t *testing.T) {
		t.Parallel()

		chooser := &mock.Chooser{
			ChooseOneFn: func([]string) (int, bool) { return 0, false },
		}
		r := folio.NewResolver(mustParseCatalog(t), chooser)

		_, err := r.Resolve("Henry IV", false)
		require.Error(t, err)
		assert.Equal(t, folio.EAMBIGUOUS, folio.ErrorCode(err))
	})

	t.Run("out-of-range choice falls through to EAMBIGUOUS", func(t *testing.T) {
		t.Parallel()

		chooser := &mock.Chooser{
			ChooseOneFn: func(candidates []string) (int, bool) { return len(candidates), true },
		}
		r := folio.NewResolver(mustParseCatalog(t), chooser)

		_, err := r.Resolve("Henry IV", false)
		require.Error(t, err)
		assert.Equal(t, folio.EAMBIGUOUS, folio.ErrorCode(err))
	})

	t.Run("zero hits fail with ENOTFOUND without materialize", func(t *testing.T) {
		t.Parallel()

		r := folio.NewResolver(mustParseCatalog(t), nil)

		_, err := r.Resolve("Rosencrantz and Guildenstern", false)
		require.Error(t, err)
		assert.Equal(t, folio.ENOTFOUND, folio.ErrorCode(err))
	})

	t.Run("zero hits with materialize append a synthetic entry", func(t *testing.T) {
		t.Parallel()

		c := mustParseCatalog(t)
		r := folio.NewResolver(c, nil)

		key, err := r.Resolve("plays/external/faustus.xml", true)
		require.NoError(t, err)
		assert.Equal(t, "Play.8", key)

		w, ok := c.ByKey(key)
		require.True(t, ok)
		assert.True(t, w.Synthetic)
		assert.Equal(t, "plays/external/faustus.xml", w.Title)
	})
}
