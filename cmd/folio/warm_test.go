package main_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fwojciec/folio"
	main "github.com/fwojciec/folio/cmd/folio"
	"github.com/fwojciec/folio/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarmCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("warms every catalog entry once", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		parsed := make(map[string]int)
		parser := &mock.Parser{
			ParseDocumentFn: func(_ context.Context, path string) (*folio.Document, error) {
				mu.Lock()
				parsed[path]++
				mu.Unlock()
				return &folio.Document{Title: path}, nil
			},
		}
		deps, stdout, _ := newTestDeps(t, parser, emptyStore())

		cmd := &main.WarmCmd{Concurrency: 2}
		require.NoError(t, cmd.Run(deps))

		assert.Len(t, parsed, 3)
		for path, n := range parsed {
			assert.Equal(t, 1, n, "parsed %q more than once", path)
		}
		assert.Contains(t, stdout.String(), "warmed 3 works")
	})

	t.Run("warms only the requested keys", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var parses int
		parser := &mock.Parser{
			ParseDocumentFn: func(_ context.Context, _ string) (*folio.Document, error) {
				mu.Lock()
				parses++
				mu.Unlock()
				return &folio.Document{}, nil
			},
		}
		deps, stdout, _ := newTestDeps(t, parser, emptyStore())

		cmd := &main.WarmCmd{Keys: []string{"hamlet"}}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, 1, parses)
		assert.Contains(t, stdout.String(), "hamlet: ok")
	})

	t.Run("reports failures and keeps going", func(t *testing.T) {
		t.Parallel()

		parser := &mock.Parser{
			ParseDocumentFn: func(_ context.Context, path string) (*folio.Document, error) {
				return nil, folio.Errorf(folio.EINVALID, "malformed play at %q", path)
			},
		}
		deps, _, stderr := newTestDeps(t, parser, emptyStore())

		cmd := &main.WarmCmd{}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "hamlet:")
		assert.Contains(t, stderr.String(), "2henryiv:")
	})
}
