package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/folio"
	main "github.com/fwojciec/folio/cmd/folio"
	"github.com/fwojciec/folio/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints a document summary", func(t *testing.T) {
		t.Parallel()

		var parses int
		deps, stdout, _ := newTestDeps(t, parserStub(&parses), emptyStore())

		cmd := &main.ShowCmd{Query: "Hamlet"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Hamlet, Prince of Denmark")
		assert.Contains(t, output, "by William Shakespeare")
		assert.Contains(t, output, "key: hamlet")
		assert.Contains(t, output, "Act 1")
		assert.Equal(t, 1, parses)
	})

	t.Run("repeated shows reuse the cache", func(t *testing.T) {
		t.Parallel()

		var parses int
		deps, _, _ := newTestDeps(t, parserStub(&parses), emptyStore())

		cmd := &main.ShowCmd{Query: "Hamlet"}
		require.NoError(t, cmd.Run(deps))
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, 1, parses)
	})

	t.Run("prints the body with --full", func(t *testing.T) {
		t.Parallel()

		parser := &mock.Parser{
			ParseDocumentFn: func(_ context.Context, _ string) (*folio.Document, error) {
				return &folio.Document{Title: "Hamlet", Body: "Who's there?"}, nil
			},
		}
		deps, stdout, _ := newTestDeps(t, parser, emptyStore())

		cmd := &main.ShowCmd{Query: "hamlet", Full: true}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Who's there?")
	})

	t.Run("ambiguous query reports candidates", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps(t, &mock.Parser{}, emptyStore())

		cmd := &main.ShowCmd{Query: "Henry IV"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Henry IV, Part 1")
	})
}
