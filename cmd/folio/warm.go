package main

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/folio"
)

// Run executes the warm command.
func (c *WarmCmd) Run(deps *Dependencies) error {
	keys := c.Keys
	if len(keys) == 0 {
		for _, w := range deps.Library.Works() {
			keys = append(keys, w.Key)
		}
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	type result struct {
		key string
		err error
	}
	results := make([]result, len(keys))

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, key := range keys {
		g.Go(func() error {
			_, err := deps.Library.Load(gctx, key)
			results[i] = result{key: key, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "  %s: %s\n", r.key, folio.ErrorMessage(r.err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "  %s: ok\n", r.key)
	}

	if failed > 0 {
		return folio.Errorf(folio.EINTERNAL, "%d of %d works failed to warm", failed, len(keys))
	}
	fmt.Fprintf(deps.Stdout, "warmed %d works\n", len(keys))
	return nil
}
