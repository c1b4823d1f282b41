package main

import (
	"fmt"

	"github.com/fwojciec/folio"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	key, err := deps.Library.Resolve(c.Query, c.Materialize)
	if err != nil {
		if folio.ErrorCode(err) == folio.EAMBIGUOUS {
			fmt.Fprintf(deps.Stderr, "error: %s\n", folio.ErrorMessage(err))
			for _, title := range folio.ErrorCandidates(err) {
				fmt.Fprintf(deps.Stderr, "  - %s\n", title)
			}
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", folio.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, key)
	return nil
}
