package main

import "fmt"

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	works := deps.Library.Works()

	if len(works) == 0 {
		fmt.Fprintln(deps.Stdout, "The catalog is empty.")
		return nil
	}

	rows := make([][]string, 0, len(works))
	for _, w := range works {
		source := w.Source
		if w.Synthetic {
			source += " (synthetic)"
		}
		rows = append(rows, []string{w.Key, w.Title, source})
	}

	fmt.Fprintln(deps.Stdout, renderTable([]string{"KEY", "TITLE", "SOURCE"}, rows))
	return nil
}
