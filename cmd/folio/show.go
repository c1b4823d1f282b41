package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/folio"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Library.Lookup(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", folio.ErrorMessage(err))
		for _, title := range folio.ErrorCandidates(err) {
			fmt.Fprintf(deps.Stderr, "  - %s\n", title)
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, doc.Title)
	if doc.Author != "" {
		fmt.Fprintf(deps.Stdout, "by %s\n", doc.Author)
	}
	fmt.Fprintf(deps.Stdout, "key: %s\n", doc.Key)

	if len(doc.Personae) > 0 {
		fmt.Fprintf(deps.Stdout, "personae: %s\n", strings.Join(doc.Personae, ", "))
	}

	if len(doc.Acts) > 0 {
		rows := make([][]string, 0, len(doc.Acts))
		for _, act := range doc.Acts {
			var lines int
			for _, scene := range act.Scenes {
				lines += scene.Lines
			}
			rows = append(rows, []string{
				fmt.Sprintf("Act %d", act.Number),
				fmt.Sprintf("%d", len(act.Scenes)),
				fmt.Sprintf("%d", lines),
			})
		}
		fmt.Fprintln(deps.Stdout, renderTable([]string{"ACT", "SCENES", "LINES"}, rows))
	}

	if c.Full && doc.Body != "" {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, doc.Body)
	}

	return nil
}
