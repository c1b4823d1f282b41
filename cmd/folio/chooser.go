package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/fwojciec/folio"
)

// Ensure terminalChooser implements folio.Chooser.
var _ folio.Chooser = (*terminalChooser)(nil)

// terminalChooser asks the user to pick one of several matching titles.
// An empty or unparseable answer declines the choice, which fails the
// lookup with an ambiguity error.
type terminalChooser struct {
	in  io.Reader
	out io.Writer
}

func (c *terminalChooser) ChooseOne(candidates []string) (int, bool) {
	fmt.Fprintln(c.out, "Several works match:")
	for i, title := range candidates {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, title)
	}
	fmt.Fprintf(c.out, "Select one (1-%d, empty to cancel): ", len(candidates))

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(candidates) {
		return 0, false
	}
	return n - 1, true
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
