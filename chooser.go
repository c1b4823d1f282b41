package folio

// Chooser is a pluggable disambiguation strategy consulted when a
// query matches more than one title. Implementations may block on
// human input; the non-interactive default declines every choice.
type Chooser interface {
	// ChooseOne picks one of candidates. It returns the chosen index
	// and true, or false if no choice was made.
	ChooseOne(candidates []string) (int, bool)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(candidates []string) (int, bool)

// ChooseOne calls f.
func (f ChooserFunc) ChooseOne(candidates []string) (int, bool) {
	return f(candidates)
}

// DeclineChooser returns the headless default strategy: it declines
// every choice, so ambiguous queries fail with EAMBIGUOUS.
func DeclineChooser() Chooser {
	return ChooserFunc(func([]string) (int, bool) {
		return 0, false
	})
}
