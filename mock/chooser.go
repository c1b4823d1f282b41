package mock

import "github.com/fwojciec/folio"

var _ folio.Chooser = (*Chooser)(nil)

// Chooser is a mock implementation of folio.Chooser.
type Chooser struct {
	ChooseOneFn func(candidates []string) (int, bool)
}

func (c *Chooser) ChooseOne(candidates []string) (int, bool) {
	return c.ChooseOneFn(candidates)
}
