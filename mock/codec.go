package mock

import (
	"io"

	"github.com/fwojciec/folio"
)

var _ folio.Codec = (*Codec)(nil)

// Codec is a mock implementation of folio.Codec.
type Codec struct {
	EncodeFn func(w io.Writer, doc *folio.Document) error
	DecodeFn func(r io.Reader) (*folio.Document, error)
}

func (c *Codec) Encode(w io.Writer, doc *folio.Document) error {
	return c.EncodeFn(w, doc)
}

func (c *Codec) Decode(r io.Reader) (*folio.Document, error) {
	return c.DecodeFn(r)
}
