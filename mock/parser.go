package mock

import (
	"context"

	"github.com/fwojciec/folio"
)

var _ folio.Parser = (*Parser)(nil)

// Parser is a mock implementation of folio.Parser.
type Parser struct {
	ParseDocumentFn func(ctx context.Context, path string) (*folio.Document, error)
}

func (p *Parser) ParseDocument(ctx context.Context, path string) (*folio.Document, error) {
	return p.ParseDocumentFn(ctx, path)
}
