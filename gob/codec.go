// Package gob provides the artifact codec used by the persistence
// tier, built on encoding/gob.
package gob

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/fwojciec/folio"
)

// Ensure Codec implements folio.Codec at compile time.
var _ folio.Codec = (*Codec)(nil)

// Codec serializes documents with encoding/gob.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Encode writes doc to w.
func (c *Codec) Encode(w io.Writer, doc *folio.Document) error {
	if err := gob.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return nil
}

// Decode reads a document from r.
func (c *Codec) Decode(r io.Reader) (*folio.Document, error) {
	var doc folio.Document
	if err := gob.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}
