package folio

import (
	"context"
	"path/filepath"
	"strings"
)

// Ensure ParserMux implements Parser at compile time.
var _ Parser = (*ParserMux)(nil)

// ParserMux dispatches parsing by source file extension. Extensions
// are matched case-insensitively; sources with no registered parser
// fall back to the default parser, if any.
type ParserMux struct {
	parsers  map[string]Parser
	fallback Parser
}

// NewParserMux creates a mux with the given fallback parser. A nil
// fallback makes unregistered extensions an EINVALID error.
func NewParserMux(fallback Parser) *ParserMux {
	return &ParserMux{
		parsers:  make(map[string]Parser),
		fallback: fallback,
	}
}

// Register associates a parser with a file extension (including the
// leading dot, e.g. ".xml"). Later registrations replace earlier ones.
func (m *ParserMux) Register(ext string, p Parser) {
	m.parsers[strings.ToLower(ext)] = p
}

// ParseDocument dispatches to the parser registered for the source's
// extension.
func (m *ParserMux) ParseDocument(ctx context.Context, path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if p, ok := m.parsers[ext]; ok {
		return p.ParseDocument(ctx, path)
	}
	if m.fallback != nil {
		return m.fallback.ParseDocument(ctx, path)
	}
	return nil, Errorf(EINVALID, "no parser registered for %q", ext)
}
