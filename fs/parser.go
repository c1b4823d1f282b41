package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fwojciec/folio"
)

// Ensure TextParser implements folio.Parser at compile time.
var _ folio.Parser = (*TextParser)(nil)

// TextParser parses plain-text sources. It is the fallback for raw
// external sources that carry no structural markup: the first
// non-blank line becomes the title and the rest becomes the body,
// reported as a single act with a single scene.
type TextParser struct{}

// NewTextParser creates a new TextParser.
func NewTextParser() *TextParser {
	return &TextParser{}
}

// ParseDocument reads and parses the file at path.
func (p *TextParser) ParseDocument(ctx context.Context, path string) (*folio.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %q: %w", path, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")

	var title string
	var body []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if title == "" {
			if trimmed != "" {
				title = trimmed
			}
			continue
		}
		body = append(body, line)
	}
	if title == "" {
		title = filepath.Base(path)
	}

	var count int
	for _, line := range body {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}

	return &folio.Document{
		ID:         uuid.New().String(),
		Title:      title,
		SourceHash: folio.HashSource(raw),
		ParsedAt:   time.Now().UTC(),
		Acts: []folio.Act{
			{Number: 1, Scenes: []folio.Scene{{Number: 1, Lines: count}}},
		},
		Body: strings.TrimSpace(strings.Join(body, "\n")),
	}, nil
}
