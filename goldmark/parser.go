// Package goldmark provides a Markdown play parser built on
// yuin/goldmark.
//
// Sources use heading levels for structure: the first H1 is the play
// title, each H2 opens an act, each H3 opens a scene, and paragraph
// lines inside a scene are counted as spoken lines. A leading
// paragraph of the form "by <name>" names the author and a leading
// list names the personae.
package goldmark

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/fwojciec/folio"
)

// Ensure Parser implements folio.Parser at compile time.
var _ folio.Parser = (*Parser)(nil)

// Parser parses Markdown play sources.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{md: goldmark.New()}
}

// ParseDocument reads and parses the Markdown file at path.
func (p *Parser) ParseDocument(ctx context.Context, path string) (*folio.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %q: %w", path, err)
	}

	root := p.md.Parser().Parse(text.NewReader(raw))

	doc := &folio.Document{
		ID:         uuid.New().String(),
		SourceHash: folio.HashSource(raw),
		ParsedAt:   time.Now().UTC(),
	}

	var body strings.Builder
	var act *folio.Act
	var scene *folio.Scene

	flushScene := func() {
		if act != nil && scene != nil {
			act.Scenes = append(act.Scenes, *scene)
		}
		scene = nil
	}
	flushAct := func() {
		flushScene()
		if act != nil {
			doc.Acts = append(doc.Acts, *act)
		}
		act = nil
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := headingText(node, raw)
			switch node.Level {
			case 1:
				if doc.Title == "" {
					doc.Title = title
				}
			case 2:
				flushAct()
				act = &folio.Act{Number: len(doc.Acts) + 1}
			case 3:
				if act == nil {
					act = &folio.Act{Number: len(doc.Acts) + 1}
				}
				flushScene()
				scene = &folio.Scene{Number: len(act.Scenes) + 1, Title: title}
			}

		case *ast.List:
			// A list before the first act names the personae.
			if act != nil {
				continue
			}
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				if name := strings.TrimSpace(nodeText(item, raw)); name != "" {
					doc.Personae = append(doc.Personae, name)
				}
			}

		case *ast.Paragraph:
			if act == nil {
				// A leading "by <name>" paragraph names the author.
				txt := strings.TrimSpace(nodeText(node, raw))
				if doc.Author == "" && len(txt) > 3 && strings.EqualFold(txt[:3], "by ") {
					doc.Author = strings.TrimSpace(txt[3:])
				}
				continue
			}
			if scene == nil {
				scene = &folio.Scene{Number: len(act.Scenes) + 1}
			}
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				line := strings.TrimSpace(string(raw[seg.Start:seg.Stop]))
				if line == "" {
					continue
				}
				scene.Lines++
				body.WriteString(line)
				body.WriteByte('\n')
			}
		}
	}
	flushAct()

	if doc.Title == "" {
		return nil, folio.Errorf(folio.EINVALID, "source %q has no top-level heading", path)
	}
	doc.Body = strings.TrimSuffix(body.String(), "\n")

	return doc, nil
}

// headingText returns the concatenated text content of a heading.
func headingText(h *ast.Heading, src []byte) string {
	return strings.TrimSpace(nodeText(h, src))
}

// nodeText collects the raw text of every Text descendant of n.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
