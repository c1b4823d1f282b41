// Package etree provides an XML play parser built on beevik/etree.
//
// Sources are expected in a simple play markup:
//
//	<play>
//	  <title>Hamlet, Prince of Denmark</title>
//	  <author>William Shakespeare</author>
//	  <personae>
//	    <persona>HAMLET</persona>
//	  </personae>
//	  <act>
//	    <scene title="Elsinore. A platform before the castle.">
//	      <line>Who's there?</line>
//	    </scene>
//	  </act>
//	</play>
package etree

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/fwojciec/folio"
)

// Ensure Parser implements folio.Parser at compile time.
var _ folio.Parser = (*Parser)(nil)

// Parser parses XML play sources.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseDocument reads and parses the XML file at path. Acts and scenes
// are numbered by document order.
func (p *Parser) ParseDocument(ctx context.Context, path string) (*folio.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %q: %w", path, err)
	}

	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(raw); err != nil {
		return nil, folio.Errorf(folio.EINVALID, "source %q is not well-formed XML: %s", path, err)
	}

	play := tree.SelectElement("play")
	if play == nil {
		return nil, folio.Errorf(folio.EINVALID, "source %q has no <play> root element", path)
	}

	doc := &folio.Document{
		ID:         uuid.New().String(),
		SourceHash: folio.HashSource(raw),
		ParsedAt:   time.Now().UTC(),
	}

	if el := play.SelectElement("title"); el != nil {
		doc.Title = strings.TrimSpace(el.Text())
	}
	if el := play.SelectElement("author"); el != nil {
		doc.Author = strings.TrimSpace(el.Text())
	}
	if doc.Title == "" {
		return nil, folio.Errorf(folio.EINVALID, "source %q has no <title>", path)
	}

	if personae := play.SelectElement("personae"); personae != nil {
		for _, el := range personae.SelectElements("persona") {
			if name := strings.TrimSpace(el.Text()); name != "" {
				doc.Personae = append(doc.Personae, name)
			}
		}
	}

	var body strings.Builder
	for i, actEl := range play.SelectElements("act") {
		act := folio.Act{Number: i + 1}
		for j, sceneEl := range actEl.SelectElements("scene") {
			scene := folio.Scene{
				Number: j + 1,
				Title:  strings.TrimSpace(sceneEl.SelectAttrValue("title", "")),
			}
			for _, lineEl := range sceneEl.SelectElements("line") {
				line := strings.TrimSpace(lineEl.Text())
				if line == "" {
					continue
				}
				scene.Lines++
				body.WriteString(line)
				body.WriteByte('\n')
			}
			act.Scenes = append(act.Scenes, scene)
		}
		doc.Acts = append(doc.Acts, act)
	}
	doc.Body = strings.TrimSuffix(body.String(), "\n")

	return doc, nil
}
