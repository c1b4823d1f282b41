package folio

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Catalog is the ordered set of known works. It is built once at
// startup from a static two-column table and is read-only afterwards,
// except for appends of synthetic entries for sources outside the
// table. Entry order is load order and is the tie-break order used
// when listing.
//
// Catalog is not safe for concurrent use; the Library serializes
// access to it.
type Catalog struct {
	works []Work
	byKey map[string]int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byKey: make(map[string]int)}
}

// ParseCatalog reads a catalog from a two-column, tab-separated table:
// one "sourceFileName<TAB>title" row per work. Keys are derived from
// the source file name by stripping its extension. Blank lines and
// lines starting with '#' are ignored.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	c := NewCatalog()

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}

		source, title, ok := strings.Cut(row, "\t")
		if !ok {
			return nil, Errorf(EINVALID, "catalog line %d: expected 2 tab-separated columns", line)
		}
		source = strings.TrimSpace(source)
		title = strings.TrimSpace(title)
		if source == "" || title == "" {
			return nil, Errorf(EINVALID, "catalog line %d: empty source or title", line)
		}

		key := strings.TrimSuffix(source, filepath.Ext(source))
		if _, exists := c.byKey[key]; exists {
			return nil, Errorf(EINVALID, "catalog line %d: duplicate key %q", line, key)
		}

		c.byKey[key] = len(c.works)
		c.works = append(c.works, Work{Key: key, Title: title, Source: source})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return c, nil
}

// Append adds a synthetic entry for a raw source outside the static
// table. The key is the next value in the "Play.N" sequence and the
// title is the raw source string itself. Append never deduplicates;
// memoization of repeated raw sources happens upstream in the Library.
func (c *Catalog) Append(source string) Work {
	w := Work{
		Key:       fmt.Sprintf("Play.%d", len(c.works)+1),
		Title:     source,
		Source:    source,
		Synthetic: true,
	}
	c.byKey[w.Key] = len(c.works)
	c.works = append(c.works, w)
	return w
}

// ByKey returns the work with the given key.
func (c *Catalog) ByKey(key string) (Work, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Work{}, false
	}
	return c.works[i], true
}

// Works returns all entries in catalog order. The returned slice is a
// copy and safe for the caller to retain.
func (c *Catalog) Works() []Work {
	out := make([]Work, len(c.works))
	copy(out, c.works)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.works)
}

// matchTitles returns the works whose title contains query as a plain
// substring. With fold set, the comparison is case-insensitive.
func (c *Catalog) matchTitles(query string, fold bool) []Work {
	if fold {
		query = strings.ToLower(query)
	}

	var hits []Work
	for _, w := range c.works {
		title := w.Title
		if fold {
			title = strings.ToLower(title)
		}
		if strings.Contains(title, query) {
			hits = append(hits, w)
		}
	}
	return hits
}
