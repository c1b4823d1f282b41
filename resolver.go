package folio

import "fmt"

// Resolver maps a query string to the key of exactly one catalog
// entry. Matching is deliberately simple: exact key match first, then
// plain substring containment against titles, with a case-insensitive
// retry only when the literal pass finds nothing. There is no
// edit-distance or token matching.
//
// A Resolver on its own does not memoize synthetic appends: asked
// twice for the same unmatched raw source it appends twice. Callers
// wanting memoized behavior must go through Library.Lookup, whose
// cache check runs before resolution reaches the append path.
type Resolver struct {
	catalog *Catalog
	chooser Chooser
}

// NewResolver returns a resolver over catalog. A nil chooser defaults
// to DeclineChooser, which fails ambiguous queries.
func NewResolver(catalog *Catalog, chooser Chooser) *Resolver {
	if chooser == nil {
		chooser = DeclineChooser()
	}
	return &Resolver{catalog: catalog, chooser: chooser}
}

// Resolve returns the catalog key for query.
//
// An exact key match always wins, even if the query is also a
// substring of some title. Otherwise titles are searched for the query
// as a literal substring; if that finds nothing, the search is retried
// case-insensitively. The two passes are independent: literal hits are
// never merged with case-insensitive hits.
//
// A single hit resolves to its key. Multiple hits are put to the
// chooser; a declined choice fails with EAMBIGUOUS listing every
// candidate title. Zero hits either fail with ENOTFOUND or, when
// materialize is set, append a synthetic catalog entry treating query
// as a raw source path and resolve to its fresh key.
func (r *Resolver) Resolve(query string, materialize bool) (string, error) {
	if w, ok := r.catalog.ByKey(query); ok {
		return w.Key, nil
	}

	hits := r.catalog.matchTitles(query, false)
	if len(hits) == 0 {
		hits = r.catalog.matchTitles(query, true)
	}

	switch len(hits) {
	case 1:
		return hits[0].Key, nil

	case 0:
		if materialize {
			return r.catalog.Append(query).Key, nil
		}
		return "", Errorf(ENOTFOUND, "no work matches %q", query)

	default:
		titles := make([]string, len(hits))
		for i, w := range hits {
			titles[i] = w.Title
		}
		if i, ok := r.chooser.ChooseOne(titles); ok && i >= 0 && i < len(hits) {
			return hits[i].Key, nil
		}
		return "", &Error{
			Code:       EAMBIGUOUS,
			Message:    fmt.Sprintf("query %q matches multiple works", query),
			Candidates: titles,
		}
	}
}
