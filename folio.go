// Package folio provides a local library of classic plays and texts.
// A fixed catalog maps short keys to work titles; a query (a key or a
// title fragment) resolves to exactly one work, whose source file is
// parsed lazily into a Document on first access. Parsed documents are
// cached in memory for the life of the process and persisted on disk
// so later sessions skip reparsing.
//
// This package contains domain types, interfaces, and the resolution
// and orchestration logic following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their
// primary dependency (e.g., fs/, sqlite/, etree/, goldmark/).
package folio
