// Package table implements the runtime MIME type to extension lookup engine.
//
// Roughly a thousand (type, subtype, extension) triples are packed into one
// string without delimiters. Every (subtype, extension) pair is described by a
// 4-byte Entry holding a uint16 offset and two uint8 lengths, and entries are
// grouped by top-level type and sorted by subtype inside each group:
//
//	data:    "...pngpng...svg+xmlsvg..."
//	groups:  {"image", [..., {Location: 812, SubtypeLen: 3, ExtensionLen: 3}, ...]}
//
// A lookup scans the ~10 groups linearly, binary searches the subtype, and
// returns a substring of the packed data. It never allocates and never copies.
//
// # Usage
//
//	ext, ok := table.Default().Lookup("text/html; charset=UTF-8") // "html", true
//
// The default table is generated Go source (default_gen.go) produced by
// cmd/mime2ext-gen from mime-db, so it is ready before main runs and costs
// nothing to load. Tables can also be loaded at runtime from binary artifacts
// written by builder.Encode:
//
//	t, err := table.Decode(artifact)
//
// # Thread Safety
//
// Tables are immutable; all methods are safe for concurrent use.
package table

//go:generate go run ../cmd/mime2ext-gen -i ../mime-db/db.json --go default_gen.go --pkg table
