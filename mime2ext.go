// Package mime2ext maps MIME types to a canonical file extension.
//
// The mapping is a static table generated from mime-db. About a thousand
// entries are packed into a single string plus a 4-byte-per-entry index, and a
// lookup is a short linear scan over top-level types followed by a binary
// search over subtypes. Lookups never allocate and are safe for concurrent use.
//
// # Basic Usage
//
//	ext, ok := mime2ext.Lookup("image/png")                // "png", true
//	ext = mime2ext.Extension("text/html; charset=UTF-8")   // "html"
//	ext = mime2ext.Extension("application/x-unknown")      // ""
//
// Parameters after ';' are ignored. Matching is otherwise exact: type and
// subtype are compared byte-wise, without case folding or whitespace trimming.
//
// # Custom Tables
//
// The builder package builds tables from any mime-db style database and writes
// them either as Go source or as a compact binary artifact. Load reads such an
// artifact back:
//
//	artifact, _ := builder.Encode(t, builder.WithCompression(format.CompressionZstd))
//	custom, err := mime2ext.Load(artifact)
//
// # Package Structure
//
// This package provides top-level wrappers around the table and builder
// packages for the most common use cases.
package mime2ext

import (
	"io"

	"github.com/arloliu/mime2ext/builder"
	"github.com/arloliu/mime2ext/table"
)

// Lookup returns the canonical extension for mimetype, without a leading dot.
//
// The second result is false when the type is unknown, has no extension in
// mime-db, or mimetype is malformed.
//
// Example:
//
//	if ext, ok := mime2ext.Lookup(contentType); ok {
//	    name = name + "." + ext
//	}
func Lookup(mimetype string) (string, bool) {
	return table.Default().Lookup(mimetype)
}

// Extension returns the canonical extension for mimetype, or "" if there is none.
func Extension(mimetype string) string {
	return table.Default().Extension(mimetype)
}

// Default returns the built-in table generated from the bundled mime-db.
func Default() *table.Table {
	return table.Default()
}

// Load decodes a binary table artifact produced by builder.Encode.
//
// The artifact is validated once; the returned table is then as cheap to
// query as the default one and does not reference data.
func Load(data []byte) (*table.Table, error) {
	return table.Decode(data)
}

// Build reads a mime-db JSON database from r and packs it into a table.
//
// Available options:
//   - builder.WithLogger(logger)
//   - builder.WithOverrides(map[string]string{"image/jpeg": "jpg"})
//   - builder.WithTypes("image", "video")
func Build(r io.Reader, opts ...builder.Option) (*table.Table, error) {
	src, err := builder.ParseSource(r)
	if err != nil {
		return nil, err
	}

	return builder.Build(src, opts...)
}
