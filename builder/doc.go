// Package builder turns a mime-db database into a packed lookup table.
//
// The builder runs offline. It parses mime-db's db.json, drops MIME types
// without extensions, keeps the first listed extension as the canonical one,
// groups entries by top-level type and sorts them byte-wise so the runtime can
// binary search them. The result is a *table.Table that can be written out in
// two forms:
//
//   - WriteGoSource emits Go source declaring the packed data and groups, which
//     is how the default table in package table is produced.
//   - Encode emits a compact binary artifact that table.Decode loads at runtime.
//
// Basic usage:
//
//	src, err := builder.ParseSource(f)
//	if err != nil {
//	    return err
//	}
//	t, err := builder.Build(src, builder.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	artifact, err := builder.Encode(t, builder.WithCompression(format.CompressionZstd))
package builder
