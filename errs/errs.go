// Package errs defines the sentinel errors shared by the mime2ext packages.
//
// Errors are returned wrapped with context using fmt.Errorf("%w: ...") and
// should be matched with errors.Is.
package errs

import "errors"

// Source and build errors.
var (
	ErrInvalidMimeType    = errors.New("invalid mime type")
	ErrEmptyType          = errors.New("empty mime type name")
	ErrEmptySubtype       = errors.New("empty mime subtype")
	ErrEmptyExtension     = errors.New("empty extension")
	ErrInvalidExtension   = errors.New("invalid extension")
	ErrNonASCII           = errors.New("non-ASCII content")
	ErrFieldTooLong       = errors.New("field exceeds 255 bytes")
	ErrDataTooLarge       = errors.New("packed data exceeds 65535 bytes")
	ErrTooManyGroups      = errors.New("too many type groups")
	ErrTooManyEntries     = errors.New("too many entries")
	ErrUnsortedEntries    = errors.New("entries are not sorted by subtype")
	ErrDuplicateSubtype   = errors.New("duplicate subtype in group")
	ErrDuplicateType      = errors.New("duplicate type group")
	ErrEntryOutOfRange    = errors.New("entry points outside of packed data")
	ErrInvalidSource      = errors.New("invalid mime database source")
	ErrUnknownOverride    = errors.New("override refers to an unknown mime type")
	ErrInvalidPackageName = errors.New("invalid package name")
)

// Binary artifact errors.
var (
	ErrInvalidHeaderSize     = errors.New("invalid header size")
	ErrInvalidHeaderFlags    = errors.New("invalid header flags")
	ErrInvalidMagicNumber    = errors.New("invalid magic number")
	ErrInvalidIndexEntrySize = errors.New("invalid index entry size")
	ErrInvalidIndexOffsets   = errors.New("invalid index offsets")
	ErrInvalidDataSize       = errors.New("invalid data size")
	ErrChecksumMismatch      = errors.New("checksum mismatch")
)
