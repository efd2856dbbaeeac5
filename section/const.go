package section

import "math"

const (
	// Bit masks of TableFlag.Options
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicTableV1Opt = 0xEC10 // MagicTableV1Opt is the version 1 magic number of the mime table format.
)

// offset and section sizes in the artifact
const (
	HeaderSize        = 32         // fixed header size in bytes
	GroupEntrySize    = 4          // fixed size of a type group descriptor
	IndexEntrySize    = 4          // fixed size of a (subtype, extension) entry
	IndexOffsetOffset = HeaderSize // byte offset where the index section starts

	MaxDataSize   = math.MaxUint16 // maximum packed data size, entries address it with uint16
	MaxFieldLen   = math.MaxUint8  // maximum length of a type, subtype or extension
	MaxGroupCount = math.MaxUint16 // maximum number of type groups
	MaxEntryCount = math.MaxUint16 // maximum number of entries
)
