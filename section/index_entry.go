package section

import (
	"github.com/arloliu/mime2ext/endian"
	"github.com/arloliu/mime2ext/errs"
)

// GroupEntry describes one type group in the index section.
// The type name bytes follow the group directory; entries of a group are
// stored contiguously, in directory order.
type GroupEntry struct {
	TypeLen    uint8  // 1 byte, offset 0
	Reserved   uint8  // 1 byte, offset 1, must be zero
	EntryCount uint16 // 2 bytes, offset 2-3
}

// WriteToSlice writes the group entry to b, which must be at least 4 bytes long.
func (g GroupEntry) WriteToSlice(b []byte, engine endian.EndianEngine) error {
	if len(b) < GroupEntrySize {
		return errs.ErrInvalidIndexEntrySize
	}

	b[0] = g.TypeLen
	b[1] = g.Reserved
	engine.PutUint16(b[2:4], g.EntryCount)

	return nil
}

// ParseGroupEntry parses a group entry from a byte slice.
func ParseGroupEntry(data []byte, engine endian.EndianEngine) (GroupEntry, error) {
	if len(data) < GroupEntrySize {
		return GroupEntry{}, errs.ErrInvalidIndexEntrySize
	}

	return GroupEntry{
		TypeLen:    data[0],
		Reserved:   data[1],
		EntryCount: engine.Uint16(data[2:4]),
	}, nil
}

// IndexEntry is the on-disk form of a (subtype, extension) pair.
//
// The subtype occupies data[Location:Location+SubtypeLen] of the uncompressed
// data section and the extension immediately follows it.
type IndexEntry struct {
	Location     uint16 // 2 bytes, offset 0-1
	SubtypeLen   uint8  // 1 byte, offset 2
	ExtensionLen uint8  // 1 byte, offset 3
}

// WriteToSlice writes the index entry to b, which must be at least 4 bytes long.
func (e IndexEntry) WriteToSlice(b []byte, engine endian.EndianEngine) error {
	if len(b) < IndexEntrySize {
		return errs.ErrInvalidIndexEntrySize
	}

	engine.PutUint16(b[0:2], e.Location)
	b[2] = e.SubtypeLen
	b[3] = e.ExtensionLen

	return nil
}

// ParseIndexEntry parses an index entry from a byte slice.
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	return IndexEntry{
		Location:     engine.Uint16(data[0:2]),
		SubtypeLen:   data[2],
		ExtensionLen: data[3],
	}, nil
}

// End returns the offset just past the entry's extension.
func (e IndexEntry) End() int {
	return int(e.Location) + int(e.SubtypeLen) + int(e.ExtensionLen)
}
