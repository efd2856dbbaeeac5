package section

import (
	"fmt"

	"github.com/arloliu/mime2ext/endian"
	"github.com/arloliu/mime2ext/errs"
)

// TableHeader represents the fixed-size header of a binary mime table artifact.
// It is 32 bytes long.
type TableHeader struct {
	// Flag holds endianness, compression and the magic number (0xEC10).
	Flag TableFlag // 4 bytes, offset 0-3

	// GroupCount is the number of type groups.
	GroupCount uint16 // 2 bytes, offset 4-5
	// EntryCount is the total number of entries across all groups.
	EntryCount uint16 // 2 bytes, offset 6-7
	// IndexOffset is the byte offset of the index section, always HeaderSize.
	IndexOffset uint32 // 4 bytes, offset 8-11
	// DataOffset is the byte offset of the (possibly compressed) data section.
	DataOffset uint32 // 4 bytes, offset 12-15
	// DataSize is the uncompressed size of the data section in bytes.
	DataSize uint32 // 4 bytes, offset 16-19
	// Checksum is the xxHash64 of the index section followed by the uncompressed data section.
	Checksum uint64 // 8 bytes, offset 20-27

	Reserved [4]byte // Reserved for future use, must be zero, offset 28-31
}

// NewTableHeader creates a header for groupCount groups whose type names take
// typeNamesSize bytes in total, and entryCount entries.
func NewTableHeader(groupCount, typeNamesSize, entryCount int) (*TableHeader, error) {
	if groupCount < 0 || groupCount > MaxGroupCount {
		return nil, fmt.Errorf("%w: %d groups", errs.ErrTooManyGroups, groupCount)
	}
	if entryCount < 0 || entryCount > MaxEntryCount {
		return nil, fmt.Errorf("%w: %d entries", errs.ErrTooManyEntries, entryCount)
	}

	indexSize := groupCount*GroupEntrySize + typeNamesSize + entryCount*IndexEntrySize

	return &TableHeader{
		Flag:        NewTableFlag(),
		GroupCount:  uint16(groupCount),
		EntryCount:  uint16(entryCount),
		IndexOffset: IndexOffsetOffset,
		DataOffset:  uint32(IndexOffsetOffset + indexSize), //nolint: gosec
	}, nil
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 32 bytes or if the flags are invalid.
func (h *TableHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian, it tells the byte order of everything else
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.DataCompression = data[2]
	h.Flag.Reserved = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()

	h.GroupCount = engine.Uint16(data[4:6])
	h.EntryCount = engine.Uint16(data[6:8])
	h.IndexOffset = engine.Uint32(data[8:12])
	h.DataOffset = engine.Uint32(data[12:16])
	h.DataSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint64(data[20:28])
	copy(h.Reserved[:], data[28:32])

	if h.IndexOffset != IndexOffsetOffset || h.DataOffset < h.IndexOffset {
		return fmt.Errorf("%w: index=%d data=%d", errs.ErrInvalidIndexOffsets, h.IndexOffset, h.DataOffset)
	}
	if h.DataSize > MaxDataSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidDataSize, h.DataSize)
	}

	return nil
}

// Bytes serializes the TableHeader into a byte slice.
func (h *TableHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.DataCompression
	b[3] = h.Flag.Reserved
	engine.PutUint16(b[4:6], h.GroupCount)
	engine.PutUint16(b[6:8], h.EntryCount)
	engine.PutUint32(b[8:12], h.IndexOffset)
	engine.PutUint32(b[12:16], h.DataOffset)
	engine.PutUint32(b[16:20], h.DataSize)
	engine.PutUint64(b[20:28], h.Checksum)
	copy(b[28:32], h.Reserved[:])

	return b
}

// IndexSize returns the size in bytes of the index section.
func (h *TableHeader) IndexSize() int {
	return int(h.DataOffset - h.IndexOffset)
}

// GetEndianEngine returns the appropriate endian engine based on the header flags.
func (h *TableHeader) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
