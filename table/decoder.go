package table

import (
	"fmt"

	"github.com/indigo-web/utils/uf"

	"github.com/arloliu/mime2ext/compress"
	"github.com/arloliu/mime2ext/endian"
	"github.com/arloliu/mime2ext/errs"
	"github.com/arloliu/mime2ext/format"
	"github.com/arloliu/mime2ext/internal/hash"
	"github.com/arloliu/mime2ext/section"
)

// Decoder loads a binary table artifact written by builder.Encode.
//
// Unlike the static default table, an artifact is untrusted input: the decoder
// checks the header, the xxHash64 checksum and every table invariant once, and
// the resulting Table is then used without further checks.
//
// Note: The Decoder is NOT thread-safe, and is NOT reusable after Decode.
type Decoder struct {
	data   []byte
	engine endian.EndianEngine
	header *section.TableHeader
}

// NewDecoder creates a new Decoder for the given artifact and parses its header.
//
// Returns:
//   - *Decoder: New decoder instance ready for decoding
//   - error: Header parsing error or invalid data format
func NewDecoder(data []byte) (*Decoder, error) {
	decoder := &Decoder{
		data: data,
	}

	if err := decoder.parseHeader(); err != nil {
		return nil, err
	}

	return decoder, nil
}

// Decode is a shortcut for NewDecoder followed by Decoder.Decode.
func Decode(data []byte) (*Table, error) {
	decoder, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}

// Header returns the parsed artifact header.
func (d *Decoder) Header() section.TableHeader {
	return *d.header
}

// Decode reconstructs the Table stored in the artifact.
//
// The returned table does not reference the input slice, so callers may reuse it.
func (d *Decoder) Decode() (*Table, error) {
	dataOffset := int(d.header.DataOffset)
	if len(d.data) < dataOffset {
		return nil, fmt.Errorf("%w: data offset %d exceeds artifact length %d",
			errs.ErrInvalidIndexOffsets, dataOffset, len(d.data))
	}

	index := d.data[d.header.IndexOffset:dataOffset]

	// Step 1: group directory and type names
	dir, names, entriesOffset, err := d.parseGroups(index)
	if err != nil {
		return nil, err
	}

	// Step 2: entries
	entries, err := d.parseEntries(index[entriesOffset:])
	if err != nil {
		return nil, err
	}

	// Step 3: data payload
	payload, err := d.decompressData(d.data[dataOffset:])
	if err != nil {
		return nil, err
	}

	if sum := hash.Checksum(index, payload); sum != d.header.Checksum {
		return nil, fmt.Errorf("%w: expected 0x%016x, got 0x%016x", errs.ErrChecksumMismatch, d.header.Checksum, sum)
	}

	// Step 4: assemble, type names and entries are views into shared storage
	typeNames := string(names)
	groups := make([]Group, len(dir))
	nameOffset, entryOffset := 0, 0
	for i, ge := range dir {
		nameEnd := nameOffset + int(ge.TypeLen)
		entryEnd := entryOffset + int(ge.EntryCount)
		groups[i] = Group{
			Type:    typeNames[nameOffset:nameEnd],
			Entries: entries[entryOffset:entryEnd:entryEnd],
		}
		nameOffset, entryOffset = nameEnd, entryEnd
	}

	t := New(d.dataString(payload), groups)
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table artifact: %w", err)
	}

	return t, nil
}

// parseHeader parses the header section of the artifact.
func (d *Decoder) parseHeader() error {
	if len(d.data) < section.HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	var header section.TableHeader
	if err := header.Parse(d.data[:section.HeaderSize]); err != nil {
		return err
	}

	d.engine = header.GetEndianEngine()
	d.header = &header

	return nil
}

// parseGroups parses the group directory. It returns the directory, the
// concatenated type names and the offset of the entry array within index.
func (d *Decoder) parseGroups(index []byte) ([]section.GroupEntry, []byte, int, error) {
	groupCount := int(d.header.GroupCount)
	dirSize := groupCount * section.GroupEntrySize
	if len(index) < dirSize {
		return nil, nil, 0, fmt.Errorf("%w: need %d bytes for %d groups, have %d",
			errs.ErrInvalidIndexOffsets, dirSize, groupCount, len(index))
	}

	dir := make([]section.GroupEntry, groupCount)
	namesSize, entryCount := 0, 0
	for i := 0; i < groupCount; i++ {
		offset := i * section.GroupEntrySize
		ge, err := section.ParseGroupEntry(index[offset:offset+section.GroupEntrySize], d.engine)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("failed to parse group entry %d: %w", i, err)
		}
		if ge.Reserved != 0 {
			return nil, nil, 0, fmt.Errorf("%w: group entry %d", errs.ErrInvalidHeaderFlags, i)
		}

		dir[i] = ge
		namesSize += int(ge.TypeLen)
		entryCount += int(ge.EntryCount)
	}

	if entryCount != int(d.header.EntryCount) {
		return nil, nil, 0, fmt.Errorf("%w: groups hold %d entries, header says %d",
			errs.ErrInvalidIndexOffsets, entryCount, d.header.EntryCount)
	}

	expected := dirSize + namesSize + entryCount*section.IndexEntrySize
	if len(index) != expected {
		return nil, nil, 0, fmt.Errorf("%w: index section is %d bytes, expected %d",
			errs.ErrInvalidIndexOffsets, len(index), expected)
	}

	return dir, index[dirSize : dirSize+namesSize], dirSize + namesSize, nil
}

// parseEntries parses the entry array that follows the type names.
func (d *Decoder) parseEntries(raw []byte) ([]Entry, error) {
	entryCount := int(d.header.EntryCount)
	entries := make([]Entry, entryCount)

	for i := 0; i < entryCount; i++ {
		offset := i * section.IndexEntrySize
		ie, err := section.ParseIndexEntry(raw[offset:offset+section.IndexEntrySize], d.engine)
		if err != nil {
			return nil, fmt.Errorf("failed to parse index entry %d: %w", i, err)
		}
		entries[i] = Entry(ie)
	}

	return entries, nil
}

// decompressData decompresses the data section and checks its size against the header.
func (d *Decoder) decompressData(raw []byte) ([]byte, error) {
	codec, err := compress.GetCodec(d.header.Flag.GetDataCompression())
	if err != nil {
		return nil, fmt.Errorf("failed to create decompression codec: %w", err)
	}

	payload, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress data: %w", err)
	}

	if uint32(len(payload)) != d.header.DataSize { //nolint:gosec
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrInvalidDataSize, d.header.DataSize, len(payload))
	}

	return payload, nil
}

// dataString turns the payload into the table's packed string. A decompressed
// payload is a fresh buffer owned by the decoder and is converted without
// copying; an uncompressed one still aliases the caller's artifact.
func (d *Decoder) dataString(payload []byte) string {
	if d.header.Flag.GetDataCompression() == format.CompressionNone {
		return string(payload)
	}

	return uf.B2S(payload)
}
