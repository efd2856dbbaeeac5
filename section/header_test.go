package section

import (
	"testing"

	"github.com/arloliu/mime2ext/errs"
	"github.com/arloliu/mime2ext/format"
	"github.com/stretchr/testify/require"
)

func TestNewTableHeader(t *testing.T) {
	t.Run("Valid counts", func(t *testing.T) {
		header, err := NewTableHeader(10, 60, 850)

		require.NoError(t, err)
		require.NotNil(t, header)
		require.Equal(t, uint16(10), header.GroupCount)
		require.Equal(t, uint16(850), header.EntryCount)
		require.Equal(t, uint32(IndexOffsetOffset), header.IndexOffset)
		require.Equal(t, uint32(HeaderSize+10*GroupEntrySize+60+850*IndexEntrySize), header.DataOffset)
		require.Equal(t, 10*GroupEntrySize+60+850*IndexEntrySize, header.IndexSize())
		require.True(t, header.Flag.IsLittleEndian())
		require.Equal(t, format.CompressionNone, header.Flag.GetDataCompression())
	})

	t.Run("Too many groups", func(t *testing.T) {
		header, err := NewTableHeader(MaxGroupCount+1, 0, 0)

		require.ErrorIs(t, err, errs.ErrTooManyGroups)
		require.Nil(t, header)
	})

	t.Run("Too many entries", func(t *testing.T) {
		header, err := NewTableHeader(1, 4, MaxEntryCount+1)

		require.ErrorIs(t, err, errs.ErrTooManyEntries)
		require.Nil(t, header)
	})

	t.Run("Empty table", func(t *testing.T) {
		header, err := NewTableHeader(0, 0, 0)

		require.NoError(t, err)
		require.Equal(t, uint32(HeaderSize), header.DataOffset)
	})
}

func TestTableHeader_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		name := "little"
		if bigEndian {
			name = "big"
		}
		t.Run(name, func(t *testing.T) {
			original, err := NewTableHeader(3, 20, 12)
			require.NoError(t, err)
			if bigEndian {
				original.Flag.WithBigEndian()
			}
			original.Flag.SetDataCompression(format.CompressionZstd)
			original.DataSize = 321
			original.Checksum = 0x0123456789abcdef

			data := original.Bytes()
			require.Len(t, data, HeaderSize)

			parsed := &TableHeader{}
			require.NoError(t, parsed.Parse(data))
			require.Equal(t, *original, *parsed)
			require.Equal(t, bigEndian, parsed.Flag.IsBigEndian())
		})
	}
}

func TestTableHeader_Parse(t *testing.T) {
	valid := func() []byte {
		h, err := NewTableHeader(1, 4, 1)
		require.NoError(t, err)
		h.DataSize = 10

		return h.Bytes()
	}

	t.Run("Invalid size", func(t *testing.T) {
		header := &TableHeader{}
		require.ErrorIs(t, header.Parse([]byte{1, 2, 3}), errs.ErrInvalidHeaderSize)
	})

	t.Run("Invalid magic", func(t *testing.T) {
		data := valid()
		data[0], data[1] = 0x00, 0x00

		header := &TableHeader{}
		require.ErrorIs(t, header.Parse(data), errs.ErrInvalidMagicNumber)
	})

	t.Run("Reserved bits set", func(t *testing.T) {
		data := valid()
		data[0] |= 0x02

		header := &TableHeader{}
		require.ErrorIs(t, header.Parse(data), errs.ErrInvalidHeaderFlags)
	})

	t.Run("Unknown compression", func(t *testing.T) {
		data := valid()
		data[2] = 0x7

		header := &TableHeader{}
		require.ErrorIs(t, header.Parse(data), errs.ErrInvalidHeaderFlags)
	})

	t.Run("Bad index offset", func(t *testing.T) {
		data := valid()
		data[8] = 0x10

		header := &TableHeader{}
		require.ErrorIs(t, header.Parse(data), errs.ErrInvalidIndexOffsets)
	})

	t.Run("Data size overflow", func(t *testing.T) {
		data := valid()
		data[18] = 0x01 // 65536 + 10 in little-endian

		header := &TableHeader{}
		require.ErrorIs(t, header.Parse(data), errs.ErrInvalidDataSize)
	})
}
