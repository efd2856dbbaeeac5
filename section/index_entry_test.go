package section

import (
	"testing"

	"github.com/arloliu/mime2ext/endian"
	"github.com/arloliu/mime2ext/errs"
	"github.com/stretchr/testify/require"
)

func TestIndexEntry_WriteAndParse(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			entry := IndexEntry{Location: 0xABCD, SubtypeLen: 12, ExtensionLen: 4}
			b := make([]byte, IndexEntrySize)
			require.NoError(t, entry.WriteToSlice(b, engine))

			parsed, err := ParseIndexEntry(b, engine)
			require.NoError(t, err)
			require.Equal(t, entry, parsed)
			require.Equal(t, 0xABCD+16, parsed.End())
		})
	}

	t.Run("byte layout", func(t *testing.T) {
		b := make([]byte, IndexEntrySize)
		entry := IndexEntry{Location: 0x0102, SubtypeLen: 3, ExtensionLen: 4}
		require.NoError(t, entry.WriteToSlice(b, endian.GetBigEndianEngine()))
		require.Equal(t, []byte{0x01, 0x02, 3, 4}, b)
	})

	t.Run("short slice", func(t *testing.T) {
		require.ErrorIs(t, IndexEntry{}.WriteToSlice(make([]byte, 3), endian.GetLittleEndianEngine()),
			errs.ErrInvalidIndexEntrySize)
		_, err := ParseIndexEntry([]byte{1, 2}, endian.GetLittleEndianEngine())
		require.ErrorIs(t, err, errs.ErrInvalidIndexEntrySize)
	})
}

func TestGroupEntry_WriteAndParse(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	group := GroupEntry{TypeLen: 11, EntryCount: 611}

	b := make([]byte, GroupEntrySize)
	require.NoError(t, group.WriteToSlice(b, engine))
	require.Equal(t, []byte{11, 0, 0x63, 0x02}, b)

	parsed, err := ParseGroupEntry(b, engine)
	require.NoError(t, err)
	require.Equal(t, group, parsed)

	_, err = ParseGroupEntry(b[:2], engine)
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntrySize)
}
