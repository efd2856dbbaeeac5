package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mime2ext/errs"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		groups []Group
		err    error
	}{
		{
			name:   "valid",
			data:   "foobarmp4mp4",
			groups: []Group{{Type: "text", Entries: []Entry{{0, 3, 3}, {6, 3, 3}}}},
		},
		{
			name:   "empty type",
			data:   "foobar",
			groups: []Group{{Type: "", Entries: []Entry{{0, 3, 3}}}},
			err:    errs.ErrEmptyType,
		},
		{
			name:   "slash in type",
			data:   "foobar",
			groups: []Group{{Type: "te/xt", Entries: []Entry{{0, 3, 3}}}},
			err:    errs.ErrInvalidMimeType,
		},
		{
			name:   "type too long",
			data:   "foobar",
			groups: []Group{{Type: strings.Repeat("t", 256), Entries: []Entry{{0, 3, 3}}}},
			err:    errs.ErrFieldTooLong,
		},
		{
			name:   "non-ascii type",
			data:   "foobar",
			groups: []Group{{Type: "tèxt", Entries: []Entry{{0, 3, 3}}}},
			err:    errs.ErrNonASCII,
		},
		{
			name: "duplicate type",
			data: "foobar",
			groups: []Group{
				{Type: "text", Entries: []Entry{{0, 3, 3}}},
				{Type: "text", Entries: []Entry{{0, 3, 3}}},
			},
			err: errs.ErrDuplicateType,
		},
		{
			name:   "out of range",
			data:   "foobar",
			groups: []Group{{Type: "text", Entries: []Entry{{4, 3, 3}}}},
			err:    errs.ErrEntryOutOfRange,
		},
		{
			name:   "empty subtype",
			data:   "foobar",
			groups: []Group{{Type: "text", Entries: []Entry{{0, 0, 3}}}},
			err:    errs.ErrEmptySubtype,
		},
		{
			name:   "semicolon in subtype",
			data:   "f;obar",
			groups: []Group{{Type: "text", Entries: []Entry{{0, 3, 3}}}},
			err:    errs.ErrInvalidMimeType,
		},
		{
			name:   "empty extension",
			data:   "foobar",
			groups: []Group{{Type: "text", Entries: []Entry{{0, 3, 0}}}},
			err:    errs.ErrEmptyExtension,
		},
		{
			name:   "dot in extension",
			data:   "foob.r",
			groups: []Group{{Type: "text", Entries: []Entry{{0, 3, 3}}}},
			err:    errs.ErrInvalidExtension,
		},
		{
			name:   "unsorted",
			data:   "foobarmp4mp4",
			groups: []Group{{Type: "text", Entries: []Entry{{6, 3, 3}, {0, 3, 3}}}},
			err:    errs.ErrUnsortedEntries,
		},
		{
			name:   "duplicate subtype",
			data:   "foobar",
			groups: []Group{{Type: "text", Entries: []Entry{{0, 3, 3}, {0, 3, 3}}}},
			err:    errs.ErrDuplicateSubtype,
		},
		{
			name:   "non-ascii data",
			data:   "foobär",
			groups: []Group{{Type: "text", Entries: []Entry{{0, 3, 3}}}},
			err:    errs.ErrNonASCII,
		},
		{
			name: "data too large",
			data: strings.Repeat("x", 1<<16),
			err:  errs.ErrDataTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.data, tt.groups).Validate()
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSize(t *testing.T) {
	tbl := New("foobarmp4mp4", []Group{
		{Type: "text", Entries: []Entry{{0, 3, 3}}},
		{Type: "video", Entries: []Entry{{6, 3, 3}}},
	})
	require.Equal(t, 12+2*4+len("text")+len("video"), tbl.Size())

	def := Default()
	require.Greater(t, def.Size(), len(def.Data()))
}
