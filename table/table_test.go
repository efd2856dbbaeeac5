package table

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

var notFound = []string{
	"notareal/mimetype",
	"noslash",
	"application/",
	"application/jpeg",
	"application////",
	"application/octet-stream/",
	"/application/octet-stream",
	"application/aaaaaaa",
	"application/zzzzzzz",
	"aaaaaaaa/jpeg",
	"zzzzzzzz/jpeg",
	"",
	"/",
	"//",
	"\x00",
	"µ",
	"µµ/µµ",
	"aµµ//µµ",
	"application/\xc2",
	"\xff\xfe/\xfd",
	"image/png\x00",
	"text/html ",
	" text/html",
	"TEXT/HTML",
	"image/PNG",
	"application/clr",
	"application/xcap-error+xml", // in mime-db, but without extensions
	"audio/amr",                  // in mime-db, but without extensions
	"multipart/form-data",        // in mime-db, but without extensions
	"x-conference/nonexistent",
}

var found = []struct {
	mimetype string
	ext      string
}{
	{"application/octet-stream", "bin"},
	{"image/png", "png"},
	{"application/davmount+xml", "davmount"},
	{"application/andrew-inset", "ez"},
	{"x-conference/x-cooltalk", "ice"},
	{"application/ecmascript", "ecma"},
	{"application/javascript", "js"},
	{"application/json", "json"},
	{"application/vnd.ms-excel", "xls"},
	{"application/xhtml+xml", "xhtml"},
	{"audio/mpeg", "mpga"},
	{"audio/ogg", "oga"},
	{"chemical/x-cdx", "cdx"},
	{"font/woff2", "woff2"},
	{"image/jpeg", "jpeg"},
	{"image/svg+xml", "svg"},
	{"message/rfc822", "eml"},
	{"model/gltf+json", "gltf"},
	{"text/html", "html"},
	{"text/html; charset=UTF-8", "html"},
	{"text/html;", "html"},
	{"text/plain;charset=us-ascii;format=flowed", "txt"},
	{"text/xml", "xml"},
	{"video/mp4", "mp4"},
	{"video/ogg", "ogv"},
}

func TestLookup_NotFound(t *testing.T) {
	tbl := Default()
	for _, mimetype := range notFound {
		ext, ok := tbl.Lookup(mimetype)
		require.False(t, ok, "found %q for %q", ext, mimetype)
		require.Empty(t, ext)
		require.Empty(t, tbl.Extension(mimetype))
	}
}

func TestLookup_Found(t *testing.T) {
	tbl := Default()
	for _, tc := range found {
		ext, ok := tbl.Lookup(tc.mimetype)
		require.True(t, ok, "missing %q", tc.mimetype)
		require.Equal(t, tc.ext, ext, tc.mimetype)
		require.Equal(t, tc.ext, tbl.Extension(tc.mimetype))
	}
}

func TestLookup_EveryEntry(t *testing.T) {
	tbl := Default()
	n := 0
	for rec := range tbl.All() {
		ext, ok := tbl.Lookup(rec.MimeType())
		require.True(t, ok, rec.MimeType())
		require.Equal(t, rec.Extension, ext, rec.MimeType())
		n++
	}
	require.Equal(t, tbl.Len(), n)
	require.Equal(t, 850, n)
}

func TestDefault_Invariants(t *testing.T) {
	tbl := Default()
	require.NoError(t, tbl.Validate())
	require.Less(t, len(tbl.Data()), 1<<16)
	require.Equal(t, uintptr(4), unsafe.Sizeof(Entry{}))
	require.Len(t, tbl.Groups(), 10)

	for _, g := range tbl.Groups() {
		require.NotEmpty(t, g.Type)
		require.NotContains(t, g.Type, "/")

		// required for binary search
		require.True(t, slices.IsSortedFunc(g.Entries, func(a, b Entry) int {
			return strings.Compare(a.Subtype(tbl.Data()), b.Subtype(tbl.Data()))
		}), "group %s is not sorted", g.Type)

		for _, e := range g.Entries {
			subtype, ext := e.Subtype(tbl.Data()), e.Extension(tbl.Data())
			require.NotEmpty(t, subtype)
			require.NotContains(t, subtype, "/")
			require.NotEmpty(t, ext)
			require.NotContains(t, ext, "/")
			require.NotContains(t, ext, ".")
		}
	}
}

func TestLookup_GroupsAreIndependent(t *testing.T) {
	// "foo" exists only under text; groups are deliberately unsorted
	tbl := New("foobarmp4mp4", []Group{
		{Type: "video", Entries: []Entry{{6, 3, 3}}},
		{Type: "text", Entries: []Entry{{0, 3, 3}}},
	})
	require.NoError(t, tbl.Validate())

	ext, ok := tbl.Lookup("text/foo")
	require.True(t, ok)
	require.Equal(t, "bar", ext)

	_, ok = tbl.Lookup("audio/foo")
	require.False(t, ok)
	_, ok = tbl.Lookup("video/foo")
	require.False(t, ok)
	_, ok = tbl.Lookup("text/mp4")
	require.False(t, ok)

	ext, ok = tbl.Lookup("video/mp4")
	require.True(t, ok)
	require.Equal(t, "mp4", ext)

	// the same subtype in several default groups resolves per group
	require.Equal(t, "xml", Default().Extension("text/xml"))
	require.Equal(t, "xml", Default().Extension("application/xml"))
	require.Equal(t, "jpeg", Default().Extension("image/jpeg"))
	require.Equal(t, "jpgv", Default().Extension("video/jpeg"))
}

func TestLookup_EmptyTable(t *testing.T) {
	tbl := New("", nil)
	require.NoError(t, tbl.Validate())
	require.Zero(t, tbl.Len())

	_, ok := tbl.Lookup("image/png")
	require.False(t, ok)

	tbl = New("", []Group{{Type: "image"}})
	_, ok = tbl.Lookup("image/png")
	require.False(t, ok)
}

func TestLookup_ResultIsViewIntoData(t *testing.T) {
	tbl := Default()
	ext, ok := tbl.Lookup("image/png")
	require.True(t, ok)

	data := tbl.Data()
	start := uintptr(unsafe.Pointer(unsafe.StringData(data)))
	p := uintptr(unsafe.Pointer(unsafe.StringData(ext)))
	require.GreaterOrEqual(t, p, start)
	require.Less(t, p, start+uintptr(len(data)))
}

func TestLookup_NoAllocations(t *testing.T) {
	tbl := Default()
	inputs := []string{"text/html; charset=UTF-8", "image/png", "application/zzzzzzz", "noslash", ""}

	for _, in := range inputs {
		allocs := testing.AllocsPerRun(100, func() {
			_, _ = tbl.Lookup(in)
		})
		require.Zero(t, allocs, in)
	}
}

func TestLookup_Concurrent(t *testing.T) {
	tbl := Default()
	var wg sync.WaitGroup
	errCh := make(chan error, 64)

	for g := 0; g < 32; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				tc := found[(g+i)%len(found)]
				if ext, ok := tbl.Lookup(tc.mimetype); !ok || ext != tc.ext {
					errCh <- fmt.Errorf("%q: got %q, %v", tc.mimetype, ext, ok)
					return
				}
				if _, ok := tbl.Lookup(notFound[(g+i)%len(notFound)]); ok {
					errCh <- fmt.Errorf("unexpected match for %q", notFound[(g+i)%len(notFound)])
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
}

func TestLookup_Deterministic(t *testing.T) {
	tbl := Default()
	first, _ := tbl.Lookup("application/octet-stream")
	for i := 0; i < 100; i++ {
		ext, _ := tbl.Lookup("application/octet-stream")
		require.Equal(t, first, ext)
	}
}

func TestParseMimeType(t *testing.T) {
	tests := []struct {
		in      string
		typ     string
		subtype string
		ok      bool
	}{
		{"text/html", "text", "html", true},
		{"text/html; charset=UTF-8", "text", "html", true},
		{"text/html;a;b", "text", "html", true},
		{"a/b/c", "a", "b/c", true},
		{"/x", "", "x", true},
		{"x/", "x", "", true},
		{"x/;", "x", "", true},
		{"noslash", "", "", false},
		{"no;slash", "", "", false},
	}
	for _, tt := range tests {
		typ, subtype, ok := parseMimeType(tt.in)
		require.Equal(t, tt.ok, ok, tt.in)
		require.Equal(t, tt.typ, typ, tt.in)
		require.Equal(t, tt.subtype, subtype, tt.in)
	}
}

func TestAll_StopsEarly(t *testing.T) {
	n := 0
	for range Default().All() {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

func BenchmarkLookup(b *testing.B) {
	tbl := Default()
	b.Run("found", func(b *testing.B) {
		for b.Loop() {
			_, _ = tbl.Lookup("application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		}
	})
	b.Run("parameterized", func(b *testing.B) {
		for b.Loop() {
			_, _ = tbl.Lookup("text/html; charset=UTF-8")
		}
	})
	b.Run("missing", func(b *testing.B) {
		for b.Loop() {
			_, _ = tbl.Lookup("application/zzzzzzz")
		}
	})
}
