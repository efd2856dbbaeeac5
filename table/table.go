package table

import (
	"iter"
	"strings"
	"unsafe"
)

// Table is an immutable MIME type to extension lookup table.
//
// All strings live in a single packed buffer; groups and entries only carry
// offsets and lengths into it. A Table never changes after construction and is
// safe for concurrent use without locking.
type Table struct {
	data   string
	groups []Group
	count  int
}

var defaultTable = New(defaultData, defaultGroups)

// Default returns the process-wide table generated from the bundled mime-db.
func Default() *Table {
	return defaultTable
}

// New wraps already packed data and its groups.
//
// The input is trusted: New does not check it. Tables built from untrusted
// input should go through Validate, which table.Decode and builder.Build do.
// The groups slice must not be modified afterwards.
func New(data string, groups []Group) *Table {
	count := 0
	for i := range groups {
		count += len(groups[i].Entries)
	}

	return &Table{data: data, groups: groups, count: count}
}

// Lookup returns the canonical extension for mimetype.
//
// The type is everything before the first '/', the subtype everything after
// it up to the first ';'. Matching is exact and byte-wise: no case folding and
// no whitespace trimming. The returned string is a view into the table's packed
// data and Lookup never allocates.
func (t *Table) Lookup(mimetype string) (string, bool) {
	typ, subtype, ok := parseMimeType(mimetype)
	if !ok {
		return "", false
	}

	entries, ok := t.findGroup(typ)
	if !ok {
		return "", false
	}

	entry, ok := t.findEntry(entries, subtype)
	if !ok {
		return "", false
	}

	return entry.Extension(t.data), true
}

// Extension is like Lookup but returns an empty string when there is no mapping.
func (t *Table) Extension(mimetype string) string {
	ext, _ := t.Lookup(mimetype)
	return ext
}

func parseMimeType(mimetype string) (string, string, bool) {
	typ, subtype, ok := strings.Cut(mimetype, "/")
	if !ok {
		return "", "", false
	}

	if i := strings.IndexByte(subtype, ';'); i >= 0 {
		subtype = subtype[:i]
	}

	return typ, subtype, true
}

// findGroup scans the groups linearly, there are only about ten of them.
func (t *Table) findGroup(typ string) ([]Entry, bool) {
	for i := range t.groups {
		if t.groups[i].Type == typ {
			return t.groups[i].Entries, true
		}
	}

	return nil, false
}

func (t *Table) findEntry(entries []Entry, subtype string) (Entry, bool) {
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		entry := entries[mid]

		switch c := strings.Compare(entry.Subtype(t.data), subtype); {
		case c == 0:
			return entry, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return Entry{}, false
}

// Groups returns the table's groups. The result must be treated as read-only.
func (t *Table) Groups() []Group {
	return t.groups
}

// Data returns the packed string buffer.
func (t *Table) Data() string {
	return t.data
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return t.count
}

// Size returns the memory footprint of the packed table in bytes: packed data,
// group type names and 4 bytes per entry.
func (t *Table) Size() int {
	size := len(t.data) + t.count*int(unsafe.Sizeof(Entry{}))
	for i := range t.groups {
		size += len(t.groups[i].Type)
	}

	return size
}

// All iterates over every entry, group by group, in stored order.
func (t *Table) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, g := range t.groups {
			for _, e := range g.Entries {
				rec := Record{
					Type:      g.Type,
					Subtype:   e.Subtype(t.data),
					Extension: e.Extension(t.data),
				}
				if !yield(rec) {
					return
				}
			}
		}
	}
}
