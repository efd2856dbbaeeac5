package table

// Entry is a packed (subtype, extension) pair.
//
// The subtype is data[Location:Location+SubtypeLen] of the owning table's
// packed data and the extension immediately follows it. An Entry is 4 bytes.
type Entry struct {
	Location     uint16
	SubtypeLen   uint8
	ExtensionLen uint8
}

// Subtype returns the entry's subtype as a substring of data.
func (e Entry) Subtype(data string) string {
	loc := int(e.Location)
	return data[loc : loc+int(e.SubtypeLen)]
}

// Extension returns the entry's extension as a substring of data.
func (e Entry) Extension(data string) string {
	loc := int(e.Location) + int(e.SubtypeLen)
	return data[loc : loc+int(e.ExtensionLen)]
}

func (e Entry) end() int {
	return int(e.Location) + int(e.SubtypeLen) + int(e.ExtensionLen)
}

// Group holds the entries of one top-level type ("application", "image", ...),
// sorted by subtype in byte-wise ascending order.
type Group struct {
	Type    string
	Entries []Entry
}

// Record is an unpacked table entry.
type Record struct {
	Type      string
	Subtype   string
	Extension string
}

// MimeType returns "type/subtype".
func (r Record) MimeType() string {
	return r.Type + "/" + r.Subtype
}
