// Package section defines the low-level binary structures of a mime table artifact.
//
// An artifact is what builder.Encode writes and table.Decode loads: a
// self-describing, optionally compressed serialization of a table.Table.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Flag (4 bytes): magic, endianness, compression       │
//	│  - GroupCount, EntryCount (2 + 2 bytes)                 │
//	│  - IndexOffset, DataOffset, DataSize (3 × 4 bytes)      │
//	│  - Checksum (8 bytes): xxHash64(index || data)          │
//	│  - Reserved (4 bytes)                                   │
//	├─────────────────────────────────────────────────────────┤
//	│ Group directory (GroupCount × 4 bytes)                  │
//	│  - TypeLen, Reserved, EntryCount                        │
//	├─────────────────────────────────────────────────────────┤
//	│ Type names (sum of TypeLen bytes, no delimiters)        │
//	├─────────────────────────────────────────────────────────┤
//	│ Entries (EntryCount × 4 bytes)                          │
//	│  - Location (2), SubtypeLen (1), ExtensionLen (1)       │
//	├─────────────────────────────────────────────────────────┤
//	│ Data (DataSize bytes once decompressed)                 │
//	│  - subtype||extension for every entry, in entry order   │
//	└─────────────────────────────────────────────────────────┘
//
// The two Options bytes are always little-endian; every other multi-byte field
// uses the byte order selected by the endianness bit.
package section
