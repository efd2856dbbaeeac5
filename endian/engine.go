// Package endian provides the byte order engines used by the binary table artifact.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so a
// single value can both read fixed-size fields and append them to a buffer:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint16(buf, entryCount)
//	count := engine.Uint16(buf[4:6])
//
// All engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine.Uint16([]byte{0x01, 0x00}) == 0x0100
}
