package section

import (
	"github.com/arloliu/mime2ext/errs"
	"github.com/arloliu/mime2ext/format"
)

// TableFlag represents the packed flag field of the table header.
type TableFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are magic number to identify the artifact format:
	//   - 0xEC10 (0b1110_1100_0001_0000): mime table format v1
	Options uint16

	// DataCompression indicates the compression used for the data section.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	DataCompression uint8

	// Reserved for future use, must be set to 0.
	Reserved uint8
}

// NewTableFlag creates a new little-endian, uncompressed TableFlag.
func NewTableFlag() TableFlag {
	flag := TableFlag{
		Options:         MagicTableV1Opt,
		DataCompression: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the multi-byte fields are little-endian.
func (f TableFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the multi-byte fields are big-endian.
func (f TableFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *TableFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *TableFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f TableFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// SetDataCompression sets the data compression type.
func (f *TableFlag) SetDataCompression(compression format.CompressionType) {
	f.DataCompression = uint8(compression)
}

// GetDataCompression returns the data compression type.
func (f TableFlag) GetDataCompression() format.CompressionType {
	return format.CompressionType(f.DataCompression)
}

// Validate checks if the flag contains valid values.
func (f TableFlag) Validate() error {
	if f.GetMagicNumber() != MagicTableV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options&ReservedBitsMask) != 0 || f.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.GetDataCompression().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
