package builder

import (
	"fmt"

	"github.com/indigo-web/utils/uf"

	"github.com/arloliu/mime2ext/compress"
	"github.com/arloliu/mime2ext/endian"
	"github.com/arloliu/mime2ext/format"
	"github.com/arloliu/mime2ext/internal/hash"
	"github.com/arloliu/mime2ext/internal/options"
	"github.com/arloliu/mime2ext/internal/pool"
	"github.com/arloliu/mime2ext/section"
	"github.com/arloliu/mime2ext/table"
)

// EncoderConfig holds binary artifact settings.
type EncoderConfig struct {
	flag   section.TableFlag
	engine endian.EndianEngine
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		flag:   section.NewTableFlag(),
		engine: endian.GetLittleEndianEngine(),
	}
}

// setDataCompression sets the data compression type.
func (c *EncoderConfig) setDataCompression(comp format.CompressionType) error {
	if !comp.IsValid() {
		return fmt.Errorf("invalid data compression: %v", comp)
	}
	c.flag.SetDataCompression(comp)

	return nil
}

// setBigEndian switches the byte order and the matching engine.
func (c *EncoderConfig) setBigEndian(big bool) {
	if big {
		c.flag.WithBigEndian()
		c.engine = endian.GetBigEndianEngine()
	} else {
		c.flag.WithLittleEndian()
		c.engine = endian.GetLittleEndianEngine()
	}
}

// EncoderOption configures Encode.
type EncoderOption = options.Option[*EncoderConfig]

// WithLittleEndian writes multi-byte fields in little-endian order.
// It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setBigEndian(false)
	})
}

// WithBigEndian writes multi-byte fields in big-endian order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setBigEndian(true)
	})
}

// WithCompression sets the compression of the data section. Default is CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setDataCompression(comp)
	})
}

// Encode serializes t into a binary artifact readable by table.Decode.
//
// The artifact consists of a 32-byte header, the index section (group
// directory, type names and entries) and the packed data section, which is
// the only part subject to compression.
func Encode(t *table.Table, opts ...EncoderOption) ([]byte, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot encode invalid table: %w", err)
	}

	codec, err := compress.CreateCodec(cfg.flag.GetDataCompression(), "data")
	if err != nil {
		return nil, err
	}

	groups := t.Groups()
	namesSize := 0
	for _, g := range groups {
		namesSize += len(g.Type)
	}

	header, err := section.NewTableHeader(len(groups), namesSize, t.Len())
	if err != nil {
		return nil, err
	}
	header.Flag = cfg.flag
	header.DataSize = uint32(len(t.Data())) //nolint:gosec

	buf := pool.GetArtifactBuffer()
	defer pool.PutArtifactBuffer(buf)

	index := buf.ExtendOrGrow(header.IndexSize())
	if err := writeIndex(index, groups, cfg.engine); err != nil {
		return nil, err
	}

	data := uf.S2B(t.Data())
	header.Checksum = hash.Checksum(index, data)

	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}

	artifact := make([]byte, 0, section.HeaderSize+len(index)+len(compressed))
	artifact = append(artifact, header.Bytes()...)
	artifact = append(artifact, index...)
	artifact = append(artifact, compressed...)

	return artifact, nil
}

// writeIndex fills index with the group directory, the type names and the
// entries of every group in order.
func writeIndex(index []byte, groups []table.Group, engine endian.EndianEngine) error {
	offset := 0
	for _, g := range groups {
		ge := section.GroupEntry{
			TypeLen:    uint8(len(g.Type)),     //nolint:gosec
			EntryCount: uint16(len(g.Entries)), //nolint:gosec
		}
		if err := ge.WriteToSlice(index[offset:], engine); err != nil {
			return err
		}
		offset += section.GroupEntrySize
	}

	for _, g := range groups {
		offset += copy(index[offset:], g.Type)
	}

	for _, g := range groups {
		for _, e := range g.Entries {
			if err := section.IndexEntry(e).WriteToSlice(index[offset:], engine); err != nil {
				return err
			}
			offset += section.IndexEntrySize
		}
	}

	return nil
}
