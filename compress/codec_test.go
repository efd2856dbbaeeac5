package compress

import (
	"bytes"
	"sync"
	"testing"

	"github.com/arloliu/mime2ext/format"
	"github.com/stretchr/testify/require"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"Zstd": NewZstdCompressor(),
		"S2":   NewS2Compressor(),
		"LZ4":  NewLZ4Compressor(),
	}
}

// packedSample mimics a packed data section: subtype and extension runs without delimiters.
func packedSample(repeat int) []byte {
	var b bytes.Buffer
	for i := 0; i < repeat; i++ {
		b.WriteString("vnd.openxmlformats-officedocument.wordprocessingml.documentdocx")
		b.WriteString("vnd.ms-excelxls")
		b.WriteString("pngpngjpegjpegsvg+xmlsvg")
	}

	return b.Bytes()
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		compression format.CompressionType
		want        Codec
	}{
		{format.CompressionNone, NoOpCompressor{}},
		{format.CompressionZstd, ZstdCompressor{}},
		{format.CompressionS2, S2Compressor{}},
		{format.CompressionLZ4, LZ4Compressor{}},
	}
	for _, tt := range tests {
		t.Run(tt.compression.String(), func(t *testing.T) {
			codec, err := CreateCodec(tt.compression, "data")
			require.NoError(t, err)
			require.IsType(t, tt.want, codec)

			builtin, err := GetCodec(tt.compression)
			require.NoError(t, err)
			require.IsType(t, tt.want, builtin)
		})
	}

	_, err := CreateCodec(format.CompressionType(0x9), "data")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid data compression")

	_, err = GetCodec(format.CompressionType(0x9))
	require.Error(t, err)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed, "Compressing nil should return nil")

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed, "Decompressing nil should return nil")
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"single_byte", []byte{0x42}},
		{"small_text", []byte("x-cooltalkice")},
		{"packed_table", packedSample(64)},
		{"packed_table_large", packedSample(500)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed, "Decompressed data must match original")
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{"random_bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"text_as_compressed", []byte("this is not compressed data")},
		{"corrupted_header", []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue // NoOp does not validate data
		}
		t.Run(codecName, func(t *testing.T) {
			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err, "Should return error for invalid compressed data")
				})
			}
		})
	}
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	data := []byte("htmlhtml")
	codec := NewNoOpCompressor()

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])

	out, err = codec.Decompress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	data := packedSample(32)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			var wg sync.WaitGroup
			errCh := make(chan error, numGoroutines*2)
			for range numGoroutines {
				wg.Add(2)
				go func() {
					defer wg.Done()
					if _, err := codec.Compress(data); err != nil {
						errCh <- err
					}
				}()
				go func() {
					defer wg.Done()
					out, err := codec.Decompress(compressed)
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(out, data) {
						errCh <- bytes.ErrTooLarge
					}
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}
