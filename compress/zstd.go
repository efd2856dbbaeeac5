package compress

// ZstdCompressor provides Zstandard compression.
//
// Zstd gives the best ratio of the built-in codecs on the packed mime data and is
// the natural choice for artifacts shipped over the network or stored on disk.
//
// The pure-Go implementation (klauspost/compress) is used by default. Building
// with the gozstd tag and cgo enabled switches to the libzstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
