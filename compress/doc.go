// Package compress provides the codecs applied to the data section of a binary
// table artifact.
//
// The packed mime data is a single run of short ASCII strings, so all general
// purpose codecs shrink it noticeably. The static table compiled into the
// binary is never compressed; codecs only matter for artifacts written by
// builder.Encode and loaded with table.Decode.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): data is stored verbatim
//   - Zstd (format.CompressionZstd): best ratio, klauspost/compress by default,
//     libzstd through valyala/gozstd when built with -tags gozstd and cgo
//   - S2 (format.CompressionS2): Snappy-compatible, fast in both directions
//   - LZ4 (format.CompressionLZ4): fastest decoding
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "data")
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(data)
//
// All codecs are stateless values and safe for concurrent use; pooled encoder
// and decoder state lives in package-level sync.Pools.
package compress
