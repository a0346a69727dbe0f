// Package compress provides compression and decompression codecs for model
// blob payloads.
//
// Model blob payloads are columns of raw float64 breakpoints and grid values.
// Axis columns are sorted and slowly varying, and grid columns of physical
// quantities (torque, grip, drag) share exponents and high mantissa bits, so
// general-purpose compressors recover most of the redundancy without any
// domain-specific encoding stage.
//
// Supported algorithms:
//   - None: no compression (fastest, largest; the default)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are selected by format.CompressionType through GetCodec. All
// built-in codecs are stateless values and safe for concurrent use; the
// Zstd and LZ4 implementations reuse pooled encoder state internally.
//
// Compression happens once at model build or export time and decompression
// once at load time. Nothing in this package runs during table lookups.
package compress
