package compress

// ZstdCompressor provides Zstandard compression for model blob payloads.
//
// Zstd favors compression ratio over speed, which suits model data well:
// blobs are compressed once when a vehicle model is exported and
// decompressed once at load time, so ratio matters far more than
// throughput. Large 3D aerodynamic grids typically shrink 3:1 to 6:1.
//
// Two implementations back this type, selected by build tag:
//   - cgo builds use valyala/gozstd (libzstd bindings, fastest)
//   - pure-Go builds use klauspost/compress/zstd with pooled coders
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
