// Package format defines the shared enums of the model blob format.
package format

type (
	TableKind       uint8
	CompressionType uint8
)

const (
	Kind1D TableKind = 0x1 // Kind1D represents a one-axis table with linear interpolation.
	Kind2D TableKind = 0x2 // Kind2D represents a two-axis table with bilinear interpolation.
	Kind3D TableKind = 0x3 // Kind3D represents a three-axis table with trilinear interpolation.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k TableKind) String() string {
	switch k {
	case Kind1D:
		return "1D"
	case Kind2D:
		return "2D"
	case Kind3D:
		return "3D"
	default:
		return "Unknown"
	}
}

// Dims returns the number of independent axes for the kind, or 0 if invalid.
func (k TableKind) Dims() int {
	switch k {
	case Kind1D:
		return 1
	case Kind2D:
		return 2
	case Kind3D:
		return 3
	default:
		return 0
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
