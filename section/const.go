package section

// MagicNumber identifies a model blob ("VD" little-endian).
const MagicNumber uint16 = 0x4456

const (
	// HeaderSize is the fixed byte size of the blob header.
	HeaderSize = 32

	// IndexEntrySize is the fixed byte size of one table index entry.
	IndexEntrySize = 24
)

// Option bits of the header flag.
const (
	// optBigEndian marks payload sections as big-endian. Cleared means
	// little-endian, the default.
	optBigEndian uint8 = 1 << 0
)

// MaxTableCount is the maximum number of tables in a single blob.
const MaxTableCount = 65536

// MaxAxisLen is the maximum encodable axis length (uint16 on disk).
const MaxAxisLen = 65535
