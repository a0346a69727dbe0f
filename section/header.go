package section

import (
	"time"
	"unsafe"

	"github.com/openvd/vdkit/errs"
)

// Header is the fixed-size section at the start of a model blob.
type Header struct {
	// Flag is the packed magic/options/compression field. Byte offset 0-3.
	Flag Flag
	// CreatedAt is the blob creation time, unix microseconds. Byte offset 4-11.
	CreatedAt int64
	// TableCount is the number of tables stored in the blob. Byte offset 12-15.
	TableCount uint32
	// IndexOffset is the byte offset of the index section. Byte offset 16-19.
	IndexOffset uint32
	// PayloadOffset is the byte offset of the (possibly compressed) payload
	// section. Byte offset 20-23.
	PayloadOffset uint32
	// PayloadChecksum is the xxHash64 of the payload section exactly as
	// stored (i.e. after compression). Byte offset 24-31.
	PayloadChecksum uint64
}

// NewHeader creates a header with the given creation time and default flag.
// Table count and section offsets are filled in when the encoder finishes.
func NewHeader(createdAt time.Time) *Header {
	return &Header{
		Flag:      NewFlag(),
		CreatedAt: createdAt.UnixMicro(),
	}
}

// Bytes serializes the header. The flag bytes are always little-endian; the
// remaining fields use the byte order the flag selects.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Magic)
	b[1] = byte(h.Flag.Magic >> 8)
	b[2] = h.Flag.Options
	b[3] = h.Flag.CompressionType

	engine := h.Flag.GetEndianEngine()
	// Bitwise conversion: timestamps are stored as-is in binary.
	engine.PutUint64(b[4:12], *(*uint64)(unsafe.Pointer(&h.CreatedAt)))
	engine.PutUint32(b[12:16], h.TableCount)
	engine.PutUint32(b[16:20], h.IndexOffset)
	engine.PutUint32(b[20:24], h.PayloadOffset)
	engine.PutUint64(b[24:32], h.PayloadChecksum)

	return b
}

// Parse parses the header from a byte slice.
//
// Returns errs.ErrInvalidHeaderSize on short input, or flag validation
// errors (errs.ErrInvalidMagic, errs.ErrInvalidCompressionType).
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Flag bytes first: they determine the byte order of the rest.
	h.Flag.Magic = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Options = data[2]
	h.Flag.CompressionType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	createdAt := engine.Uint64(data[4:12])
	h.CreatedAt = *(*int64)(unsafe.Pointer(&createdAt))
	h.TableCount = engine.Uint32(data[12:16])
	h.IndexOffset = engine.Uint32(data[16:20])
	h.PayloadOffset = engine.Uint32(data[20:24])
	h.PayloadChecksum = engine.Uint64(data[24:32])

	return nil
}

// CreatedAtTime returns the creation time as a time.Time.
func (h *Header) CreatedAtTime() time.Time {
	return time.UnixMicro(h.CreatedAt)
}
