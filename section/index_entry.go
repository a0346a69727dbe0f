package section

import (
	"github.com/openvd/vdkit/endian"
	"github.com/openvd/vdkit/errs"
	"github.com/openvd/vdkit/format"
)

// IndexEntry records one table in the blob index section. It is a fixed
// 24 bytes on disk:
//
//	offset 0-7:   TableID (xxHash64 of the table name)
//	offset 8:     Kind (format.TableKind)
//	offset 9:     reserved, zero
//	offset 10-11: NX (uint16)
//	offset 12-13: NY (uint16, zero for 1D)
//	offset 14-15: NZ (uint16, zero for 1D/2D)
//	offset 16-19: Offset (byte offset into the decompressed payload)
//	offset 20-23: reserved, zero
type IndexEntry struct {
	// TableID is the xxHash64 of the table name.
	TableID uint64

	// Kind is the table dimensionality.
	Kind format.TableKind

	// NX, NY, NZ are the axis lengths. Unused trailing axes are zero.
	NX int
	NY int
	NZ int

	// Offset is the byte offset of this table's columns within the
	// decompressed payload section.
	Offset int
}

// PayloadSize returns the byte size of the table's payload columns: all
// axes followed by the value grid, 8 bytes per float64.
func (e *IndexEntry) PayloadSize() int {
	switch e.Kind {
	case format.Kind1D:
		return 8 * (e.NX + e.NX)
	case format.Kind2D:
		return 8 * (e.NX + e.NY + e.NX*e.NY)
	case format.Kind3D:
		return 8 * (e.NX + e.NY + e.NZ + e.NX*e.NY*e.NZ)
	default:
		return 0
	}
}

// Bytes serializes the entry using the given endian engine.
func (e *IndexEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [IndexEntrySize]byte

	engine.PutUint64(b[0:8], e.TableID)
	b[8] = uint8(e.Kind)
	engine.PutUint16(b[10:12], uint16(e.NX))
	engine.PutUint16(b[12:14], uint16(e.NY))
	engine.PutUint16(b[14:16], uint16(e.NZ))
	engine.PutUint32(b[16:20], uint32(e.Offset))

	return b[:]
}

// Parse parses the entry from a byte slice using the given endian engine.
//
// Returns errs.ErrInvalidIndexSize on short input and
// errs.ErrInvalidTableKind on an unknown kind byte.
func (e *IndexEntry) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < IndexEntrySize {
		return errs.ErrInvalidIndexSize
	}

	e.TableID = engine.Uint64(data[0:8])
	e.Kind = format.TableKind(data[8])
	e.NX = int(engine.Uint16(data[10:12]))
	e.NY = int(engine.Uint16(data[12:14]))
	e.NZ = int(engine.Uint16(data[14:16]))
	e.Offset = int(engine.Uint32(data[16:20]))

	if e.Kind.Dims() == 0 {
		return errs.ErrInvalidTableKind
	}

	return nil
}
