package vdmodel

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/openvd/vdkit/compress"
	"github.com/openvd/vdkit/endian"
	"github.com/openvd/vdkit/errs"
	"github.com/openvd/vdkit/format"
	"github.com/openvd/vdkit/internal/pool"
	"github.com/openvd/vdkit/lut"
	"github.com/openvd/vdkit/section"
)

// Decode parses a model blob and materializes all of its lookup tables.
//
// The blob is validated in stages: header magic and flag, section bounds,
// payload checksum, and finally full per-table validation through the lut
// constructors. Any failure aborts the decode; a malformed table is never
// handed to callers.
func Decode(data []byte) (*Blob, error) {
	var header section.Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	engine := header.Flag.GetEndianEngine()
	count := int(header.TableCount)
	if count == 0 {
		return nil, errs.ErrNoTables
	}

	indexStart := int(header.IndexOffset)
	indexEnd := indexStart + count*section.IndexEntrySize
	payloadStart := int(header.PayloadOffset)
	if indexStart < section.HeaderSize || indexEnd > len(data) || payloadStart < indexEnd {
		return nil, errs.ErrInvalidIndexSize
	}
	if payloadStart > len(data) {
		return nil, errs.ErrTruncatedPayload
	}

	stored := data[payloadStart:]
	if xxhash.Sum64(stored) != header.PayloadChecksum {
		return nil, errs.ErrChecksumMismatch
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("payload decompression failed: %w", err)
	}

	blob := &Blob{
		createdAt: header.CreatedAtTime(),
		tables:    make(map[uint64]blobTable, count),
		ids:       make([]uint64, 0, count),
	}

	for i := 0; i < count; i++ {
		var entry section.IndexEntry
		entryData := data[indexStart+i*section.IndexEntrySize : indexStart+(i+1)*section.IndexEntrySize]
		if err := entry.Parse(entryData, engine); err != nil {
			return nil, fmt.Errorf("index entry %d: %w", i, err)
		}

		if _, dup := blob.tables[entry.TableID]; dup {
			return nil, fmt.Errorf("index entry %d: %w", i, errs.ErrTableIDCollision)
		}

		table, err := materializeTable(payload, &entry, engine)
		if err != nil {
			return nil, fmt.Errorf("table %#016x: %w", entry.TableID, err)
		}

		blob.tables[entry.TableID] = table
		blob.ids = append(blob.ids, entry.TableID)
	}

	return blob, nil
}

// materializeTable reads one table's columns from the decompressed payload
// and builds the corresponding lut table, re-running construction
// validation.
func materializeTable(payload []byte, entry *section.IndexEntry, engine endian.EndianEngine) (blobTable, error) {
	// The entry's dimensions and offset come straight from the blob, so they
	// must be proven to fit inside the decompressed payload before they size
	// any allocation.
	size := entry.PayloadSize()
	if entry.Offset < 0 || size <= 0 || size > len(payload) || entry.Offset > len(payload)-size {
		return blobTable{}, errs.ErrTruncatedPayload
	}

	scratch, release := pool.GetFloat64Slice(size / 8)
	defer release()

	if err := readColumn(payload, entry.Offset, scratch, engine); err != nil {
		return blobTable{}, err
	}

	// The lut constructors copy their inputs, so the pooled scratch slice
	// can be sub-sliced in place.
	switch entry.Kind {
	case format.Kind1D:
		nx := entry.NX
		t, err := lut.New1D(scratch[:nx], scratch[nx:nx+nx])
		if err != nil {
			return blobTable{}, err
		}

		return blobTable{kind: format.Kind1D, t1: t}, nil

	case format.Kind2D:
		nx, ny := entry.NX, entry.NY
		t, err := lut.New2D(
			scratch[:nx],
			scratch[nx:nx+ny],
			scratch[nx+ny:nx+ny+nx*ny],
		)
		if err != nil {
			return blobTable{}, err
		}

		return blobTable{kind: format.Kind2D, t2: t}, nil

	case format.Kind3D:
		nx, ny, nz := entry.NX, entry.NY, entry.NZ
		t, err := lut.New3D(
			scratch[:nx],
			scratch[nx:nx+ny],
			scratch[nx+ny:nx+ny+nz],
			scratch[nx+ny+nz:nx+ny+nz+nx*ny*nz],
		)
		if err != nil {
			return blobTable{}, err
		}

		return blobTable{kind: format.Kind3D, t3: t}, nil

	default:
		return blobTable{}, errs.ErrInvalidTableKind
	}
}

// readColumn decodes len(dst) float64 values starting at byte offset off.
func readColumn(payload []byte, off int, dst []float64, engine endian.EndianEngine) error {
	end := off + 8*len(dst)
	if off < 0 || end > len(payload) {
		return errs.ErrTruncatedPayload
	}

	for i := range dst {
		dst[i] = math.Float64frombits(engine.Uint64(payload[off+8*i : off+8*i+8]))
	}

	return nil
}
