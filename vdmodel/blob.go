package vdmodel

import (
	"fmt"
	"time"

	"github.com/openvd/vdkit/errs"
	"github.com/openvd/vdkit/format"
	"github.com/openvd/vdkit/internal/hash"
	"github.com/openvd/vdkit/lut"
)

// TableID computes the 64-bit identifier a table name is stored under.
func TableID(name string) uint64 {
	return hash.TableID(name)
}

// blobTable holds one decoded table; exactly one of t1/t2/t3 is set,
// matching kind.
type blobTable struct {
	kind format.TableKind
	t1   *lut.Table1D
	t2   *lut.Table2D
	t3   *lut.Table3D
}

// Blob is a decoded model blob: an immutable set of lookup tables keyed by
// name hash. Safe for concurrent use.
type Blob struct {
	createdAt time.Time
	tables    map[uint64]blobTable
	ids       []uint64
}

// Len returns the number of tables in the blob.
func (b *Blob) Len() int {
	return len(b.tables)
}

// TableIDs returns the blob's table IDs in stored order.
func (b *Blob) TableIDs() []uint64 {
	ids := make([]uint64, len(b.ids))
	copy(ids, b.ids)

	return ids
}

// CreatedAt returns the blob's creation timestamp.
func (b *Blob) CreatedAt() time.Time {
	return b.createdAt
}

// Kind returns the dimensionality of the named table, or false if absent.
func (b *Blob) Kind(name string) (format.TableKind, bool) {
	t, ok := b.tables[TableID(name)]

	return t.kind, ok
}

// Table1D returns the named 1D table.
//
// Returns errs.ErrTableNotFound if no table has the name's hash, or
// errs.ErrTableKindMismatch if the stored table is not 1D.
func (b *Blob) Table1D(name string) (*lut.Table1D, error) {
	return b.Table1DByID(TableID(name))
}

// Table1DByID returns the 1D table with the given ID.
func (b *Blob) Table1DByID(id uint64) (*lut.Table1D, error) {
	t, ok := b.tables[id]
	if !ok {
		return nil, errs.ErrTableNotFound
	}
	if t.kind != format.Kind1D {
		return nil, fmt.Errorf("stored as %s: %w", t.kind, errs.ErrTableKindMismatch)
	}

	return t.t1, nil
}

// Table2D returns the named 2D table.
func (b *Blob) Table2D(name string) (*lut.Table2D, error) {
	return b.Table2DByID(TableID(name))
}

// Table2DByID returns the 2D table with the given ID.
func (b *Blob) Table2DByID(id uint64) (*lut.Table2D, error) {
	t, ok := b.tables[id]
	if !ok {
		return nil, errs.ErrTableNotFound
	}
	if t.kind != format.Kind2D {
		return nil, fmt.Errorf("stored as %s: %w", t.kind, errs.ErrTableKindMismatch)
	}

	return t.t2, nil
}

// Table3D returns the named 3D table.
func (b *Blob) Table3D(name string) (*lut.Table3D, error) {
	return b.Table3DByID(TableID(name))
}

// Table3DByID returns the 3D table with the given ID.
func (b *Blob) Table3DByID(id uint64) (*lut.Table3D, error) {
	t, ok := b.tables[id]
	if !ok {
		return nil, errs.ErrTableNotFound
	}
	if t.kind != format.Kind3D {
		return nil, fmt.Errorf("stored as %s: %w", t.kind, errs.ErrTableKindMismatch)
	}

	return t.t3, nil
}
