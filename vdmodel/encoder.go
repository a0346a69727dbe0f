package vdmodel

import (
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/openvd/vdkit/compress"
	"github.com/openvd/vdkit/endian"
	"github.com/openvd/vdkit/errs"
	"github.com/openvd/vdkit/format"
	"github.com/openvd/vdkit/internal/collision"
	"github.com/openvd/vdkit/internal/hash"
	"github.com/openvd/vdkit/internal/options"
	"github.com/openvd/vdkit/internal/pool"
	"github.com/openvd/vdkit/lut"
	"github.com/openvd/vdkit/section"
)

// initialIndexCapacity is the initial capacity for the index entry slice.
// Vehicle models typically hold a handful of tables.
const initialIndexCapacity = 16

// Encoder assembles a model blob from lookup tables.
//
// An Encoder is single-use: add tables, then call Finish exactly once.
// Encoders are not safe for concurrent use.
type Encoder struct {
	header  *section.Header
	entries []section.IndexEntry
	tracker *collision.Tracker
	engine  endian.EndianEngine
	payload *pool.ByteBuffer
	done    bool
}

// EncoderOption configures an Encoder at construction time.
type EncoderOption = options.Option[*Encoder]

// WithLittleEndian selects little-endian payload byte order (the default).
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.SetLittleEndian()
	})
}

// WithBigEndian selects big-endian payload byte order, for embedded targets
// that load blobs with their native order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.SetBigEndian()
	})
}

// WithCompression selects the payload compression type.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if _, err := compress.GetCodec(c); err != nil {
			return err
		}
		e.header.Flag.SetCompression(c)

		return nil
	})
}

// NewEncoder creates a model blob encoder.
//
// Defaults: little-endian payloads, no compression.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	enc := &Encoder{
		header:  section.NewHeader(time.Now()),
		entries: make([]section.IndexEntry, 0, initialIndexCapacity),
		tracker: collision.NewTracker(),
		payload: pool.GetBlobBuffer(),
	}

	if err := options.Apply(enc, opts...); err != nil {
		pool.PutBlobBuffer(enc.payload)
		return nil, err
	}

	// The byte order is fixed once options are applied; all payload columns
	// are appended with this engine.
	enc.engine = enc.header.Flag.GetEndianEngine()

	return enc, nil
}

// AddTable1D adds a 1D table under the given name.
//
// Returns errs.ErrTableIDCollision if the name's hash is already taken,
// errs.ErrTooManyTables or errs.ErrAxisTooLong on format limits.
func (e *Encoder) AddTable1D(name string, t *lut.Table1D) error {
	entry := section.IndexEntry{
		TableID: hash.TableID(name),
		Kind:    format.Kind1D,
		NX:      t.XAxis().Len(),
		Offset:  e.payload.Len(),
	}

	if err := e.track(name, &entry); err != nil {
		return err
	}

	e.appendColumn(t.XAxis().Points())
	e.appendColumn(t.Values())
	e.entries = append(e.entries, entry)

	return nil
}

// AddTable2D adds a 2D table under the given name.
func (e *Encoder) AddTable2D(name string, t *lut.Table2D) error {
	entry := section.IndexEntry{
		TableID: hash.TableID(name),
		Kind:    format.Kind2D,
		NX:      t.XAxis().Len(),
		NY:      t.YAxis().Len(),
		Offset:  e.payload.Len(),
	}

	if err := e.track(name, &entry); err != nil {
		return err
	}

	e.appendColumn(t.XAxis().Points())
	e.appendColumn(t.YAxis().Points())
	e.appendColumn(t.Values())
	e.entries = append(e.entries, entry)

	return nil
}

// AddTable3D adds a 3D table under the given name.
func (e *Encoder) AddTable3D(name string, t *lut.Table3D) error {
	entry := section.IndexEntry{
		TableID: hash.TableID(name),
		Kind:    format.Kind3D,
		NX:      t.XAxis().Len(),
		NY:      t.YAxis().Len(),
		NZ:      t.ZAxis().Len(),
		Offset:  e.payload.Len(),
	}

	if err := e.track(name, &entry); err != nil {
		return err
	}

	e.appendColumn(t.XAxis().Points())
	e.appendColumn(t.YAxis().Points())
	e.appendColumn(t.ZAxis().Points())
	e.appendColumn(t.Values())
	e.entries = append(e.entries, entry)

	return nil
}

// track validates format limits and registers the table name hash.
func (e *Encoder) track(name string, entry *section.IndexEntry) error {
	if e.done {
		return fmt.Errorf("encoder already finished")
	}
	if len(e.entries) >= section.MaxTableCount {
		return errs.ErrTooManyTables
	}
	if entry.NX > section.MaxAxisLen || entry.NY > section.MaxAxisLen || entry.NZ > section.MaxAxisLen {
		return fmt.Errorf("table %q: %w", name, errs.ErrAxisTooLong)
	}

	if err := e.tracker.Track(entry.TableID, name); err != nil {
		return fmt.Errorf("table %q: %w", name, err)
	}

	return nil
}

// appendColumn appends a float64 column to the payload in the blob's byte
// order.
func (e *Encoder) appendColumn(values []float64) {
	for _, v := range values {
		e.payload.B = e.engine.AppendUint64(e.payload.B, math.Float64bits(v))
	}
}

// Finish compresses the payload, assembles the final blob, and releases the
// encoder's internal buffers. The encoder must not be used afterwards.
//
// Returns errs.ErrNoTables if no table was added.
func (e *Encoder) Finish() ([]byte, error) {
	if e.done {
		return nil, fmt.Errorf("encoder already finished")
	}
	if len(e.entries) == 0 {
		return nil, errs.ErrNoTables
	}
	e.done = true

	codec, err := compress.GetCodec(e.header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	stored, err := codec.Compress(e.payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("payload compression failed: %w", err)
	}

	e.header.TableCount = uint32(len(e.entries))
	e.header.IndexOffset = section.HeaderSize
	e.header.PayloadOffset = uint32(section.HeaderSize + len(e.entries)*section.IndexEntrySize)
	e.header.PayloadChecksum = xxhash.Sum64(stored)

	out := make([]byte, 0, int(e.header.PayloadOffset)+len(stored))
	out = append(out, e.header.Bytes()...)
	for i := range e.entries {
		out = append(out, e.entries[i].Bytes(e.engine)...)
	}
	out = append(out, stored...)

	// The no-op codec returns the payload buffer itself, so the buffer must
	// not be released before the copy into out above.
	pool.PutBlobBuffer(e.payload)
	e.payload = nil

	return out, nil
}
