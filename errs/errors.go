// Package errs defines the sentinel errors shared across vdkit packages.
//
// All errors are construction-time or decode-time failures: once a lookup
// table is built, its query path has no error category at all. Callers are
// expected to classify errors with errors.Is; wrapping packages add
// positional context (axis name, breakpoint index, table name) via
// fmt.Errorf with %w.
package errs

import "errors"

// Lookup table construction errors.
var (
	// ErrInvalidAxis is the umbrella category for any rejected axis.
	// The specific axis errors below all match it under errors.Is.
	ErrInvalidAxis = errors.New("invalid axis")

	// ErrAxisTooShort indicates an axis with fewer than 2 breakpoints.
	ErrAxisTooShort = wrap("fewer than 2 breakpoints", ErrInvalidAxis)

	// ErrNonMonotonicAxis indicates breakpoints that are not strictly increasing.
	ErrNonMonotonicAxis = wrap("breakpoints not strictly increasing", ErrInvalidAxis)

	// ErrNonFiniteBreakpoint indicates a NaN or infinite breakpoint.
	ErrNonFiniteBreakpoint = wrap("non-finite breakpoint", ErrInvalidAxis)

	// ErrLengthMismatch indicates a 1D value sequence whose length does not
	// match its axis length.
	ErrLengthMismatch = errors.New("value length does not match axis length")

	// ErrGridSizeMismatch indicates a 2D/3D grid whose size does not match
	// the product of its axis lengths.
	ErrGridSizeMismatch = errors.New("grid size does not match axis length product")

	// ErrNonFiniteValue indicates a NaN or infinite dependent value.
	ErrNonFiniteValue = errors.New("non-finite table value")
)

// Model blob encoding errors.
var (
	// ErrNoTables indicates an attempt to finish an empty model blob.
	ErrNoTables = errors.New("model blob contains no tables")

	// ErrTableIDCollision indicates two table names hashing to the same 64-bit ID.
	ErrTableIDCollision = errors.New("table ID collision detected")

	// ErrTooManyTables indicates the blob table count limit was exceeded.
	ErrTooManyTables = errors.New("too many tables for a single blob")

	// ErrAxisTooLong indicates an axis too long for the on-disk uint16 length field.
	ErrAxisTooLong = errors.New("axis exceeds maximum encodable length")
)

// Model blob decoding errors.
var (
	// ErrInvalidMagic indicates data that does not start with the model blob magic number.
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrInvalidHeaderSize indicates a truncated header section.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidCompressionType indicates an unknown compression type in the header flag.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrInvalidTableKind indicates an unknown table kind in an index entry.
	ErrInvalidTableKind = errors.New("invalid table kind")

	// ErrInvalidIndexSize indicates a truncated or misaligned index section.
	ErrInvalidIndexSize = errors.New("invalid index section size")

	// ErrChecksumMismatch indicates a payload whose xxHash64 checksum does not
	// match the header, i.e. the blob is corrupted.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrTruncatedPayload indicates an index entry pointing past the end of
	// the decompressed payload.
	ErrTruncatedPayload = errors.New("payload truncated")

	// ErrTableNotFound indicates a lookup for a table ID not present in the blob.
	ErrTableNotFound = errors.New("table not found in blob")

	// ErrTableKindMismatch indicates typed access with the wrong dimensionality,
	// e.g. requesting a 2D table stored as 3D.
	ErrTableKindMismatch = errors.New("table kind mismatch")
)

// wrap builds a sentinel that matches both its own identity and the given
// category under errors.Is.
func wrap(msg string, category error) error {
	return &categorized{msg: msg, category: category}
}

type categorized struct {
	msg      string
	category error
}

func (e *categorized) Error() string {
	return e.category.Error() + ": " + e.msg
}

func (e *categorized) Unwrap() error {
	return e.category
}
