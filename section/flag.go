package section

import (
	"github.com/openvd/vdkit/endian"
	"github.com/openvd/vdkit/errs"
	"github.com/openvd/vdkit/format"
)

// Flag is the packed 4-byte field at the start of the header: magic number,
// option bits, and compression type.
type Flag struct {
	// Magic is the blob magic number, always MagicNumber.
	Magic uint16
	// Options holds the option bits (currently only payload endianness).
	Options uint8
	// CompressionType is the format.CompressionType applied to the payload.
	CompressionType uint8
}

// NewFlag creates a flag with defaults: little-endian payloads, no
// compression.
func NewFlag() Flag {
	return Flag{
		Magic:           MagicNumber,
		Options:         0,
		CompressionType: uint8(format.CompressionNone),
	}
}

// SetBigEndian selects big-endian payload byte order.
func (f *Flag) SetBigEndian() {
	f.Options |= optBigEndian
}

// SetLittleEndian selects little-endian payload byte order.
func (f *Flag) SetLittleEndian() {
	f.Options &^= optBigEndian
}

// IsBigEndian reports whether payload sections are big-endian.
func (f *Flag) IsBigEndian() bool {
	return f.Options&optBigEndian != 0
}

// GetEndianEngine returns the engine matching the flag's payload byte order.
func (f *Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// SetCompression records the payload compression type.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Compression returns the payload compression type.
func (f *Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// Validate checks the magic number and compression type.
func (f *Flag) Validate() error {
	if f.Magic != MagicNumber {
		return errs.ErrInvalidMagic
	}

	switch f.Compression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return errs.ErrInvalidCompressionType
	}

	return nil
}
