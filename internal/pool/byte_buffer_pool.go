// Package pool provides pooled scratch buffers for model blob encoding and
// decoding. Nothing in this package is used on the lookup hot path.
package pool

import "sync"

// BlobBufferDefaultSize is the default capacity of a ByteBuffer obtained
// from the pool. Model blobs are small (a handful of tables, each a few KiB
// of float64 columns), so a modest default avoids waste.
const BlobBufferDefaultSize = 1024 * 16 // 16KiB

// ByteBuffer is a reusable byte buffer for assembling blob sections.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

var byteBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(BlobBufferDefaultSize)
	},
}

// GetBlobBuffer retrieves a reset ByteBuffer from the pool.
func GetBlobBuffer() *ByteBuffer {
	bb, _ := byteBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBlobBuffer returns a ByteBuffer to the pool.
func PutBlobBuffer(bb *ByteBuffer) {
	byteBufferPool.Put(bb)
}
