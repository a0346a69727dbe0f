// Package section defines the fixed-size binary sections of a model blob.
//
// A model blob is laid out as:
//
//	+-----------+------------------+------------------+
//	| Header    | Index entries    | Payload          |
//	| 32 bytes  | 24 bytes each    | float64 columns  |
//	+-----------+------------------+------------------+
//
// The header records the magic number, flag (payload byte order and
// compression), table count, section offsets, and an xxHash64 checksum of
// the stored payload. Each index entry describes one table: its 64-bit name
// hash, kind, axis lengths, and byte offset into the decompressed payload.
//
// The header flag's own bytes are always little-endian on disk; the flag
// determines the byte order used for everything after it.
package section
