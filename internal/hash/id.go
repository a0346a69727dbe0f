// Package hash provides the 64-bit table name hashing used by model blobs.
package hash

import "github.com/cespare/xxhash/v2"

// TableID computes the xxHash64 of the given table name.
func TableID(name string) uint64 {
	return xxhash.Sum64String(name)
}
