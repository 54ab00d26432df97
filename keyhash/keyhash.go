// Package keyhash derives uint64 sort keys from arbitrary byte strings.
//
// The binsort distribution pre-sort requires integer keys. When the natural
// key is a string, URL, or other byte sequence, hashing it yields a uniform
// integer key: the resulting order groups equal byte keys together (useful
// for grouping and deduplication passes) rather than preserving
// lexicographic order.
//
//	key := keyhash.Sum(keyhash.XXH3, []byte(record.ID))
//
// All algorithms are deterministic across processes for the same input.
package keyhash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	binerrors "github.com/tamirms/binsort/errors"
)

// Algorithm identifies a key derivation hash.
type Algorithm uint8

const (
	// XXH3 is xxHash3-64, the default. Fastest on short keys.
	XXH3 Algorithm = iota

	// XXH64 is the classic xxHash64.
	XXH64

	// Murmur3 is MurmurHash3's 64-bit finalization of the x64-128 variant.
	Murmur3
)

// String returns the algorithm name as accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case XXH3:
		return "xxh3"
	case XXH64:
		return "xxh64"
	case Murmur3:
		return "murmur3"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a name to an Algorithm. It accepts the values produced
// by String. Unknown names return ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "xxh3":
		return XXH3, nil
	case "xxh64":
		return XXH64, nil
	case "murmur3":
		return Murmur3, nil
	}
	return 0, fmt.Errorf("%w: %q", binerrors.ErrUnknownAlgorithm, name)
}

// Sum returns the 64-bit digest of data under algo. An unrecognized algo
// falls back to XXH3.
func Sum(algo Algorithm, data []byte) uint64 {
	switch algo {
	case XXH64:
		return xxhash.Sum64(data)
	case Murmur3:
		return murmur3.Sum64(data)
	default:
		return xxh3.Hash(data)
	}
}

// SumString is Sum over a string without forcing a []byte conversion at the
// call site.
func SumString(algo Algorithm, data string) uint64 {
	switch algo {
	case XXH64:
		return xxhash.Sum64String(data)
	case Murmur3:
		return murmur3.Sum64([]byte(data))
	default:
		return xxh3.HashString(data)
	}
}
