package binsort

import "math/bits"

// Key is the constraint satisfied by bin key types: any fixed-width signed or
// unsigned integer. Signed and unsigned families share one bin-index formula
// because the key-to-offset conversion below uses two's-complement wraparound
// subtraction, which preserves ordering differences for both.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// offset returns the unsigned distance from b up to a, assuming a >= b in the
// key type's own ordering. Conversion of a signed key to uint64 sign-extends,
// so the wraparound subtraction yields the true distance for every Key type.
func offset[K Key](a, b K) uint64 {
	return uint64(a) - uint64(b)
}

// BinLayout maps a key to its bin index: subtract the batch minimum, then
// shift right by the bucket-width exponent. Bucket width is 2^power, so the
// hot path is a subtraction and a shift with no division.
//
// A layout is derived once per distribution call from the batch's observed
// key range and element count, and discarded after the permutation completes.
type BinLayout[K Key] struct {
	minKey K
	power  uint
}

// Index returns the bin index for key. It is monotonically non-decreasing in
// key, and Index(maxKey)+1 equals the bin table size for the batch the layout
// was derived from.
func (l BinLayout[K]) Index(key K) int {
	return int(offset(key, l.minKey) >> l.power)
}

// BinKey is the capability element types implement to participate in a
// distribution pre-sort. Bin is normally layout.Index(e.Key()); it exists as
// a separate method so element types can fold key extraction and bin lookup
// into one step. Elements are otherwise opaque to this package.
type BinKey[K Key] interface {
	// Key returns the orderable scalar this element sorts by.
	Key() K

	// Bin returns the element's bin index under layout.
	Bin(layout BinLayout[K]) int
}

// deriveLayout computes a BinLayout from the batch's observed key range and
// element count. It returns ok=false when binning cannot help: either the
// keys are nearly identical or the batch is too small to amortize the
// counting and prefix-sum passes. That is a policy branch, not a failure;
// the caller treats the whole batch as one bin.
//
// The target bin count is capped three ways, and the shape of the heuristic
// matters more than the constants (which are tunable via options):
//
//   - by delta, the key-range cardinality: never more bins than distinct offsets
//   - by n/occupancy: guarantees average occupancy, amortizing table overhead
//   - by maxBins: bounds table memory so counting stays cache-resident
//
// The bucket width delta/target is rounded up to a power of two via
// bits.Len64, trading a slightly smaller bin count for shift-only indexing.
func deriveLayout[K Key](minKey, maxKey K, n int, cfg config) (BinLayout[K], bool) {
	delta := offset(maxKey, minKey)

	target := delta
	if byCount := uint64(n) / uint64(cfg.occupancy); target > byCount {
		target = byCount
	}
	if maxBins := uint64(cfg.maxBins); target > maxBins {
		target = maxBins
	}
	if target <= 1 {
		return BinLayout[K]{}, false
	}

	scale := delta / target
	return BinLayout[K]{
		minKey: minKey,
		power:  uint(bits.Len64(scale)),
	}, true
}

// keyRange scans the batch once and returns the minimum and maximum keys.
func keyRange[K Key, E any](items []E, key func(E) K) (minKey, maxKey K) {
	minKey = key(items[0])
	maxKey = minKey
	for _, e := range items[1:] {
		k := key(e)
		if k < minKey {
			minKey = k
		}
		if k > maxKey {
			maxKey = k
		}
	}
	return minKey, maxKey
}
