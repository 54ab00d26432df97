// Package binsort implements a key-based distribution pre-sort for slices of
// integer-keyed elements.
//
// A distribution pre-sort partitions a slice in place into contiguous bins
// ordered by key range, then fully orders each bin independently with a
// caller-supplied comparator. One linear distribution pass shrinks the
// effective n that the O(n log n) comparison sort sees, which cuts total
// comparisons substantially on large batches.
//
// # Basic Usage
//
// Sorting elements that implement the BinKey capability:
//
//	type Event struct {
//	    Timestamp uint64
//	    Payload   string
//	}
//
//	func (e Event) Key() uint64                          { return e.Timestamp }
//	func (e Event) Bin(l binsort.BinLayout[uint64]) int  { return l.Index(e.Timestamp) }
//
//	binsort.SortWithBins[uint64](events, func(a, b Event) int {
//	    return cmp.Compare(a.Timestamp, b.Timestamp)
//	})
//
// Distribution only, sorting each bin yourself:
//
//	bins := binsort.SortByBins[uint64](events)
//	for _, bin := range bins {
//	    slices.SortFunc(events[bin.Offset:bin.End()], cmpEvents)
//	}
//
// Plain scalar slices:
//
//	binsort.SortKeys(timestamps)
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: sort.go (SortByBins, SortWithBins, SortUnstableWithBins, SortKeys)
//   - Layout derivation: layout.go (Key constraint, BinLayout, BinKey)
//   - Bin table: table.go (Bin, counting and prefix-sum passes)
//   - Distribution: distribute.go (copy-based and cycle-following in-place variants)
//   - Configuration: options.go (Option, With* functions)
//   - Reporting: stats.go (Stats, BinStats)
//   - Key derivation for non-integer keys: keyhash/ (xxh3, xxhash64, murmur3)
//   - Bench tooling: cmd/binsort-bench/, internal/dataset/
package binsort
