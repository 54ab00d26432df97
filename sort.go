package binsort

import (
	"cmp"
	"slices"
)

// SortByBins partitions items in place into contiguous bins ordered by key
// range and returns the bin table. Within a bin, element order is
// unspecified; callers sort each [Offset, End()) sub-range themselves.
//
// The returned bins partition the whole batch: offsets are increasing,
// regions are non-overlapping, and counts sum to len(items). An empty batch
// returns nil. A batch whose key range or length makes binning non-beneficial
// is returned untouched as a single whole-batch bin.
//
// The type parameter K must be named at the call site; E is inferred:
//
//	bins := binsort.SortByBins[uint64](events)
func SortByBins[K Key, E BinKey[K]](items []E, opts ...Option) []Bin {
	return distribute(items, binKeyOf[K, E], binIndexOf[K, E], newConfig(opts))
}

// SortWithBins sorts items with cmp, accelerated by a distribution pre-sort
// on large batches. Within each bin the sort is stable relative to the
// distributed order; with the default copy-based distribution, which
// preserves arrival order inside every bin, the overall result matches
// slices.SortStableFunc(items, cmp). The in-place variant guarantees only
// grouping by bin plus a stable within-bin sort. Either way, cmp must be
// consistent with how Key() ranks elements, or the result is merely grouped
// by bin rather than the caller's intended total order.
//
// Batches of at most the small-input cutoff (default 16, see
// WithSmallInputCutoff) are sorted directly; binning overhead is not worth it
// for tiny inputs.
func SortWithBins[K Key, E BinKey[K]](items []E, cmp func(a, b E) int, opts ...Option) {
	cfg := newConfig(opts)
	if len(items) <= cfg.smallCutoff {
		slices.SortStableFunc(items, cmp)
		return
	}

	for _, bin := range distribute(items, binKeyOf[K, E], binIndexOf[K, E], cfg) {
		if bin.Count > 1 {
			slices.SortStableFunc(items[bin.Offset:bin.End()], cmp)
		}
	}
}

// SortUnstableWithBins is SortWithBins without the stability guarantee,
// delegating within-bin ordering to slices.SortFunc. It is the faster choice
// when equal-key element order does not matter.
func SortUnstableWithBins[K Key, E BinKey[K]](items []E, cmp func(a, b E) int, opts ...Option) {
	cfg := newConfig(opts)
	if len(items) <= cfg.smallCutoff {
		slices.SortFunc(items, cmp)
		return
	}

	for _, bin := range distribute(items, binKeyOf[K, E], binIndexOf[K, E], cfg) {
		if bin.Count > 1 {
			slices.SortFunc(items[bin.Offset:bin.End()], cmp)
		}
	}
}

// SortKeys sorts a plain scalar slice in ascending order, binning each key by
// its own value. Equivalent to slices.Sort(keys) on the same input.
func SortKeys[K Key](keys []K, opts ...Option) {
	cfg := newConfig(opts)
	if len(keys) <= cfg.smallCutoff {
		slices.Sort(keys)
		return
	}

	identity := func(k K) K { return k }
	index := func(k K, l BinLayout[K]) int { return l.Index(k) }
	for _, bin := range distribute(keys, identity, index, cfg) {
		if bin.Count > 1 {
			slices.Sort(keys[bin.Offset:bin.End()])
		}
	}
}

// Compare is a ready-made comparator ordering elements by key alone. Callers
// with secondary sort criteria supply their own comparator instead.
func Compare[K Key, E BinKey[K]](a, b E) int {
	return cmp.Compare(a.Key(), b.Key())
}

func binKeyOf[K Key, E BinKey[K]](e E) K { return e.Key() }

func binIndexOf[K Key, E BinKey[K]](e E, layout BinLayout[K]) int { return e.Bin(layout) }
