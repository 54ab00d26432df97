package binsort

// distributeCopy permutes items into bin order using a full clone of the
// batch: every cloned element is written straight to its destination bin's
// next free slot. Trivially correct and branch-light, at the cost of O(n)
// extra memory and double the memory traffic of the in-place variant.
func distributeCopy[K Key, E any](items []E, bin func(E, BinLayout[K]) int, layout BinLayout[K], bins []Bin) {
	clone := make([]E, len(items))
	copy(clone, items)

	for _, e := range clone {
		b := &bins[bin(e, layout)]
		items[b.next()] = e
		b.cursor++
	}
}

// distributeInPlace permutes items into bin order with O(1) extra space
// beyond the bin table, following cycles of displaced elements instead of
// cloning the batch.
//
// Bins are resolved in increasing index order. By the time bin b is reached,
// every earlier bin holds exactly its own elements, so b's region contains
// only elements destined for b or for later bins. Resolution is two passes
// over b's region:
//
//  1. Local pass: swap elements that already belong to b to the front of the
//     region, tracking a write index j. This separates "belongs here" from
//     "belongs elsewhere" but cannot place the strays.
//  2. Cycle chase: for each still-unresolved slot, carry its element toward
//     its true bin. While the carried element belongs to a later bin, claim
//     that bin's next free slot (fetch-and-increment its cursor), swap the
//     carried element with the slot's occupant, and recompute the bin of the
//     newly carried element. The chase ends when the carried element belongs
//     to b; it is stored at the unresolved slot and b's cursor advances.
//
// Each chase step either finalizes an element in its home bin or consumes
// free capacity in a later bin. Cursors only advance and total capacity is n,
// so the permutation terminates after at most n placements.
//
// The carried element changes on every swap, so its bin index must be
// recomputed each iteration; caching it would chase a stale destination.
func distributeInPlace[K Key, E any](items []E, bin func(E, BinLayout[K]) int, layout BinLayout[K], bins []Bin) {
	for b := range bins {
		cur := &bins[b]

		j := cur.Offset
		for i := cur.Offset; i < cur.End(); i++ {
			if bin(items[i], layout) == b {
				items[i], items[j] = items[j], items[i]
				j++
			}
		}
		cur.cursor = j - cur.Offset

		for cur.cursor < cur.Count {
			slot := cur.next()
			carried := items[slot]
			for {
				dest := &bins[bin(carried, layout)]
				if dest == cur {
					break
				}
				if dest.cursor >= dest.Count {
					// Unreachable while keys are stable for the duration of
					// the call; a key that changes mid-sort breaks the
					// capacity accounting.
					panic("binsort: bin capacity exceeded during distribution")
				}
				free := dest.next()
				dest.cursor++
				carried, items[free] = items[free], carried
			}
			items[slot] = carried
			cur.cursor++
		}
	}
}

// distribute scans the key range, derives the layout, builds the bin table,
// and runs the configured distribution variant. It returns a single
// whole-batch bin when the layout deriver signals that binning cannot help.
func distribute[K Key, E any](items []E, key func(E) K, bin func(E, BinLayout[K]) int, cfg config) []Bin {
	if len(items) == 0 {
		return nil
	}

	minKey, maxKey := keyRange(items, key)
	layout, ok := deriveLayout(minKey, maxKey, len(items), cfg)
	if !ok {
		return []Bin{{Offset: 0, Count: len(items), cursor: len(items)}}
	}

	bins := buildTable(items, bin, layout, maxKey)
	if cfg.inPlace {
		distributeInPlace(items, bin, layout, bins)
	} else {
		distributeCopy(items, bin, layout, bins)
	}
	return bins
}
