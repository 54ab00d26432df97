package binsort

// Bin describes one contiguous region of the batch after distribution. All
// elements whose key falls in the bin's power-of-two-wide interval occupy
// [Offset, Offset+Count), and bins are listed in increasing key-range order.
type Bin struct {
	// Offset is the start of this bin's region in the batch.
	Offset int

	// Count is the number of elements assigned to this bin.
	Count int

	// cursor is the relative write index into the region, 0 <= cursor <=
	// Count. It only ever advances; once it reaches Count the bin is fully
	// placed.
	cursor int
}

// End returns the index one past the bin's region.
func (b Bin) End() int { return b.Offset + b.Count }

// next returns the absolute index of the bin's next free slot.
func (b Bin) next() int { return b.Offset + b.cursor }

// buildTable constructs the bin table for a batch under layout: a counting
// pass over the elements, then a prefix-sum pass assigning offsets. The table
// is sized layout.Index(maxKey)+1 and owned by a single distribution call.
//
// Counting is random access into the table, which is why the layout caps the
// bin count: the table must stay cache-resident for the pass to be cheap.
func buildTable[K Key, E any](items []E, bin func(E, BinLayout[K]) int, layout BinLayout[K], maxKey K) []Bin {
	bins := make([]Bin, layout.Index(maxKey)+1)

	for _, e := range items {
		bins[bin(e, layout)].Count++
	}

	total := 0
	for i := range bins {
		bins[i].Offset = total
		total += bins[i].Count
	}
	return bins
}
