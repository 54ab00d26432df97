package binsort

// Stats summarizes the shape of a distribution: how many bins the layout
// produced and how evenly the batch spread across them. Mainly consumed by
// benchmarking and diagnostics tooling.
type Stats struct {
	Bins     int // total bins in the table
	NonEmpty int // bins with at least one element
	Elements int // total elements across all bins

	MinCount int     // smallest non-empty bin
	MaxCount int     // largest bin
	Mean     float64 // average elements per non-empty bin
}

// BinStats computes summary statistics for a bin table returned by
// SortByBins. A nil or empty table yields a zero Stats.
func BinStats(bins []Bin) Stats {
	var s Stats
	s.Bins = len(bins)

	for _, b := range bins {
		if b.Count == 0 {
			continue
		}
		s.NonEmpty++
		s.Elements += b.Count
		if s.MinCount == 0 || b.Count < s.MinCount {
			s.MinCount = b.Count
		}
		if b.Count > s.MaxCount {
			s.MaxCount = b.Count
		}
	}
	if s.NonEmpty > 0 {
		s.Mean = float64(s.Elements) / float64(s.NonEmpty)
	}
	return s
}
