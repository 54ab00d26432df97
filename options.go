package binsort

const (
	defaultMaxBins     = 8192
	defaultOccupancy   = 2
	defaultSmallCutoff = 16
)

// Option is a functional option for configuring a sort or distribution call.
type Option func(*config)

type config struct {
	maxBins     int  // hard ceiling on the bin table size
	occupancy   int  // target average elements per bin
	smallCutoff int  // batch lengths at or below this sort directly
	inPlace     bool // true selects the cycle-following distribution variant
}

func newConfig(opts []Option) config {
	cfg := config{
		maxBins:     defaultMaxBins,
		occupancy:   defaultOccupancy,
		smallCutoff: defaultSmallCutoff,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxBins sets the hard ceiling on the bin table size. The default of
// 8192 keeps the table cache-resident during the counting pass regardless of
// batch length or key spread. Values below 1 are treated as 1, which
// disables binning entirely.
func WithMaxBins(n int) Option {
	return func(c *config) {
		c.maxBins = max(n, 1)
	}
}

// WithTargetOccupancy sets the minimum average number of elements per bin.
// The bin count is capped at len(items)/n so that the counting and
// prefix-sum overhead is amortized over at least n elements per bin on
// average. Default 2. Values below 1 are treated as 1.
func WithTargetOccupancy(n int) Option {
	return func(c *config) {
		c.occupancy = max(n, 1)
	}
}

// WithSmallInputCutoff sets the batch length at or below which SortWithBins
// and SortUnstableWithBins skip distribution and sort directly. Default 16.
// A cutoff of 0 forces distribution on every non-empty batch, which is
// mainly useful for testing.
func WithSmallInputCutoff(n int) Option {
	return func(c *config) {
		c.smallCutoff = max(n, 0)
	}
}

// WithInPlaceDistribution selects the cycle-following distribution variant,
// which permutes the batch with O(1) extra space beyond the bin table
// instead of cloning it. Prefer it when memory pressure or cache traffic
// matters; the default copy-based variant is simpler and usually faster on
// batches that fit comfortably in memory.
func WithInPlaceDistribution() Option {
	return func(c *config) {
		c.inPlace = true
	}
}
