package binsort

import (
	"cmp"
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// pair is the test element: a key plus secondary data carried alongside.
type pair struct {
	key int32
	tag int
}

func (p pair) Key() int32                 { return p.key }
func (p pair) Bin(l BinLayout[int32]) int { return l.Index(p.key) }

func comparePairs(a, b pair) int {
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c
	}
	return cmp.Compare(a.tag, b.tag)
}

func comparePairKeys(a, b pair) int {
	return cmp.Compare(a.key, b.key)
}

// pairsFromKeys builds pairs whose tags record original positions.
func pairsFromKeys(keys []int32) []pair {
	pairs := make([]pair, len(keys))
	for i, k := range keys {
		pairs[i] = pair{key: k, tag: i}
	}
	return pairs
}

// randomPairs generates n pairs with keys bounded by span.
func randomPairs(rng *rand.Rand, n int, span int32) []pair {
	pairs := make([]pair, n)
	for i := range pairs {
		pairs[i] = pair{key: rng.Int32N(span), tag: i}
	}
	return pairs
}

// multiset counts occurrences of each element.
func multiset(pairs []pair) map[pair]int {
	m := make(map[pair]int, len(pairs))
	for _, p := range pairs {
		m[p]++
	}
	return m
}

func equalMultisets(a, b map[pair]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, n := range a {
		if b[k] != n {
			return false
		}
	}
	return true
}

// verifyPartition checks the bin-table invariants after a distribution:
// bins tile [0, n) contiguously and every element lies inside the region of
// the bin its key maps to. opts must match the options the distribution ran
// with so the layout can be recomputed.
func verifyPartition(t *testing.T, pairs []pair, bins []Bin, opts ...Option) {
	t.Helper()

	if len(pairs) == 0 {
		if len(bins) != 0 {
			t.Fatalf("expected no bins for empty input, got %d", len(bins))
		}
		return
	}

	next := 0
	for i, b := range bins {
		if b.Offset != next {
			t.Fatalf("bin %d: offset %d, want %d (bins must tile the batch)", i, b.Offset, next)
		}
		if b.Count < 0 {
			t.Fatalf("bin %d: negative count %d", i, b.Count)
		}
		next = b.End()
	}
	if next != len(pairs) {
		t.Fatalf("bins cover [0, %d), want [0, %d)", next, len(pairs))
	}

	// Recompute the layout the same way the distribution did and confirm
	// each element landed in its own bin's region.
	minKey, maxKey := keyRange(pairs, func(p pair) int32 { return p.key })
	layout, ok := deriveLayout(minKey, maxKey, len(pairs), newConfig(opts))
	if !ok {
		if len(bins) != 1 || bins[0].Count != len(pairs) {
			t.Fatalf("degenerate layout must yield one whole-batch bin, got %+v", bins)
		}
		return
	}
	if got := layout.Index(maxKey) + 1; got != len(bins) {
		t.Fatalf("bin table size %d, want Index(maxKey)+1 = %d", len(bins), got)
	}
	for i, b := range bins {
		for j := b.Offset; j < b.End(); j++ {
			if idx := pairs[j].Bin(layout); idx != i {
				t.Fatalf("element at %d has bin %d but lies in bin %d's region", j, idx, i)
			}
		}
	}
}
