// Package dataset reads and writes binary key files for the bench tooling.
//
// A dataset file is a flat sequence of little-endian uint64 keys with no
// header. Files are memory-mapped read-only, so multi-gigabyte datasets can
// be benchmarked without loading them through the Go heap.
package dataset

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/edsrzf/mmap-go"

	binerrors "github.com/tamirms/binsort/errors"
)

// keyWidth is the encoded size of one key in bytes.
const keyWidth = 8

// Dataset is a read-only memory-mapped key file.
//
// Thread Safety:
// - Len, At, and Keys are safe for concurrent use
// - Close is NOT safe to call concurrently with reads
// - After Close returns, no methods may be called on the Dataset
type Dataset struct {
	mmap mmap.MMap
	data []byte
}

// Open memory-maps the dataset at path. The file size must be a non-zero
// multiple of 8 bytes. The caller must Close the returned Dataset.
func Open(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	// Per POSIX mmap(2), the mapping outlives the descriptor.
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dataset: %w", err)
	}
	if info.Size() == 0 {
		return nil, binerrors.ErrEmptyDataset
	}
	if info.Size()%keyWidth != 0 {
		return nil, fmt.Errorf("%w: %d bytes", binerrors.ErrTruncatedDataset, info.Size())
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap dataset: %w", err)
	}
	adviseSequential(mm)

	return &Dataset{mmap: mm, data: mm}, nil
}

// Len returns the number of keys in the dataset.
func (d *Dataset) Len() int { return len(d.data) / keyWidth }

// At returns the key at index i.
func (d *Dataset) At(i int) uint64 {
	return binary.LittleEndian.Uint64(d.data[i*keyWidth:])
}

// Keys decodes the whole dataset into a fresh slice. The mapped file is not
// touched again once Keys returns, so the caller may Close the dataset.
func (d *Dataset) Keys() []uint64 {
	keys := make([]uint64, d.Len())
	for i := range keys {
		keys[i] = d.At(i)
	}
	return keys
}

// Close unmaps the dataset.
func (d *Dataset) Close() error {
	if d.mmap != nil {
		mm := d.mmap
		d.mmap = nil
		d.data = nil
		return mm.Unmap()
	}
	return nil
}

// Distributions accepted by Generate.
const (
	DistUniform  = "uniform"  // keys drawn uniformly from [0, keyRange)
	DistClusters = "clusters" // keys packed around 16 cluster centers
	DistConstant = "constant" // every key identical; degenerate single bin
)

// Generate writes a dataset of n pseudo-random keys to path, drawn from the
// named distribution over [0, keyRange). The same seed reproduces the same
// file byte for byte.
func Generate(path string, n int, seed uint64, dist string, keyRange uint64) error {
	if n <= 0 {
		return binerrors.ErrEmptyDataset
	}
	if keyRange == 0 {
		keyRange = 1
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	next, err := keyFunc(dist, rng, keyRange)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}

	w := bufio.NewWriter(f)
	buf := make([]byte, keyWidth)
	for range n {
		binary.LittleEndian.PutUint64(buf, next())
		if _, err := w.Write(buf); err != nil {
			f.Close()
			return fmt.Errorf("write dataset: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush dataset: %w", err)
	}
	return f.Close()
}

func keyFunc(dist string, rng *rand.Rand, keyRange uint64) (func() uint64, error) {
	switch dist {
	case DistUniform:
		return func() uint64 { return rng.Uint64N(keyRange) }, nil
	case DistClusters:
		// 16 centers with narrow spread; exercises uneven bin occupancy.
		spread := max(keyRange/256, 1)
		centers := make([]uint64, 16)
		for i := range centers {
			centers[i] = rng.Uint64N(keyRange)
		}
		return func() uint64 {
			c := centers[rng.IntN(len(centers))]
			return c + rng.Uint64N(spread)
		}, nil
	case DistConstant:
		k := rng.Uint64N(keyRange)
		return func() uint64 { return k }, nil
	}
	return nil, fmt.Errorf("%w: %q", binerrors.ErrUnknownDist, dist)
}
