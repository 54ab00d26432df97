//go:build !linux

package dataset

// adviseSequential is a no-op on non-Linux platforms.
// MADV_SEQUENTIAL semantics vary too much to rely on elsewhere.
func adviseSequential(data []byte) {
	// No-op
}
