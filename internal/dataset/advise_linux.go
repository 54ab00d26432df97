//go:build linux

package dataset

import "golang.org/x/sys/unix"

// adviseSequential hints to the kernel that the mapping will be read
// sequentially. Best-effort: errors are silently ignored.
func adviseSequential(data []byte) {
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
