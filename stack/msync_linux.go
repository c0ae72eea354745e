//go:build linux

package stack

import "golang.org/x/sys/unix"

// msync flushes a memory region to disk.
func msync(data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}

// fdatasync performs file descriptor sync.
//
// On Linux, fdatasync() provides sufficient guarantees. The fullfsync
// parameter is ignored.
func fdatasync(fd int, _ bool) error {
	return unix.Fdatasync(fd)
}
