//go:build darwin

package stack

import "golang.org/x/sys/unix"

// msync flushes a memory region to disk.
//
// On macOS, msync() requires the address to match the original mmap()
// address, so the whole region is flushed. The kernel only writes pages
// that are actually dirty.
func msync(data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}

// fdatasync performs file descriptor sync.
//
// On macOS, if fullfsync is true, use F_FULLFSYNC for maximum durability.
// F_FULLFSYNC ensures data is written to the physical disk, not just the
// drive cache. Otherwise, use regular fsync.
func fdatasync(fd int, fullfsync bool) error {
	if fullfsync {
		_, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(fd)
}
