//go:build linux || darwin

package stack

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// Open mmaps the image file RW so we can mutate in place.
func Open(path string) (*Image, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	sz := st.Size()
	if sz == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("empty image file: %s", path)
	}

	data, err := syscall.Mmap(
		int(f.Fd()),
		0,
		int(sz),
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_SHARED,
	)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}

	s, err := FromImage(data)
	if err != nil {
		_ = syscall.Munmap(data)
		_ = f.Close()
		return nil, err
	}

	return &Image{
		f:    f,
		data: data,
		s:    s,
		path: path,
	}, nil
}

// Sync flushes the mapping to disk. The header checksum is refreshed on
// every mutation, so the on-disk image is loadable after a successful
// Sync.
func (im *Image) Sync() error {
	if im == nil || im.f == nil {
		return errors.New("stack: cannot sync nil or closed image")
	}
	if err := msync(im.data); err != nil {
		return fmt.Errorf("msync: %w", err)
	}
	return fdatasync(int(im.f.Fd()), false)
}

// Close detaches the arena handle, unmaps the buffer, and closes the file.
// The file keeps its contents; call Sync first to guarantee they reached
// disk.
func (im *Image) Close() error {
	var err error
	if im.s != nil {
		im.s.detach()
		im.s = nil
	}
	if im.data != nil {
		_ = syscall.Munmap(im.data)
		im.data = nil
	}
	if im.f != nil {
		err = im.f.Close()
		im.f = nil
	}
	return err
}
