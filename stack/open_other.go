//go:build !linux && !darwin

package stack

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Open loads the image into memory on platforms without the mmap path.
func Open(path string) (*Image, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	sz := st.Size()
	if sz == 0 {
		f.Close()
		return nil, fmt.Errorf("empty image file: %s", path)
	}

	buf := make([]byte, sz)
	if _, err := io.ReadFull(f, buf); err != nil {
		f.Close()
		return nil, err
	}

	s, err := FromImage(buf)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Image{
		f:    f,
		data: buf,
		s:    s,
		path: path,
	}, nil
}

// Sync writes the in-memory image back to the file and flushes it.
func (im *Image) Sync() error {
	if im == nil || im.f == nil {
		return errors.New("stack: cannot sync nil or closed image")
	}
	if _, err := im.f.WriteAt(im.data, 0); err != nil {
		return fmt.Errorf("write back: %w", err)
	}
	return im.f.Sync()
}

// Close detaches the arena handle and closes the file. Unsynced mutations
// to the in-memory buffer are lost.
func (im *Image) Close() error {
	var err error
	if im.s != nil {
		im.s.detach()
		im.s = nil
	}
	im.data = nil
	if im.f != nil {
		err = im.f.Close()
		im.f = nil
	}
	return err
}
