package stack

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/stackkit/internal/format"
)

// FromImage wraps a serialized arena image, taking ownership of data. The
// header is validated structurally (signature, version, checksum, top
// bounds) before the handle goes live; the entry chain is trusted until
// walked, the same trade the in-memory operations make. The returned handle
// has a reference count of 1 and no construction limits.
func FromImage(data []byte) (*Stack, error) {
	if err := format.ValidateImage(data); err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	h, err := format.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	// Trailing bytes beyond the declared capacity are not part of the
	// arena and are dropped from the view.
	return &Stack{
		data: data[:format.HeaderSize+int(h.Capacity)],
		refs: 1,
	}, nil
}

// WriteTo writes the raw arena image to w. The header checksum is always
// current, so the written bytes load back verbatim. Implements
// io.WriterTo.
func (s *Stack) WriteTo(w io.Writer) (int64, error) {
	if !s.IsValid() {
		return 0, fmt.Errorf("write image: %w", ErrInvalid)
	}
	n, err := w.Write(s.data)
	return int64(n), err
}

// SaveImage writes the raw arena image to path.
func (s *Stack) SaveImage(path string) error {
	if !s.IsValid() {
		return fmt.Errorf("save image: %w", ErrInvalid)
	}
	if err := os.WriteFile(path, s.data, 0o644); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	return nil
}

// LoadImage reads an arena image from path into memory. Use Open instead
// to mutate the file in place.
func LoadImage(path string) (*Stack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	return FromImage(data)
}
