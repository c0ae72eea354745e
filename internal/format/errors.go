package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrVersion indicates the image was written by an unsupported format version.
	ErrVersion = errors.New("format: unsupported version")
	// ErrCorrupt indicates a structurally invalid field (bad checksum, offset out
	// of range, entry chain not terminating at the region end).
	ErrCorrupt = errors.New("format: corrupt image")
)
