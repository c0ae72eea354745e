package format

import (
	"fmt"

	"github.com/joshuapare/stackkit/internal/buf"
)

// Entry represents a single size-prefixed record within the data region.
//
// Entry layout (little-endian):
//
//	Offset  Size  Description
//	0x00    4     Payload size in bytes. Zero is legal (empty payload).
//	0x04    ...   Payload bytes.
//
// Entries are tightly packed with no alignment padding. Because entries grow
// downward from the end of the region, the record pushed before e begins at
// e.Offset + EntryHeaderSize + e.Size.
type Entry struct {
	Offset  int    // Offset of the size field relative to the start of the data region
	Size    int    // Payload size in bytes
	Payload []byte // Payload bytes (alias of underlying buffer)
}

// ParseEntryAt decodes the entry whose size field begins at off within the
// data region. The caller must ensure off points at a size field.
func ParseEntryAt(region []byte, off int) (Entry, error) {
	if off < 0 || off+EntryHeaderSize > len(region) {
		return Entry{}, fmt.Errorf("entry: %w", ErrTruncated)
	}
	size := int(buf.U32LE(region[off:]))
	end, err := buf.CheckRecordBounds(len(region), off, EntryHeaderSize, size)
	if err != nil {
		return Entry{}, fmt.Errorf("entry at 0x%X: %v: %w", off, err, ErrCorrupt)
	}
	return Entry{
		Offset:  off,
		Size:    size,
		Payload: region[off+EntryHeaderSize : end],
	}, nil
}

// WriteEntryAt encodes a record with the given payload so that its size field
// begins at off. The record must fit within the region.
func WriteEntryAt(region []byte, off int, payload []byte) error {
	if _, err := buf.CheckRecordBounds(len(region), off, EntryHeaderSize, len(payload)); err != nil {
		return fmt.Errorf("entry at 0x%X: %v: %w", off, err, ErrTruncated)
	}
	PutU32(region, off, uint32(len(payload)))
	copy(region[off+EntryHeaderSize:], payload)
	return nil
}

// NextOffset returns the offset of the record pushed before e, which is the
// next record visited when popping.
func (e Entry) NextOffset() int {
	return e.Offset + EntryHeaderSize + e.Size
}

// TotalSize returns the record footprint in bytes, including the size field.
func (e Entry) TotalSize() int {
	return EntryHeaderSize + e.Size
}
