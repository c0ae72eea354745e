package stack

import (
	"fmt"
	"io"

	"github.com/joshuapare/stackkit/internal/format"
)

// Entry is one record in the arena, viewed in pop order.
type Entry struct {
	Index   int    // 0 for the top entry
	Offset  int    // offset of the size field within the data region
	Size    int    // payload size in bytes
	Payload []byte // aliases the arena buffer; valid until the next mutation
}

// EntryIterator walks the arena's entries from the top of the stack down to
// the bottom. The iterator reads the live buffer, so interleaving mutations
// with iteration yields undefined entries; take a snapshot first if the
// arena is busy.
type EntryIterator struct {
	s    *Stack
	off  int
	idx  int
	done bool
}

// Entries returns an iterator over the arena's entries, top first. An
// invalid handle yields an already-exhausted iterator, consistent with
// EntryCount reporting 0.
func (s *Stack) Entries() *EntryIterator {
	if !s.IsValid() {
		return &EntryIterator{done: true}
	}
	return &EntryIterator{s: s, off: s.top()}
}

// Next returns the next entry, or io.EOF when the walk is complete. A
// corrupt size field terminates the walk with ErrInternal.
func (it *EntryIterator) Next() (Entry, error) {
	if it.done {
		return Entry{}, io.EOF
	}
	if !it.s.IsValid() {
		it.done = true
		return Entry{}, fmt.Errorf("entries: %w", ErrInvalid)
	}
	if it.off >= it.s.Capacity() {
		it.done = true
		return Entry{}, io.EOF
	}

	e, err := format.ParseEntryAt(it.s.region(), it.off)
	if err != nil {
		it.done = true
		return Entry{}, fmt.Errorf("entries: %v: %w", err, ErrInternal)
	}
	ent := Entry{
		Index:   it.idx,
		Offset:  e.Offset,
		Size:    e.Size,
		Payload: e.Payload,
	}
	it.idx++
	it.off = e.NextOffset()
	return ent, nil
}
