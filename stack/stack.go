package stack

import (
	"fmt"

	"github.com/joshuapare/stackkit/internal/format"
)

// Stack is a bounded LIFO arena. The zero value is an invalid handle; use
// New, NewWithConfig, or one of the image loaders to obtain a live one.
//
// A Stack is not safe for concurrent use. Wrap it in a SafeStack to share
// it across goroutines.
type Stack struct {
	// data holds the header followed by the data region. All persistent
	// bookkeeping lives inside it; nil marks a destroyed handle.
	data  []byte
	refs  uint32
	cfg   Config
	stats Stats
}

// New allocates an arena with the given data-region capacity in bytes. A
// capacity of 0 selects DefaultCapacity. The returned handle has a
// reference count of 1.
func New(capacity int) (*Stack, error) {
	return NewWithConfig(Config{Capacity: capacity})
}

// NewWithConfig allocates an arena with explicit construction limits.
// Failures report ErrOutOfMemory.
func NewWithConfig(cfg Config) (*Stack, error) {
	resolved, capacity, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	data := make([]byte, format.HeaderSize+capacity)
	if err := format.WriteHeader(data, format.Header{
		Version:  format.Version,
		Capacity: uint32(capacity),
		Top:      uint32(capacity),
	}); err != nil {
		return nil, fmt.Errorf("alloc: %v: %w", err, ErrOutOfMemory)
	}
	return &Stack{data: data, refs: 1, cfg: resolved}, nil
}

// IsValid reports whether s is a live, correctly stamped arena. Every other
// operation checks this first; nil and destroyed handles are never
// dereferenced further.
func (s *Stack) IsValid() bool {
	if s == nil || len(s.data) < format.HeaderSize {
		return false
	}
	if !format.HasSignature(s.data) {
		return false
	}
	return format.ReadU32(s.data, format.VersionOffset) == format.Version
}

// Capacity returns the data-region size in bytes, or 0 for an invalid
// handle.
func (s *Stack) Capacity() int {
	if !s.IsValid() {
		return 0
	}
	return int(format.ReadU32(s.data, format.CapacityOffset))
}

// FreeSize returns the number of unused data-region bytes, or 0 for an
// invalid handle. Free space is exactly the region below the top entry, so
// a push of n bytes succeeds iff n+4 <= FreeSize().
func (s *Stack) FreeSize() int {
	if !s.IsValid() {
		return 0
	}
	return s.top()
}

// UsedSize returns the number of occupied data-region bytes, including the
// per-entry size fields. 0 for an invalid handle.
func (s *Stack) UsedSize() int {
	if !s.IsValid() {
		return 0
	}
	return s.Capacity() - s.top()
}

// EntryCount returns the number of live entries. Invalid handles count as
// empty rather than failing, since the count commonly feeds loop bounds.
func (s *Stack) EntryCount() int {
	if !s.IsValid() {
		return 0
	}
	return int(format.ReadU32(s.data, format.EntryCountOffset))
}

// IsEmpty reports whether the arena holds no entries. True for invalid
// handles.
func (s *Stack) IsEmpty() bool {
	return s.EntryCount() == 0
}

// Version returns the image format version, or 0 for an invalid handle.
func (s *Stack) Version() int {
	if !s.IsValid() {
		return 0
	}
	return int(format.ReadU32(s.data, format.VersionOffset))
}

// Bytes returns the arena's raw image (header plus data region), aliasing
// the live buffer. Callers must not mutate it. Nil for an invalid handle.
func (s *Stack) Bytes() []byte {
	if !s.IsValid() {
		return nil
	}
	return s.data
}

// region returns the data region following the header.
func (s *Stack) region() []byte {
	return s.data[format.HeaderSize:]
}

// top returns the top-entry offset without a validity check.
func (s *Stack) top() int {
	return int(format.ReadU32(s.data, format.TopOffset))
}

// commit stores the new top offset and entry count, then refreshes the
// header checksum. Push and pop mutate bookkeeping only here, which keeps
// failure paths free of partial writes.
func (s *Stack) commit(top, count int) {
	format.PutU32(s.data, format.TopOffset, uint32(top))
	format.PutU32(s.data, format.EntryCountOffset, uint32(count))
	format.PutU32(s.data, format.ChecksumOffset, format.HeaderChecksum(s.data))
}

// Push copies payload onto the top of the stack. Nil and empty payloads are
// both legal and store a bare size field. The arena is unchanged on every
// failure path.
func (s *Stack) Push(payload []byte) error {
	if !s.IsValid() {
		return fmt.Errorf("push: %w", ErrInvalid)
	}
	n := len(payload)
	if s.cfg.MaxEntrySize > 0 && n > s.cfg.MaxEntrySize {
		s.stats.Failures++
		return fmt.Errorf("push: payload %d bytes exceeds entry limit %d: %w",
			n, s.cfg.MaxEntrySize, ErrInvalid)
	}
	count := s.EntryCount()
	if s.cfg.MaxEntries > 0 && count >= s.cfg.MaxEntries {
		s.stats.Failures++
		return fmt.Errorf("push: entry limit %d reached: %w", s.cfg.MaxEntries, ErrFull)
	}
	top := s.top()
	need := format.EntryHeaderSize + n
	if need > top {
		s.stats.Failures++
		return fmt.Errorf("push: need %d bytes, %d free: %w", need, top, ErrFull)
	}

	newTop := top - need
	if err := format.WriteEntryAt(s.region(), newTop, payload); err != nil {
		s.stats.Failures++
		return fmt.Errorf("push: %v: %w", err, ErrInternal)
	}
	s.commit(newTop, count+1)

	s.stats.Pushes++
	if count+1 > s.stats.PeakCount {
		s.stats.PeakCount = count + 1
	}
	if used := s.Capacity() - newTop; used > s.stats.PeakUsed {
		s.stats.PeakUsed = used
	}
	return nil
}

// copyTop locates the top entry and copies its payload into out. A nil out
// skips the copy so callers can probe the size. The parsed entry is
// returned so Pop can advance past it.
func (s *Stack) copyTop(out []byte) (format.Entry, error) {
	if s.EntryCount() == 0 {
		return format.Entry{}, ErrEmpty
	}
	e, err := format.ParseEntryAt(s.region(), s.top())
	if err != nil {
		return format.Entry{}, fmt.Errorf("%v: %w", err, ErrInternal)
	}
	if out != nil {
		if len(out) < e.Size {
			return format.Entry{}, fmt.Errorf("top entry is %d bytes, buffer holds %d: %w",
				e.Size, len(out), ErrBufferOverflow)
		}
		copy(out, e.Payload)
	}
	return e, nil
}

// Pop removes the top entry and copies its payload into out. The returned
// size is the payload size whether or not a copy occurred: a nil out pops
// the entry and discards the bytes, which doubles as a size probe. When out
// is non-nil but too small the entry stays in place and ErrBufferOverflow
// is returned.
func (s *Stack) Pop(out []byte) (int, error) {
	if !s.IsValid() {
		return 0, fmt.Errorf("pop: %w", ErrInvalid)
	}
	e, err := s.copyTop(out)
	if err != nil {
		s.stats.Failures++
		return 0, fmt.Errorf("pop: %w", err)
	}
	s.commit(e.NextOffset(), s.EntryCount()-1)
	s.stats.Pops++
	return e.Size, nil
}

// Peek copies the top entry's payload into out without removing it. Size
// and error semantics match Pop.
func (s *Stack) Peek(out []byte) (int, error) {
	if !s.IsValid() {
		return 0, fmt.Errorf("peek: %w", ErrInvalid)
	}
	e, err := s.copyTop(out)
	if err != nil {
		s.stats.Failures++
		return 0, fmt.Errorf("peek: %w", err)
	}
	s.stats.Peeks++
	return e.Size, nil
}

// PopBytes removes the top entry and returns its payload in a fresh slice.
func (s *Stack) PopBytes() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("pop: %w", ErrInvalid)
	}
	e, err := s.copyTop(nil)
	if err != nil {
		s.stats.Failures++
		return nil, fmt.Errorf("pop: %w", err)
	}
	out := make([]byte, e.Size)
	copy(out, e.Payload)
	s.commit(e.NextOffset(), s.EntryCount()-1)
	s.stats.Pops++
	return out, nil
}

// PeekBytes returns the top entry's payload in a fresh slice without
// removing it.
func (s *Stack) PeekBytes() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("peek: %w", ErrInvalid)
	}
	e, err := s.copyTop(nil)
	if err != nil {
		s.stats.Failures++
		return nil, fmt.Errorf("peek: %w", err)
	}
	out := make([]byte, e.Size)
	copy(out, e.Payload)
	s.stats.Peeks++
	return out, nil
}
