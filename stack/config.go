package stack

import (
	"fmt"

	"github.com/joshuapare/stackkit/internal/buf"
	"github.com/joshuapare/stackkit/internal/format"
)

const (
	// DefaultCapacity is the data-region size in bytes used when no
	// capacity is configured.
	DefaultCapacity = 1024

	// DefaultEntrySize is the per-entry payload estimate used to derive a
	// capacity from an entry-count limit.
	DefaultEntrySize = 8
)

// Config controls construction limits. The zero value selects defaults:
// DefaultCapacity bytes of data region, no entry-count limit, no per-entry
// size limit.
type Config struct {
	// Capacity is the data-region size in bytes. When 0 the capacity is
	// derived from MaxEntries if that is set, otherwise DefaultCapacity
	// is used.
	Capacity int

	// MaxEntries caps the number of live entries. 0 means unlimited.
	MaxEntries int

	// MaxEntrySize caps a single payload's size in bytes. 0 means
	// unlimited. Oversized pushes fail with ErrInvalid.
	MaxEntrySize int

	// DefaultEntrySize is the per-entry payload estimate used when
	// deriving a capacity from MaxEntries. 0 selects DefaultEntrySize.
	DefaultEntrySize int

	// MaxCapacity rejects resolved capacities above this many bytes.
	// 0 means no limit beyond the format's addressing range.
	MaxCapacity int
}

// DefaultConfig returns the construction parameters used by New when no
// capacity is given.
func DefaultConfig() Config {
	return Config{
		Capacity:         DefaultCapacity,
		DefaultEntrySize: DefaultEntrySize,
	}
}

// resolve normalizes defaults and computes the backing capacity in bytes.
// All rejection paths report ErrOutOfMemory: construction has no other
// failure mode.
func (c Config) resolve() (Config, int, error) {
	if c.Capacity < 0 || c.MaxEntries < 0 || c.MaxEntrySize < 0 ||
		c.DefaultEntrySize < 0 || c.MaxCapacity < 0 {
		return Config{}, 0, fmt.Errorf("alloc: negative limit: %w", ErrOutOfMemory)
	}
	if c.DefaultEntrySize == 0 {
		c.DefaultEntrySize = DefaultEntrySize
	}

	capacity := c.Capacity
	if capacity == 0 {
		switch {
		case c.MaxEntries > 0:
			// An entry costs its payload estimate plus the size field.
			slot, ok := buf.AddOverflowSafe(format.EntryHeaderSize, c.DefaultEntrySize)
			if ok {
				capacity, ok = buf.MulOverflowSafe(c.MaxEntries, slot)
			}
			if !ok {
				return Config{}, 0, fmt.Errorf("alloc: capacity overflow deriving %d entries of %d bytes: %w",
					c.MaxEntries, c.DefaultEntrySize, ErrOutOfMemory)
			}
		default:
			capacity = DefaultCapacity
		}
	}

	if uint64(capacity) > uint64(format.MaxDataSize) {
		return Config{}, 0, fmt.Errorf("alloc: capacity %d exceeds addressable range: %w",
			capacity, ErrOutOfMemory)
	}
	if c.MaxCapacity > 0 && capacity > c.MaxCapacity {
		return Config{}, 0, fmt.Errorf("alloc: capacity %d exceeds limit %d: %w",
			capacity, c.MaxCapacity, ErrOutOfMemory)
	}
	return c, capacity, nil
}
