// Package stack implements a bounded LIFO arena: variable-sized byte
// payloads packed into a single fixed-capacity buffer with O(1) push, pop,
// and peek.
//
// # Overview
//
// A Stack owns one contiguous allocation laid out as a 32-byte header
// followed by the data region. Entries are stored as a 4-byte little-endian
// size field followed by the payload, packed tightly from the end of the
// region toward its start. All bookkeeping (capacity, top offset, entry
// count, checksum) lives inside the header, so the buffer is simultaneously
// the live arena and its own serialized image.
//
//	+--------+------------------------+-------------------------+
//	| header |      free space        |  entries (top first)    |
//	+--------+------------------------+-------------------------+
//	0x20     ^                        ^top offset               ^capacity
//
// Because entries grow downward, the free region is always the prefix of the
// data region below the top offset, and a push or pop adjusts exactly one
// boundary.
//
// # Quick Start
//
//	s, err := stack.New(1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Release()
//
//	s.Push([]byte("hello"))
//	s.Push([]byte("world"))
//
//	top, _ := s.PopBytes() // "world"
//	fmt.Println(string(top))
//
// # Handles and Lifetime
//
// Stacks are reference counted. New returns a handle with a count of 1;
// Acquire registers another owner and Release drops one. When the count
// reaches zero the buffer's signature is wiped and the buffer is dropped, so
// any aliased handle immediately fails IsValid and every subsequent
// operation on it returns ErrInvalid. The counter saturates at MaxRefcount
// rather than wrapping.
//
// Read-only accessors (EntryCount, FreeSize, Capacity, IsEmpty) return safe
// zero values on an invalid handle instead of failing, because they commonly
// feed loop bounds and log lines where an error return would be noise.
//
// # Error Atomicity
//
// Every failing operation leaves the arena untouched. A push that does not
// fit reports ErrFull without writing a byte; a pop into a too-small buffer
// reports ErrBufferOverflow and keeps the entry in place. Callers can probe
// the top entry's size by popping or peeking with a nil buffer.
//
// # Images and Snapshots
//
// The raw buffer round-trips through WriteTo, SaveImage, LoadImage, and
// FromImage with no translation step. Open memory-maps an image file for
// in-place mutation. EncodeSnapshot and DecodeSnapshot wrap the raw image in
// a compressed container with an integrity digest for archival.
//
// # Concurrency
//
// A Stack is not safe for concurrent use. SafeStack wraps one in a mutex for
// callers that share a single arena across goroutines.
//
// # Related Packages
//
//   - github.com/joshuapare/stackkit/stack/verify: structural validation of images
//   - github.com/joshuapare/stackkit/stack/printer: formatted image dumps
package stack
