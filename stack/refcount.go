package stack

import (
	"fmt"
	"math"

	"github.com/joshuapare/stackkit/internal/format"
)

// MaxRefcount is the saturation point of the reference counter.
const MaxRefcount = math.MaxUint32

// Acquire registers another owner of the arena. The counter saturates at
// MaxRefcount instead of wrapping, so an overflowing acquire can never free
// the arena out from under an existing owner.
func (s *Stack) Acquire() error {
	if !s.IsValid() {
		return fmt.Errorf("acquire: %w", ErrInvalid)
	}
	if s.refs == MaxRefcount {
		return fmt.Errorf("acquire: %w", ErrMaxRefcount)
	}
	s.refs++
	return nil
}

// Refcount returns the number of outstanding owners, or 0 for an invalid
// handle.
func (s *Stack) Refcount() uint32 {
	if !s.IsValid() {
		return 0
	}
	return s.refs
}

// Release drops one owner. When the last owner releases, the buffer's
// signature is wiped so every aliased handle observes invalidity, and the
// buffer is dropped. Releasing a nil or already-destroyed handle is a
// no-op.
func (s *Stack) Release() {
	if !s.IsValid() {
		return
	}
	s.refs--
	if s.refs == 0 {
		s.destroy()
	}
}

// ReleaseAndClear releases *sp and nils the caller's pointer so the handle
// cannot be reused by accident. Safe on a nil or empty pointer.
func ReleaseAndClear(sp **Stack) {
	if sp == nil || *sp == nil {
		return
	}
	(*sp).Release()
	*sp = nil
}

// destroy wipes the validity stamp and drops the buffer. Aliases of the
// buffer fail signature checks from this point on.
func (s *Stack) destroy() {
	clear(s.data[:format.HeaderSize])
	s.data = nil
	s.refs = 0
	s.stats = Stats{}
}

// detach invalidates the handle without touching the buffer, for buffers
// whose lifetime is owned elsewhere (a memory-mapped file about to be
// unmapped).
func (s *Stack) detach() {
	s.data = nil
	s.refs = 0
}
