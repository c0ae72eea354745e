package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAcquireRelease_Lifecycle(t *testing.T) {
	s := newTestStack(t, 64)
	require.Equal(t, uint32(1), s.Refcount())

	require.NoError(t, s.Acquire())
	require.Equal(t, uint32(2), s.Refcount())

	// First release keeps the arena alive for the second owner
	s.Release()
	require.True(t, s.IsValid())
	require.Equal(t, uint32(1), s.Refcount())

	// Last release destroys it
	s.Release()
	require.False(t, s.IsValid())
	require.Equal(t, uint32(0), s.Refcount())

	// Every operation now reports an invalid handle
	require.ErrorIs(t, s.Push([]byte("x")), ErrInvalid)
	_, err := s.Pop(nil)
	require.ErrorIs(t, err, ErrInvalid)
	require.ErrorIs(t, s.Acquire(), ErrInvalid)

	// Further releases are no-ops, not panics
	s.Release()
	s.Release()
}

// TestRelease_InvalidatesBufferAliases checks that destroying the last
// handle wipes the validity stamp, so a second handle built over the same
// buffer observes the destruction instead of reading freed bookkeeping.
func TestRelease_InvalidatesBufferAliases(t *testing.T) {
	s := newTestStack(t, 64)
	pushAll(t, s, "shared")

	alias, err := FromImage(s.Bytes())
	require.NoError(t, err)
	require.True(t, alias.IsValid())

	s.Release()
	require.False(t, s.IsValid())
	require.False(t, alias.IsValid())

	_, err = alias.PopBytes()
	require.ErrorIs(t, err, ErrInvalid)
}

func TestReleaseAndClear(t *testing.T) {
	s := newTestStack(t, 64)
	p := s

	ReleaseAndClear(&s)
	require.Nil(t, s)
	require.False(t, p.IsValid())

	// Safe on an already-cleared pointer and on nil
	ReleaseAndClear(&s)
	ReleaseAndClear(nil)
}

func TestAcquire_SaturatesAtMaxRefcount(t *testing.T) {
	s := newTestStack(t, 64)

	// Drive the counter to the saturation point directly; acquiring that
	// many times for real is not practical in a test.
	s.refs = MaxRefcount

	err := s.Acquire()
	require.ErrorIs(t, err, ErrMaxRefcount)
	require.Equal(t, CodeMaxRefcount, CodeOf(err))
	require.Equal(t, uint32(MaxRefcount), s.Refcount())

	// The arena itself is still fully usable
	require.NoError(t, s.Push([]byte("still works")))

	// Walk it back down so cleanup destroys the arena normally
	s.refs = 1
}
