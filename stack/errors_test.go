package stack

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{CodeOK, "OK"},
		{CodeFull, "FULL"},
		{CodeInvalid, "INVALID"},
		{CodeOutOfMemory, "NOMEM"},
		{CodeEmpty, "EMPTY"},
		{CodeInternal, "INTERNAL"},
		{CodeBufferOverflow, "BUFOVERFLOW"},
		{CodeMaxRefcount, "MAXREFCOUNT"},
		{Code(99), "???"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.code.String())
	}
}

func TestCode_ValidAndIsError(t *testing.T) {
	require.True(t, CodeOK.Valid())
	require.False(t, CodeOK.IsError())

	require.True(t, CodeMaxRefcount.Valid())
	require.True(t, CodeMaxRefcount.IsError())

	require.False(t, Code(200).Valid())
	require.True(t, Code(200).IsError())
}

func TestCodeOf_MapsSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want Code
	}{
		{nil, CodeOK},
		{ErrFull, CodeFull},
		{ErrInvalid, CodeInvalid},
		{ErrOutOfMemory, CodeOutOfMemory},
		{ErrEmpty, CodeEmpty},
		{ErrBufferOverflow, CodeBufferOverflow},
		{ErrMaxRefcount, CodeMaxRefcount},
		{ErrInternal, CodeInternal},
		{errors.New("something else"), CodeInternal},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CodeOf(tc.err))
	}
}

// TestCodeOf_SeesThroughWrapping checks that operation context added with
// %w does not hide the sentinel.
func TestCodeOf_SeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("push: need %d bytes: %w", 128, ErrFull)
	require.Equal(t, CodeFull, CodeOf(err))

	s := newTestStack(t, 16)
	_, err = s.Pop(nil)
	require.Equal(t, CodeEmpty, CodeOf(err))
}
