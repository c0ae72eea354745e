package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntryRoundTrip(t *testing.T) {
	region := make([]byte, 32)
	require.NoError(t, WriteEntryAt(region, 10, []byte("hello")))

	e, err := ParseEntryAt(region, 10)
	require.NoError(t, err)
	require.Equal(t, 10, e.Offset)
	require.Equal(t, 5, e.Size)
	require.Equal(t, []byte("hello"), e.Payload)
	require.Equal(t, 10+EntryHeaderSize+5, e.NextOffset())
	require.Equal(t, EntryHeaderSize+5, e.TotalSize())
}

func TestEntryZeroLengthPayload(t *testing.T) {
	region := make([]byte, 8)
	require.NoError(t, WriteEntryAt(region, 4, nil))

	e, err := ParseEntryAt(region, 4)
	require.NoError(t, err)
	require.Equal(t, 0, e.Size)
	require.Empty(t, e.Payload)
	require.Equal(t, 8, e.NextOffset())
}

func TestParseEntryAtRejectsBadOffsets(t *testing.T) {
	region := make([]byte, 16)

	_, err := ParseEntryAt(region, -1)
	require.ErrorIs(t, err, ErrTruncated)

	_, err = ParseEntryAt(region, 14) // no room for the size field
	require.ErrorIs(t, err, ErrTruncated)
}

func TestParseEntryAtRejectsOverlongSize(t *testing.T) {
	region := make([]byte, 16)
	PutU32(region, 0, 13) // 4 + 13 > 16

	_, err := ParseEntryAt(region, 0)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestWriteEntryAtRejectsOverflow(t *testing.T) {
	region := make([]byte, 8)
	err := WriteEntryAt(region, 0, []byte("too long for region"))
	require.ErrorIs(t, err, ErrTruncated)
}
