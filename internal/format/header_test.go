package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildImage assembles a complete image with the given payloads pushed in
// order, so the last payload is the top entry.
func buildImage(t *testing.T, capacity int, payloads ...[]byte) []byte {
	t.Helper()

	img := make([]byte, HeaderSize+capacity)
	region := img[HeaderSize:]
	top := capacity
	for _, p := range payloads {
		top -= EntryHeaderSize + len(p)
		require.NoError(t, WriteEntryAt(region, top, p))
	}
	require.NoError(t, WriteHeader(img, Header{
		Version:    Version,
		Capacity:   uint32(capacity),
		Top:        uint32(top),
		EntryCount: uint32(len(payloads)),
	}))
	return img
}

func TestHeaderRoundTrip(t *testing.T) {
	img := buildImage(t, 64, []byte("a"), []byte("bb"))

	h, err := ParseHeader(img)
	require.NoError(t, err)
	require.Equal(t, uint32(Version), h.Version)
	require.Equal(t, uint32(64), h.Capacity)
	require.Equal(t, uint32(2), h.EntryCount)
	// "a" costs 5 bytes, "bb" costs 6
	require.Equal(t, uint32(64-5-6), h.Top)
	require.Equal(t, HeaderChecksum(img), h.Checksum)
	require.NoError(t, ValidateImage(img))
}

func TestParseHeaderRejectsTruncatedAndForeign(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, ErrTruncated)

	img := buildImage(t, 16)
	img[0] = 'X'
	_, err = ParseHeader(img)
	require.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestHeaderChecksumRemapsDegenerateValues(t *testing.T) {
	// All-zero checksum region XORs to 0, which must remap to 1.
	b := make([]byte, HeaderSize)
	require.Equal(t, uint32(1), HeaderChecksum(b))
}

func TestValidateImage(t *testing.T) {
	t.Run("version mismatch", func(t *testing.T) {
		img := buildImage(t, 16)
		PutU32(img, VersionOffset, Version+1)
		PutU32(img, ChecksumOffset, HeaderChecksum(img))
		require.ErrorIs(t, ValidateImage(img), ErrVersion)
	})

	t.Run("truncated body", func(t *testing.T) {
		img := buildImage(t, 64)
		require.ErrorIs(t, ValidateImage(img[:HeaderSize+10]), ErrTruncated)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		img := buildImage(t, 16)
		PutU32(img, EntryCountOffset, 7)
		err := ValidateImage(img)
		require.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("top beyond capacity", func(t *testing.T) {
		img := buildImage(t, 16)
		PutU32(img, TopOffset, 17)
		PutU32(img, EntryCountOffset, 1)
		PutU32(img, ChecksumOffset, HeaderChecksum(img))
		require.ErrorIs(t, ValidateImage(img), ErrCorrupt)
	})

	t.Run("empty stack with dangling top", func(t *testing.T) {
		img := buildImage(t, 16)
		PutU32(img, TopOffset, 8)
		PutU32(img, ChecksumOffset, HeaderChecksum(img))
		require.ErrorIs(t, ValidateImage(img), ErrCorrupt)
	})
}
