package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/stackkit/internal/buf"
)

const (
	// dwordBitShift converts a dword index to a byte offset (i << 2 == i * 4).
	dwordBitShift = 2

	// checksumAllOnes is the special checksum value when the XOR results in all 1s.
	checksumAllOnes = 0xFFFFFFFF

	// checksumAllOnesReplacement is the replacement value for an all-ones checksum.
	checksumAllOnesReplacement = 0xFFFFFFFE

	// checksumAllZeros is the special checksum value when the XOR results in all 0s.
	checksumAllZeros = 0x00000000

	// checksumAllZerosReplacement is the replacement value for an all-zeros checksum.
	checksumAllZerosReplacement = 0x00000001
)

// Header captures the bookkeeping fields of a stack image header. The diagram
// below shows the full layout.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    's' 't' 'a' 'k'
//	 0x04    4    Format version
//	 0x08    4    Capacity: byte length of the data region
//	 0x0C    4    Top offset: size field of the top entry; == capacity when empty
//	 0x10    4    Entry count
//	 0x14    4    Flags (reserved, zero)
//	 0x18    4    Checksum: XOR of the six preceding dwords, remapped
//	 0x1C    4    Reserved (zero)
//
// All fields are stored in little-endian form. The data region follows the
// header immediately; entries grow downward from the end of the region, so
// the free space is exactly [0, Top).
type Header struct {
	Version    uint32
	Capacity   uint32
	Top        uint32
	EntryCount uint32
	Flags      uint32
	Checksum   uint32
}

// HasSignature is a fast, zero-alloc check for the stack image signature.
func HasSignature(b []byte) bool {
	const off = SignatureOffset
	const n = SignatureSize
	if len(b) < off+n {
		return false
	}
	return bytes.Equal(b[off:off+n], StackSignature)
}

// ParseHeader validates the signature and extracts the header fields. Only
// structural properties are checked here; use ValidateImage for the semantic
// checks a loader needs.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("stack header: %w", ErrTruncated)
	}
	if !HasSignature(b) {
		return Header{}, fmt.Errorf("stack header: %w", ErrSignatureMismatch)
	}
	return Header{
		Version:    buf.U32LE(b[VersionOffset:]),
		Capacity:   buf.U32LE(b[CapacityOffset:]),
		Top:        buf.U32LE(b[TopOffset:]),
		EntryCount: buf.U32LE(b[EntryCountOffset:]),
		Flags:      buf.U32LE(b[FlagsOffset:]),
		Checksum:   buf.U32LE(b[ChecksumOffset:]),
	}, nil
}

// WriteHeader encodes h into the first HeaderSize bytes of b, stamping the
// signature and storing a freshly computed checksum. The Checksum field of h
// is ignored.
func WriteHeader(b []byte, h Header) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("stack header: %w", ErrTruncated)
	}
	copy(b[SignatureOffset:], StackSignature)
	PutU32(b, VersionOffset, h.Version)
	PutU32(b, CapacityOffset, h.Capacity)
	PutU32(b, TopOffset, h.Top)
	PutU32(b, EntryCountOffset, h.EntryCount)
	PutU32(b, FlagsOffset, h.Flags)
	PutU32(b, ChecksumOffset, HeaderChecksum(b))
	PutU32(b, ReservedOffset, 0)
	return nil
}

// HeaderChecksum computes the XOR checksum over the six dwords preceding the
// checksum field. Then:
//
//	if xor==0xFFFFFFFF -> 0xFFFFFFFE
//	if xor==0x00000000 -> 0x00000001
//
// The remapping guarantees a zeroed header never carries a valid checksum.
func HeaderChecksum(b []byte) uint32 {
	var xor uint32
	for i := range ChecksumDwords {
		off := i << dwordBitShift
		xor ^= ReadU32(b, off)
	}
	switch xor {
	case checksumAllOnes:
		return checksumAllOnesReplacement
	case checksumAllZeros:
		return checksumAllZerosReplacement
	default:
		return xor
	}
}

// ValidateImage checks the structural invariants of a complete stack image:
// signature, version, checksum, capacity against the buffer length, and
// top-offset bounds. It does not walk the entry chain; the verify package
// does that.
func ValidateImage(b []byte) error {
	h, err := ParseHeader(b)
	if err != nil {
		return err
	}
	if h.Version != Version {
		return fmt.Errorf("stack header: version %d: %w", h.Version, ErrVersion)
	}
	need := uint64(HeaderSize) + uint64(h.Capacity)
	if uint64(len(b)) < need {
		return fmt.Errorf("stack header: image %d bytes, capacity requires %d: %w",
			len(b), need, ErrTruncated)
	}
	if sum := HeaderChecksum(b); sum != h.Checksum {
		return fmt.Errorf("stack header: checksum stored=0x%08X computed=0x%08X: %w",
			h.Checksum, sum, ErrCorrupt)
	}
	if h.Top > h.Capacity {
		return fmt.Errorf("stack header: top 0x%X beyond capacity 0x%X: %w",
			h.Top, h.Capacity, ErrCorrupt)
	}
	if h.EntryCount == 0 && h.Top != h.Capacity {
		return fmt.Errorf("stack header: empty stack with top 0x%X != capacity 0x%X: %w",
			h.Top, h.Capacity, ErrCorrupt)
	}
	return nil
}
