package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for count * slotSize calculations when deriving buffer capacities.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// For positive numbers, check if result would overflow
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	// For negative numbers
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// CheckRecordBounds validates that a record of headerSize + payloadSize bytes
// fits in a buffer of bufLen bytes starting at offset. Returns the end offset
// if valid, or an error describing the specific failure (overflow or out of
// bounds).
//
// This is the recommended way to validate a size-prefixed record before
// touching its payload:
//
//	endOff, err := buf.CheckRecordBounds(len(data), offset, hdrSize, payloadSize)
//	if err != nil {
//	    return fmt.Errorf("entry: %w", err)
//	}
//	// Safe to read from offset to endOff
func CheckRecordBounds(bufLen, offset, headerSize, payloadSize int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if headerSize < 0 {
		return 0, fmt.Errorf("negative header size: %d", headerSize)
	}
	if payloadSize < 0 {
		return 0, fmt.Errorf("negative payload size: %d", payloadSize)
	}

	// Check headerSize + payloadSize for overflow
	totalSize, ok := AddOverflowSafe(headerSize, payloadSize)
	if !ok {
		return 0, fmt.Errorf("overflow: hdrSize=%d + payloadSize=%d", headerSize, payloadSize)
	}

	// Check offset + totalSize for overflow
	endOffset, ok := AddOverflowSafe(offset, totalSize)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, totalSize)
	}

	// Check bounds
	if endOffset > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", endOffset, bufLen)
	}

	return endOffset, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
