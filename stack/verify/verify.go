// Package verify provides validation functions for stack arena images.
// These helpers are used in tests to ensure image invariants are
// maintained.
package verify

import (
	"fmt"

	"github.com/joshuapare/stackkit/internal/format"
)

// ValidationError describes a single validation failure.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
	Details map[string]interface{}
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants validates all image invariants in one call.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(data []byte) error {
	if err := Header(data); err != nil {
		return err
	}
	if err := Checksum(data); err != nil {
		return err
	}
	if err := EntryChain(data); err != nil {
		return err
	}
	if err := ImageSize(data); err != nil {
		return err
	}
	return nil
}

// Header validates the image header fields and their mutual consistency.
func Header(data []byte) error {
	if len(data) < format.HeaderSize {
		return &ValidationError{
			Type:    "Header",
			Message: fmt.Sprintf("image too small: %d bytes (need %d)", len(data), format.HeaderSize),
			Offset:  -1,
		}
	}

	// Check signature
	sig := string(data[format.SignatureOffset : format.SignatureOffset+format.SignatureSize])
	if sig != string(format.StackSignature) {
		return &ValidationError{
			Type:    "Header",
			Message: fmt.Sprintf("invalid signature: got %q, expected %q", sig, format.StackSignature),
			Offset:  format.SignatureOffset,
		}
	}

	// Check version
	version := format.ReadU32(data, format.VersionOffset)
	if version != format.Version {
		return &ValidationError{
			Type:    "Header",
			Message: fmt.Sprintf("unexpected version: %d (expected %d)", version, format.Version),
			Offset:  format.VersionOffset,
		}
	}

	capacity := format.ReadU32(data, format.CapacityOffset)
	top := format.ReadU32(data, format.TopOffset)
	count := format.ReadU32(data, format.EntryCountOffset)

	// Top must lie within the data region; capacity marks an empty stack.
	if top > capacity {
		return &ValidationError{
			Type:    "Header",
			Message: fmt.Sprintf("top offset beyond capacity: top=0x%X, capacity=0x%X", top, capacity),
			Offset:  format.TopOffset,
			Details: map[string]interface{}{
				"top":      top,
				"capacity": capacity,
			},
		}
	}

	// Count and top must agree about emptiness
	if count == 0 && top != capacity {
		return &ValidationError{
			Type:    "Header",
			Message: fmt.Sprintf("empty stack with dangling top: top=0x%X, capacity=0x%X", top, capacity),
			Offset:  format.TopOffset,
		}
	}
	if count > 0 && top == capacity {
		return &ValidationError{
			Type:    "Header",
			Message: fmt.Sprintf("entry count %d but top marks the stack empty", count),
			Offset:  format.EntryCountOffset,
		}
	}

	return nil
}

// Checksum validates the header checksum.
//
// The checksum is refreshed on every mutation, so unlike a dirty-page
// digest a mismatch always indicates corruption, never an in-flight
// update.
func Checksum(data []byte) error {
	if len(data) < format.HeaderSize {
		return &ValidationError{
			Type:    "Checksum",
			Message: fmt.Sprintf("image too small: %d bytes", len(data)),
			Offset:  -1,
		}
	}

	calculated := format.HeaderChecksum(data)
	stored := format.ReadU32(data, format.ChecksumOffset)
	if calculated != stored {
		return &ValidationError{
			Type:    "Checksum",
			Message: fmt.Sprintf("checksum mismatch: calculated=0x%08X, stored=0x%08X", calculated, stored),
			Offset:  format.ChecksumOffset,
			Details: map[string]interface{}{
				"calculated": calculated,
				"stored":     stored,
			},
		}
	}
	return nil
}

// EntryChain walks the entry chain from the top offset and validates that
// every size field stays in bounds, the chain terminates exactly at the
// capacity boundary, and the number of entries walked matches the header
// count.
func EntryChain(data []byte) error {
	if err := Header(data); err != nil {
		return err
	}

	capacity := int(format.ReadU32(data, format.CapacityOffset))
	top := int(format.ReadU32(data, format.TopOffset))
	count := int(format.ReadU32(data, format.EntryCountOffset))

	if uint64(len(data)) < uint64(format.HeaderSize)+uint64(capacity) {
		return &ValidationError{
			Type:    "EntryChain",
			Message: fmt.Sprintf("image truncated: %d bytes, capacity needs %d", len(data), format.HeaderSize+capacity),
			Offset:  -1,
		}
	}
	region := data[format.HeaderSize : format.HeaderSize+capacity]

	pos := top
	walked := 0
	for pos < capacity {
		if pos+format.EntryHeaderSize > capacity {
			return &ValidationError{
				Type:    "EntryChain",
				Message: fmt.Sprintf("truncated size field: %d bytes left", capacity-pos),
				Offset:  pos,
			}
		}

		size := int(format.ReadU32(region, pos))
		end := pos + format.EntryHeaderSize + size
		if size < 0 || end > capacity {
			return &ValidationError{
				Type:    "EntryChain",
				Message: fmt.Sprintf("entry overruns region: size=%d, end=0x%X, capacity=0x%X", size, end, capacity),
				Offset:  pos,
				Details: map[string]interface{}{
					"size":     size,
					"end":      end,
					"capacity": capacity,
				},
			}
		}

		pos = end
		walked++

		// A chain longer than the header count is corrupt regardless of
		// where it terminates.
		if walked > count {
			return &ValidationError{
				Type:    "EntryChain",
				Message: fmt.Sprintf("chain has more than %d entries", count),
				Offset:  pos,
			}
		}
	}

	if walked != count {
		return &ValidationError{
			Type:    "EntryChain",
			Message: fmt.Sprintf("entry count mismatch: walked=%d, header=%d", walked, count),
			Offset:  format.EntryCountOffset,
			Details: map[string]interface{}{
				"walked": walked,
				"header": count,
			},
		}
	}

	return nil
}

// ImageSize validates that the image size matches the header's capacity
// field exactly.
func ImageSize(data []byte) error {
	if len(data) < format.HeaderSize {
		return &ValidationError{
			Type:    "ImageSize",
			Message: fmt.Sprintf("image too small: %d bytes", len(data)),
			Offset:  -1,
		}
	}

	capacity := int(format.ReadU32(data, format.CapacityOffset))
	expected := format.HeaderSize + capacity
	actual := len(data)

	if actual != expected {
		return &ValidationError{
			Type: "ImageSize",
			Message: fmt.Sprintf(
				"image size mismatch: actual=0x%X, expected=0x%X (header+capacity)",
				actual,
				expected,
			),
			Offset: -1,
			Details: map[string]interface{}{
				"actual":      actual,
				"expected":    expected,
				"header_size": format.HeaderSize,
				"capacity":    capacity,
			},
		}
	}

	return nil
}
