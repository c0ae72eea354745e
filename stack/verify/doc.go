// Package verify provides validation functions for stack arena images.
//
// # Overview
//
// This package implements structural validation for serialized stack
// images: header fields, checksum integrity, and the packed entry chain.
// It is primarily used in tests to verify that mutations maintain image
// invariants, and by tools before accepting user-provided image files.
//
// Validation categories:
//   - Header: signature, version, top/capacity/count consistency
//   - Checksum: header integrity dword
//   - EntryChain: size fields in bounds, chain termination, count match
//   - ImageSize: buffer length matches header capacity field
//
// # Quick Start
//
// Validate all invariants in one call:
//
//	data, _ := os.ReadFile("queue.stk")
//	if err := verify.AllInvariants(data); err != nil {
//	    fmt.Printf("Validation failed: %v\n", err)
//	}
//
// Validate specific aspects:
//
//	if err := verify.Header(data); err != nil {
//	    fmt.Printf("Header invalid: %v\n", err)
//	}
//
//	if err := verify.EntryChain(data); err != nil {
//	    fmt.Printf("Entry chain invalid: %v\n", err)
//	}
//
// # ValidationError
//
// All validation functions return *ValidationError on failure:
//
//	type ValidationError struct {
//	    Type    string                 // Error category (e.g., "EntryChain")
//	    Message string                 // Human-readable description
//	    Offset  int                    // Image offset where error occurred (-1 if N/A)
//	    Details map[string]interface{} // Additional context
//	}
//
// Example:
//
//	err := verify.Checksum(data)
//	if err != nil {
//	    if verr, ok := err.(*verify.ValidationError); ok {
//	        fmt.Printf("Type: %s\n", verr.Type)
//	        fmt.Printf("Offset: 0x%X\n", verr.Offset)
//	        fmt.Printf("Calculated: 0x%08X\n", verr.Details["calculated"])
//	        fmt.Printf("Stored: 0x%08X\n", verr.Details["stored"])
//	    }
//	}
//
// # Entry Chain Validation
//
// EntryChain walks the chain from the header's top offset:
//
//	[size: 4 bytes LE][payload: size bytes] ... repeated to capacity
//
// Validates:
//   - Each size field lies fully within the data region
//   - Each entry's payload lies fully within the data region
//   - The chain terminates exactly at the capacity boundary
//   - The number of entries walked equals the header's entry count
//
// Example errors:
//   - "entry overruns region: size=500, end=0x2F0, capacity=0x100"
//   - "entry count mismatch: walked=2, header=3"
//
// # Usage in Tests
//
// Typical test pattern:
//
//	func TestMutation(t *testing.T) {
//	    s, _ := stack.New(1024)
//	    defer s.Release()
//
//	    s.Push([]byte("job"))
//	    if err := verify.AllInvariants(s.Bytes()); err != nil {
//	        t.Fatalf("Invariants violated: %v", err)
//	    }
//	}
//
// # Related Packages
//
//   - github.com/joshuapare/stackkit/stack: core arena operations
//   - github.com/joshuapare/stackkit/internal/format: binary format constants
package verify
