// Package testutil provides helpers for constructing stack arenas and
// image files in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/stackkit/stack"
)

// NewStack allocates an arena, pushes the given payloads bottom to top,
// and registers a release on test cleanup.
//
// Example:
//
//	s := testutil.NewStack(t, 1024, "first", "second")
//	// "second" is now the top entry
func NewStack(t *testing.T, capacity int, payloads ...string) *stack.Stack {
	t.Helper()

	s, err := stack.New(capacity)
	if err != nil {
		t.Fatalf("Failed to allocate stack: %v", err)
	}
	t.Cleanup(s.Release)

	for _, p := range payloads {
		if err := s.Push([]byte(p)); err != nil {
			t.Fatalf("Failed to push %q: %v", p, err)
		}
	}
	return s
}

// ImageBytes returns a standalone raw image holding the given payloads.
// The returned slice is a copy, safe to corrupt in tests.
func ImageBytes(t *testing.T, capacity int, payloads ...string) []byte {
	t.Helper()

	s := NewStack(t, capacity, payloads...)
	img := make([]byte, len(s.Bytes()))
	copy(img, s.Bytes())
	return img
}

// WriteImageFile writes an image holding the given payloads to a file in a
// temporary directory and returns its path. The file is removed on test
// cleanup.
func WriteImageFile(t *testing.T, capacity int, payloads ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test-stack.stk")
	if err := os.WriteFile(path, ImageBytes(t, capacity, payloads...), 0o644); err != nil {
		t.Fatalf("Failed to write image file: %v", err)
	}
	return path
}
