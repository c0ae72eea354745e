package stack

import (
	"path/filepath"
	"testing"

	"github.com/joshuapare/stackkit/internal/format"
)

// --- small arena builders (keep tests readable) ---

// newTestStack allocates an arena and registers a release on cleanup.
// Release is a no-op on an already-destroyed handle, so tests that exercise
// destruction explicitly stay safe.
func newTestStack(t *testing.T, capacity int) *Stack {
	t.Helper()

	s, err := New(capacity)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", capacity, err)
	}
	t.Cleanup(s.Release)
	return s
}

// pushAll pushes the payloads bottom to top, failing the test on any error.
func pushAll(t *testing.T, s *Stack, payloads ...string) {
	t.Helper()

	for _, p := range payloads {
		if err := s.Push([]byte(p)); err != nil {
			t.Fatalf("Push(%q) failed: %v", p, err)
		}
	}
}

// writeTestImage saves an arena holding the given payloads to a temp file
// and returns its path.
func writeTestImage(t *testing.T, capacity int, payloads ...string) string {
	t.Helper()

	s := newTestStack(t, capacity)
	pushAll(t, s, payloads...)

	path := filepath.Join(t.TempDir(), "test.stk")
	if err := s.SaveImage(path); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	return path
}

// corruptTopSize overwrites the top entry's size field with a value that
// overruns the region, leaving the header checksum untouched so the handle
// still passes validity checks.
func corruptTopSize(s *Stack) {
	format.PutU32(s.region(), s.top(), uint32(s.Capacity()))
}
