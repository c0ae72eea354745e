package main

import (
	"strings"
	"testing"
)

func TestPushPopPeekRoundTrip(t *testing.T) {
	// Reset flags
	quiet = false
	verbose = false
	jsonOut = false
	pushHex = false
	popHex = false
	peekHex = false

	path := testImagePath(t)

	// push a text payload, then a binary one via --hex
	output, err := captureOutput(t, func() error {
		return runPush([]string{path, "alpha"})
	})
	if err != nil {
		t.Fatalf("runPush() error = %v", err)
	}
	assertContains(t, output, []string{"Pushed 5 bytes", "Entries: 1"})

	pushHex = true
	if _, err := captureOutput(t, func() error {
		return runPush([]string{path, "deadbeef"})
	}); err != nil {
		t.Fatalf("runPush(--hex) error = %v", err)
	}
	pushHex = false

	// peek sees the binary payload without consuming it
	peekHex = true
	output, err = captureOutput(t, func() error {
		return runPeek([]string{path})
	})
	if err != nil {
		t.Fatalf("runPeek() error = %v", err)
	}
	if got := strings.TrimSpace(output); got != "deadbeef" {
		t.Errorf("peek output = %q, want %q", got, "deadbeef")
	}
	peekHex = false

	// pop returns entries in LIFO order
	popHex = true
	output, err = captureOutput(t, func() error {
		return runPop([]string{path})
	})
	if err != nil {
		t.Fatalf("runPop() error = %v", err)
	}
	if got := strings.TrimSpace(output); got != "deadbeef" {
		t.Errorf("pop output = %q, want %q", got, "deadbeef")
	}
	popHex = false

	output, err = captureOutput(t, func() error {
		return runPop([]string{path})
	})
	if err != nil {
		t.Fatalf("runPop() error = %v", err)
	}
	if got := strings.TrimSpace(output); got != "alpha" {
		t.Errorf("pop output = %q, want %q", got, "alpha")
	}

	// the image is empty again
	if _, err := captureOutput(t, func() error {
		return runPop([]string{path})
	}); err == nil {
		t.Error("runPop() on empty image expected error")
	}
}

func TestPushCommandRejectsBadHex(t *testing.T) {
	quiet = false
	verbose = false
	jsonOut = false
	pushHex = true
	defer func() { pushHex = false }()

	path := testImagePath(t)
	if _, err := captureOutput(t, func() error {
		return runPush([]string{path, "not-hex!"})
	}); err == nil {
		t.Error("runPush() with malformed hex expected error")
	}
}

func TestPushCommandJSON(t *testing.T) {
	quiet = false
	verbose = false
	jsonOut = true
	pushHex = false
	defer func() { jsonOut = false }()

	path := testImagePath(t)
	output, err := captureOutput(t, func() error {
		return runPush([]string{path, "payload"})
	})
	if err != nil {
		t.Fatalf("runPush() error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"pushed": 7`, `"entries": 1`, `"success": true`})
}
