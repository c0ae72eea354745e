package main

import (
	"os"
	"testing"
)

// corruptImageByte rewrites one byte of the image file at offset.
func corruptImageByte(t *testing.T, path string, offset int, b byte) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read image: %v", err)
	}
	data[offset] = b
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to rewrite image: %v", err)
	}
}

func TestVerifyCommand(t *testing.T) {
	t.Run("valid image", func(t *testing.T) {
		quiet = false
		verbose = false
		jsonOut = false

		path := testImagePath(t, "alpha", "beta")
		output, err := captureOutput(t, func() error {
			return runVerify([]string{path})
		})
		if err != nil {
			t.Fatalf("runVerify() error = %v", err)
		}
		assertContains(t, output, []string{
			"✓ header",
			"✓ checksum",
			"✓ entry chain",
			"✓ image size",
			"Result: ✓ VALID",
		})
	})

	t.Run("corrupt signature", func(t *testing.T) {
		quiet = false
		verbose = false
		jsonOut = false

		path := testImagePath(t, "alpha")
		corruptImageByte(t, path, 0, 'X')

		output, err := captureOutput(t, func() error {
			return runVerify([]string{path})
		})
		if err == nil {
			t.Fatal("runVerify() expected error for corrupt image")
		}
		assertContains(t, output, []string{
			"✗ header",
			"Result: ✗ INVALID",
		})
	})

	t.Run("corrupt checksum", func(t *testing.T) {
		quiet = false
		verbose = false
		jsonOut = false

		path := testImagePath(t, "alpha")
		// The checksum dword sits at 0x18; the header fields stay coherent
		// so only the checksum check trips.
		corruptImageByte(t, path, 0x18, 0xFF)

		output, err := captureOutput(t, func() error {
			return runVerify([]string{path})
		})
		if err == nil {
			t.Fatal("runVerify() expected error for corrupt image")
		}
		assertContains(t, output, []string{
			"✓ header",
			"✗ checksum",
			"Result: ✗ INVALID",
		})
	})

	t.Run("json output", func(t *testing.T) {
		quiet = false
		verbose = false
		jsonOut = true

		path := testImagePath(t, "alpha")
		output, err := captureOutput(t, func() error {
			return runVerify([]string{path})
		})
		if err != nil {
			t.Fatalf("runVerify() error = %v", err)
		}
		assertJSON(t, output)
		assertContains(t, output, []string{
			`"valid": true`,
			`"checksum": "ok"`,
			`"entry chain": "ok"`,
		})
	})

	t.Run("json corrupt", func(t *testing.T) {
		quiet = false
		verbose = false
		jsonOut = true

		path := testImagePath(t, "alpha")
		corruptImageByte(t, path, 0x18, 0xFF)

		output, err := captureOutput(t, func() error {
			return runVerify([]string{path})
		})
		if err == nil {
			t.Fatal("runVerify() expected error for corrupt image")
		}
		assertJSON(t, output)
		assertContains(t, output, []string{`"valid": false`})
	})
}
