package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewCommand(t *testing.T) {
	tests := []struct {
		name        string
		capacity    int
		maxEntries  int
		entrySize   int
		preCreate   bool
		force       bool
		wantErr     bool
		wantJSON    bool
		wantContain []string
		wantSize    int64
	}{
		{
			name:        "default capacity",
			wantContain: []string{"Capacity: 1024 bytes", "✓ Image written"},
			wantSize:    32 + 1024,
		},
		{
			name:        "explicit capacity",
			capacity:    4096,
			wantContain: []string{"Capacity: 4096 bytes"},
			wantSize:    32 + 4096,
		},
		{
			name:        "derived capacity",
			maxEntries:  100,
			entrySize:   16,
			wantContain: []string{"Capacity: 2000 bytes"},
			wantSize:    32 + 2000,
		},
		{
			name:        "existing file refused",
			preCreate:   true,
			wantErr:     true,
			wantContain: []string{},
		},
		{
			name:        "force overwrites",
			preCreate:   true,
			force:       true,
			wantContain: []string{"✓ Image written"},
			wantSize:    32 + 1024,
		},
		{
			name:        "json output",
			capacity:    512,
			wantJSON:    true,
			wantContain: []string{`"capacity": 512`, `"success": true`},
			wantSize:    32 + 512,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags
			quiet = false
			verbose = false
			jsonOut = tt.wantJSON
			newCapacity = tt.capacity
			newMaxEntries = tt.maxEntries
			newEntrySize = tt.entrySize
			newMaxEntrySize = 0
			newForce = tt.force

			path := filepath.Join(t.TempDir(), "new-stack.stk")
			if tt.preCreate {
				if err := os.WriteFile(path, []byte("occupied"), 0o644); err != nil {
					t.Fatalf("failed to pre-create file: %v", err)
				}
			}

			output, err := captureOutput(t, func() error {
				return runNew([]string{path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runNew() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)

			stat, statErr := os.Stat(path)
			if statErr != nil {
				t.Fatalf("image file missing: %v", statErr)
			}
			if stat.Size() != tt.wantSize {
				t.Errorf("image size = %d, want %d", stat.Size(), tt.wantSize)
			}
		})
	}
}
