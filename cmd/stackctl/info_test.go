package main

import (
	"os"
	"testing"
)

func TestInfoCommand(t *testing.T) {
	tests := []struct {
		name        string
		corruptSig  bool
		wantErr     bool
		wantJSON    bool
		wantContain []string
	}{
		{
			name: "valid image",
			wantContain: []string{
				"Stack Information:",
				"Version: 1",
				"Capacity: 256 bytes",
				"Entries: 2",
				"✓ Structure valid",
				"✓ No corruption detected",
			},
		},
		{
			name:     "json output",
			wantJSON: true,
			wantContain: []string{
				`"capacity": 256`,
				`"entries": 2`,
				`"valid": true`,
			},
		},
		{
			name:       "corrupt image rejected",
			corruptSig: true,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags
			quiet = false
			verbose = false
			jsonOut = tt.wantJSON

			path := testImagePath(t, "alpha", "beta")
			if tt.corruptSig {
				data, err := os.ReadFile(path)
				if err != nil {
					t.Fatalf("failed to read image: %v", err)
				}
				data[0] = 'X'
				if err := os.WriteFile(path, data, 0o644); err != nil {
					t.Fatalf("failed to rewrite image: %v", err)
				}
			}

			output, err := captureOutput(t, func() error {
				return runInfo([]string{path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runInfo() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}
