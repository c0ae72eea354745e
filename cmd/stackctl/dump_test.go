package main

import (
	"testing"

	"github.com/joshuapare/stackkit/stack/printer"
)

func TestDumpCommand(t *testing.T) {
	tests := []struct {
		name           string
		entry          int
		maxBytes       int
		noPayloads     bool
		wantErr        bool
		wantJSON       bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "dump all entries",
			entry:       -1,
			maxBytes:    printer.DefaultMaxPayloadBytes,
			wantContain: []string{"stack image:", "entries=2", "[0]", "[1]", "|beta|", "|alpha|"},
		},
		{
			name:           "dump single entry",
			entry:          0,
			maxBytes:       printer.DefaultMaxPayloadBytes,
			wantContain:    []string{"[0]", "|beta|"},
			wantNotContain: []string{"[1]", "|alpha|", "stack image:"},
		},
		{
			name:     "dump as JSON",
			entry:    -1,
			maxBytes: printer.DefaultMaxPayloadBytes,
			wantJSON: true,
			wantContain: []string{
				`"entry_count": 2`,
				`"preview": "beta"`,
				`"preview": "alpha"`,
			},
		},
		{
			name:           "dump without payloads",
			entry:          -1,
			maxBytes:       printer.DefaultMaxPayloadBytes,
			noPayloads:     true,
			wantContain:    []string{"[0]", "size=4", "[1]", "size=5"},
			wantNotContain: []string{"|beta|", "|alpha|"},
		},
		{
			name:     "entry index out of range",
			entry:    7,
			maxBytes: printer.DefaultMaxPayloadBytes,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags
			quiet = false
			verbose = false
			jsonOut = tt.wantJSON
			dumpEntry = tt.entry
			dumpMaxBytes = tt.maxBytes
			dumpNoPayloads = tt.noPayloads

			path := testImagePath(t, "alpha", "beta")

			output, err := captureOutput(t, func() error {
				return runDump([]string{path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runDump() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}
