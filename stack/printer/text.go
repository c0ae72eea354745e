package printer

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/stackkit/internal/format"
)

// printImageText prints the header summary and entry listing in
// human-readable text format.
func (p *Printer) printImageText(h format.Header) error {
	used := int(h.Capacity) - int(h.Top)
	fmt.Fprintf(p.writer, "stack image: version=%d capacity=%d used=%d free=%d entries=%d checksum=0x%08X\n",
		h.Version, h.Capacity, used, h.Top, h.EntryCount, h.Checksum)

	if !p.opts.ShowEntries {
		return nil
	}
	return p.walkEntries(h, p.printEntryText)
}

// printEntryText prints one entry line:
//
//	[0] offset=0x03F4 size=5   68 65 6C 6C 6F  |hello|
func (p *Printer) printEntryText(idx int, e format.Entry) error {
	fmt.Fprintf(p.writer, "[%d] offset=0x%04X size=%d", idx, e.Offset, e.Size)

	if p.opts.ShowPayloads && e.Size > 0 {
		shown, truncated := p.clip(e.Payload)
		fmt.Fprintf(p.writer, "  % X  |%s|", shown, preview(shown))
		if truncated {
			fmt.Fprintf(p.writer, " ... (%d bytes)", e.Size)
		}
	}

	fmt.Fprintln(p.writer)
	return nil
}

// preview renders payload bytes as display text. Plain ASCII passes
// through; extended characters (0x80-0xFF) are decoded as Windows-1252,
// matching how most tooling that feeds byte stacks encodes text. Anything
// unprintable becomes a dot.
func preview(data []byte) string {
	ascii := true
	for _, b := range data {
		if b >= 0x80 {
			ascii = false
			break
		}
	}

	var text string
	if ascii {
		text = string(data)
	} else {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			decoded = data
		}
		text = string(decoded)
	}

	var sb strings.Builder
	for _, r := range text {
		if r < 0x20 || r == 0x7F || r == '�' {
			sb.WriteByte('.')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
