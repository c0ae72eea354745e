package entrylist

import "strings"

// Entry is one stack entry prepared for display. Index 0 is the top of the
// stack. Payload is a private copy, so it stays valid after the arena it
// came from is released.
type Entry struct {
	Index   int
	Offset  int
	Size    int
	Payload []byte
}

// Preview renders the payload as display text: printable ASCII passes
// through, everything else becomes a dot.
func (e Entry) Preview() string {
	var b strings.Builder
	for _, c := range e.Payload {
		if c >= 32 && c <= 126 {
			b.WriteByte(c)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
