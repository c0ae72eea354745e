package stack

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/stackkit/stack/printer"
)

// Print writes a formatted rendering of the arena to w.
//
// The output format is controlled by the Options.Format field (text or
// json). By default the header summary and every entry are printed, with
// payloads truncated for display.
//
// Example:
//
//	s, _ := stack.New(1024)
//	defer s.Release()
//	s.Push([]byte("hello"))
//
//	opts := printer.DefaultOptions()
//	opts.Format = printer.FormatJSON
//	s.Print(os.Stdout, opts)
func (s *Stack) Print(w io.Writer, opts printer.Options) error {
	if !s.IsValid() {
		return fmt.Errorf("print: %w", ErrInvalid)
	}
	return printer.New(s.data, w, opts).Print()
}

// Dump writes a plain-text rendering of the arena to w using default
// options. Unlike Print it never fails on an invalid handle; it prints a
// diagnostic line instead, so it is safe to drop into logging paths.
func (s *Stack) Dump(w io.Writer) error {
	if !s.IsValid() {
		_, err := fmt.Fprintln(w, "stack: <invalid handle>")
		return err
	}
	return printer.New(s.data, w, printer.DefaultOptions()).Print()
}

// DumpString returns Dump's output as a string.
func (s *Stack) DumpString() string {
	var sb strings.Builder
	_ = s.Dump(&sb)
	return sb.String()
}
