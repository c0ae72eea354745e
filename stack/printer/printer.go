// Package printer renders stack arena images in human-readable text or
// JSON. It operates on raw image bytes, so it can print live arenas,
// on-disk files, and decoded snapshots alike.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/stackkit/internal/format"
)

const DefaultMaxPayloadBytes = 32

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// ShowEntries includes the entry listing, not just the header
	// summary.
	// Default: true
	ShowEntries bool

	// ShowPayloads includes payload bytes in the entry listing.
	// Default: true
	ShowPayloads bool

	// MaxPayloadBytes limits how many payload bytes are displayed per
	// entry. Longer payloads are truncated. Set to 0 for no limit.
	// Default: 32
	MaxPayloadBytes int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:          FormatText,
		ShowEntries:     true,
		ShowPayloads:    true,
		MaxPayloadBytes: DefaultMaxPayloadBytes,
	}
}

// Printer handles formatted output of stack images.
type Printer struct {
	opts   Options
	writer io.Writer
	data   []byte
}

// New creates a Printer over a raw arena image.
func New(data []byte, w io.Writer, opts Options) *Printer {
	return &Printer{
		opts:   opts,
		writer: w,
		data:   data,
	}
}

// Print renders the whole image: a header summary followed by the entries,
// top first.
func (p *Printer) Print() error {
	h, err := format.ParseHeader(p.data)
	if err != nil {
		return err
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printImageJSON(h)
	case FormatText, "":
		return p.printImageText(h)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}

// PrintEntry renders a single entry by its index from the top of the stack
// (index 0 is the top entry).
func (p *Printer) PrintEntry(index int) error {
	h, err := format.ParseHeader(p.data)
	if err != nil {
		return err
	}
	found := false
	err = p.walkEntries(h, func(idx int, e format.Entry) error {
		if idx != index {
			return nil
		}
		found = true
		switch p.opts.Format {
		case FormatJSON:
			return p.printEntryJSON(idx, e)
		default:
			return p.printEntryText(idx, e)
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("printer: entry %d not found (stack has %d entries)",
			index, h.EntryCount)
	}
	return nil
}

// walkEntries calls fn for every entry in the image, top first. The header
// is trusted for the region bounds; a corrupt size field aborts the walk.
func (p *Printer) walkEntries(h format.Header, fn func(int, format.Entry) error) error {
	region := p.data[format.HeaderSize : format.HeaderSize+int(h.Capacity)]
	off := int(h.Top)
	idx := 0
	for off < int(h.Capacity) {
		e, err := format.ParseEntryAt(region, off)
		if err != nil {
			return fmt.Errorf("printer: entry %d: %w", idx, err)
		}
		if err := fn(idx, e); err != nil {
			return err
		}
		off = e.NextOffset()
		idx++
	}
	return nil
}

// clip returns payload truncated to the configured display limit and
// whether truncation occurred.
func (p *Printer) clip(payload []byte) ([]byte, bool) {
	max := p.opts.MaxPayloadBytes
	if max <= 0 || len(payload) <= max {
		return payload, false
	}
	return payload[:max], true
}
