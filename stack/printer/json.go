package printer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/joshuapare/stackkit/internal/format"
)

// jsonImage represents a stack image in JSON format.
type jsonImage struct {
	Version    int         `json:"version"`
	Capacity   int         `json:"capacity"`
	Used       int         `json:"used"`
	Free       int         `json:"free"`
	EntryCount int         `json:"entry_count"`
	Checksum   string      `json:"checksum"`
	Entries    []jsonEntry `json:"entries,omitempty"`
}

// jsonEntry represents one entry in JSON format.
type jsonEntry struct {
	Index     int    `json:"index"`
	Offset    int    `json:"offset"`
	Size      int    `json:"size"`
	Data      string `json:"data,omitempty"`
	Preview   string `json:"preview,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
}

// printImageJSON prints the whole image as one JSON document.
func (p *Printer) printImageJSON(h format.Header) error {
	img := jsonImage{
		Version:    int(h.Version),
		Capacity:   int(h.Capacity),
		Used:       int(h.Capacity) - int(h.Top),
		Free:       int(h.Top),
		EntryCount: int(h.EntryCount),
		Checksum:   fmt.Sprintf("0x%08X", h.Checksum),
	}

	if p.opts.ShowEntries {
		err := p.walkEntries(h, func(idx int, e format.Entry) error {
			img.Entries = append(img.Entries, p.jsonEntryOf(idx, e))
			return nil
		})
		if err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(img, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// printEntryJSON prints a single entry as one JSON document.
func (p *Printer) printEntryJSON(idx int, e format.Entry) error {
	data, err := json.MarshalIndent(p.jsonEntryOf(idx, e), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

func (p *Printer) jsonEntryOf(idx int, e format.Entry) jsonEntry {
	je := jsonEntry{
		Index:  idx,
		Offset: e.Offset,
		Size:   e.Size,
	}
	if p.opts.ShowPayloads && e.Size > 0 {
		shown, truncated := p.clip(e.Payload)
		je.Data = hex.EncodeToString(shown)
		je.Preview = preview(shown)
		je.Truncated = truncated
	}
	return je
}
