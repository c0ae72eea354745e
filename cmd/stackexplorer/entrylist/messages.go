package entrylist

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/stackkit/stack"
)

// ArenaLoadedMsg carries a freshly loaded arena and its entries. The
// receiver owns the handle and must Release it when done with it.
type ArenaLoadedMsg struct {
	Arena   *stack.Stack
	Entries []Entry
}

// ErrMsg reports a failed load.
type ErrMsg struct{ Err error }

func (e ErrMsg) Error() string { return e.Err.Error() }

// LoadArena reads a stack image from disk and walks its entries, top
// first. Payloads are copied out of the arena buffer so the entries stay
// usable after the handle is released.
func LoadArena(path string) tea.Cmd {
	return func() tea.Msg {
		s, err := stack.LoadImage(path)
		if err != nil {
			return ErrMsg{fmt.Errorf("failed to load image: %w", err)}
		}

		entries := make([]Entry, 0, s.EntryCount())
		it := s.Entries()
		for {
			e, err := it.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				s.Release()
				return ErrMsg{fmt.Errorf("failed to walk entries: %w", err)}
			}
			entries = append(entries, Entry{
				Index:   e.Index,
				Offset:  e.Offset,
				Size:    e.Size,
				Payload: append([]byte(nil), e.Payload...),
			})
		}

		return ArenaLoadedMsg{Arena: s, Entries: entries}
	}
}
