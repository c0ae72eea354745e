package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/stackkit/cmd/stackexplorer/entrylist"
)

// TestHelper drives the TUI model directly, without a terminal. Tests feed
// it key and window messages and inspect the resulting model and view.
type TestHelper struct {
	model Model
}

// NewTestHelper creates a helper around a fresh model with a usable
// window size already applied.
func NewTestHelper(imagePath string) *TestHelper {
	h := &TestHelper{model: NewModel(imagePath)}
	h.SendWindowSize(120, 40)
	return h
}

// SendKey sends a special key (arrows, enter, esc) to the model.
func (h *TestHelper) SendKey(keyType tea.KeyType) {
	model, _ := h.model.Update(tea.KeyMsg{Type: keyType})
	h.model = model.(Model)
}

// SendKeyRune sends a printable key to the model.
func (h *TestHelper) SendKeyRune(r rune) {
	model, _ := h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	h.model = model.(Model)
}

// SendWindowSize resizes the model's window.
func (h *TestHelper) SendWindowSize(width, height int) {
	model, _ := h.model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	h.model = model.(Model)
}

// LoadEntries feeds the model a completed load with the given entries and
// no live arena handle.
func (h *TestHelper) LoadEntries(entries []entrylist.Entry) {
	model, _ := h.model.Update(entrylist.ArenaLoadedMsg{Entries: entries})
	h.model = model.(Model)
}

// GetModel returns the current model state.
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView renders the current view.
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// GetFocusedPane returns which pane has focus.
func (h *TestHelper) GetFocusedPane() Pane {
	return h.model.focusedPane
}

// GetCursor returns the entry list cursor position.
func (h *TestHelper) GetCursor() int {
	return h.model.entryList.Cursor()
}

// GetCurrentEntry returns the entry under the cursor, or nil.
func (h *TestHelper) GetCurrentEntry() *entrylist.Entry {
	return h.model.entryList.CurrentEntry()
}

// CreateTestEntries builds n entries laid out the way a real arena would
// be: entry 0 is the top of the stack and sits lowest in the region.
func CreateTestEntries(n int) []entrylist.Entry {
	entries := make([]entrylist.Entry, n)
	off := 1024
	for i := n - 1; i >= 0; i-- {
		payload := []byte(fmt.Sprintf("entry-%d payload", i))
		off -= len(payload) + 4
		entries[i] = entrylist.Entry{
			Index:   i,
			Offset:  off,
			Size:    len(payload),
			Payload: payload,
		}
	}
	return entries
}
