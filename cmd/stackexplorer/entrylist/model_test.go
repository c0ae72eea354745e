package entrylist

import (
	"fmt"
	"strings"
	"testing"
)

// makeEntries builds n entries laid out the way a real arena would be,
// with entry 0 on top at the lowest offset.
func makeEntries(n int) []Entry {
	entries := make([]Entry, n)
	off := 2048
	for i := n - 1; i >= 0; i-- {
		payload := []byte(fmt.Sprintf("payload-%d", i))
		off -= len(payload) + 4
		entries[i] = Entry{Index: i, Offset: off, Size: len(payload), Payload: payload}
	}
	return entries
}

func TestEmptyListView(t *testing.T) {
	m := NewModel()
	m.SetSize(60, 10)

	if got := m.View(); !strings.Contains(got, "(stack is empty)") {
		t.Errorf("empty list view = %q, want the empty placeholder", got)
	}
	if m.CurrentEntry() != nil {
		t.Error("CurrentEntry should be nil for an empty list")
	}
}

func TestNavigationClamps(t *testing.T) {
	m := NewModel()
	m.SetSize(60, 10)
	m.SetEntries(makeEntries(5))

	if m.MoveUp() {
		t.Error("MoveUp at the top row should not move")
	}
	if !m.MoveDown() {
		t.Error("MoveDown should move off the top row")
	}
	if got := m.Cursor(); got != 1 {
		t.Errorf("cursor = %d after MoveDown, want 1", got)
	}

	m.JumpToEnd()
	if got := m.Cursor(); got != 4 {
		t.Errorf("cursor = %d after JumpToEnd, want 4", got)
	}
	if m.MoveDown() {
		t.Error("MoveDown at the bottom row should not move")
	}

	m.JumpToStart()
	if got := m.Cursor(); got != 0 {
		t.Errorf("cursor = %d after JumpToStart, want 0", got)
	}
}

func TestPageMovement(t *testing.T) {
	m := NewModel()
	m.SetSize(60, 10) // page size 9
	m.SetEntries(makeEntries(30))

	m.PageDown()
	if got := m.Cursor(); got != 9 {
		t.Errorf("cursor = %d after PageDown, want 9", got)
	}
	m.PageDown()
	m.PageDown()
	if got := m.Cursor(); got != 27 {
		t.Errorf("cursor = %d after three pages, want 27", got)
	}

	// A partial page lands on the last row
	m.PageDown()
	if got := m.Cursor(); got != 29 {
		t.Errorf("cursor = %d after paging past the end, want 29", got)
	}

	m.PageUp()
	if got := m.Cursor(); got != 20 {
		t.Errorf("cursor = %d after PageUp, want 20", got)
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	m := NewModel()
	m.SetSize(60, 5)
	m.SetEntries(makeEntries(20))

	for i := 0; i < 12; i++ {
		m.MoveDown()
	}
	if got := m.Cursor(); got != 12 {
		t.Fatalf("cursor = %d, want 12", got)
	}
	if got := m.ScrollOffset(); got != 8 {
		t.Errorf("scrollOffset = %d, want 8", got)
	}

	view := m.View()
	if !strings.Contains(view, "▸ [12]") {
		t.Error("view should mark the cursor row")
	}
	if strings.Contains(view, "[5]") {
		t.Error("rows above the window should not render")
	}

	m.JumpToStart()
	if got := m.ScrollOffset(); got != 0 {
		t.Errorf("scrollOffset = %d after JumpToStart, want 0", got)
	}
}

func TestFilterNarrowsAndRestores(t *testing.T) {
	m := NewModel()
	m.SetSize(60, 10)
	m.SetEntries([]Entry{
		{Index: 0, Offset: 0x100, Size: 5, Payload: []byte("alpha")},
		{Index: 1, Offset: 0x10C, Size: 4, Payload: []byte("beta")},
		{Index: 2, Offset: 0x118, Size: 8, Payload: []byte("alphabet")},
		{Index: 3, Offset: 0x124, Size: 2, Payload: []byte{0xDE, 0xAD}},
	})

	if n := m.SetSearchFilter("alpha"); n != 2 {
		t.Errorf("filter %q left %d entries, want 2", "alpha", n)
	}
	items := m.Items()
	if len(items) != 2 || items[0].Index != 0 || items[1].Index != 2 {
		t.Errorf("filtered items = %+v, want entries 0 and 2", items)
	}

	// Matching is case-insensitive
	if n := m.SetSearchFilter("ALPHA"); n != 2 {
		t.Errorf("filter %q left %d entries, want 2", "ALPHA", n)
	}

	// The hex spelling of a payload matches too
	if n := m.SetSearchFilter("dead"); n != 1 {
		t.Errorf("filter %q left %d entries, want 1", "dead", n)
	}
	if e := m.CurrentEntry(); e == nil || e.Index != 3 {
		t.Errorf("CurrentEntry after hex filter = %+v, want entry 3", e)
	}

	if n := m.SetSearchFilter("zzz"); n != 0 {
		t.Errorf("filter %q left %d entries, want 0", "zzz", n)
	}
	if m.CurrentEntry() != nil {
		t.Error("CurrentEntry should be nil when nothing matches")
	}
	if view := m.View(); !strings.Contains(view, `(no entries match "zzz")`) {
		t.Errorf("view = %q, want the no-match placeholder", view)
	}

	if n := m.SetSearchFilter(""); n != 4 {
		t.Errorf("clearing the filter left %d entries, want 4", n)
	}
}

func TestJumpToEntry(t *testing.T) {
	m := NewModel()
	m.SetSize(60, 10)
	m.SetEntries(makeEntries(10))

	if !m.JumpToEntry(7) {
		t.Fatal("JumpToEntry(7) should find the entry")
	}
	if got := m.Cursor(); got != 7 {
		t.Errorf("cursor = %d after JumpToEntry(7), want 7", got)
	}
	if !m.JumpToEntry(7) {
		t.Error("jumping to the current row should still report found")
	}
	if m.JumpToEntry(42) {
		t.Error("JumpToEntry(42) should report not found")
	}

	// Filtered-out entries are not reachable
	m.SetSearchFilter("payload-3")
	if m.JumpToEntry(7) {
		t.Error("hidden entries should not be reachable")
	}
	if !m.JumpToEntry(3) {
		t.Error("the matching entry should still be reachable")
	}
}

func TestViewMarksCursorRow(t *testing.T) {
	m := NewModel()
	m.SetSize(80, 10)
	m.SetEntries(makeEntries(3))

	m.MoveDown()
	view := m.View()
	if !strings.Contains(view, "▸ [1]") {
		t.Error("cursor row should carry the marker")
	}
	if strings.Contains(view, "▸ [0]") {
		t.Error("only the cursor row should carry the marker")
	}
	if !strings.Contains(view, "|payload-1|") {
		t.Error("rows should show the payload preview")
	}
}

func TestRowTruncation(t *testing.T) {
	m := NewModel()
	m.SetSize(20, 5)
	m.SetEntries(makeEntries(1))

	if view := m.View(); !strings.Contains(view, "...") {
		t.Errorf("view = %q, want rows truncated to the pane width", view)
	}
}
