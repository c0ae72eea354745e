package entrylist

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#7D56F4")).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	normalRowStyle = lipgloss.NewStyle()

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)
)

// Model is the scrollable entry listing. It windows rendering to the
// visible rows, so navigation cost does not grow with the entry count.
type Model struct {
	entries []Entry
	visible []int // indices into entries that pass the filter
	filter  string

	cursor       int // position within visible
	scrollOffset int
	width        int
	height       int

	keys Keys
}

// NewModel creates an empty entry list.
func NewModel() Model {
	return Model{}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetKeys installs the navigation bindings.
func (m *Model) SetKeys(keys Keys) {
	m.keys = keys
}

// SetSize updates the render area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ArenaLoadedMsg:
		m.SetEntries(msg.Entries)
		return *m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.MoveDown()
		case key.Matches(msg, m.keys.PageUp):
			m.PageUp()
		case key.Matches(msg, m.keys.PageDown):
			m.PageDown()
		case key.Matches(msg, m.keys.Home):
			m.JumpToStart()
		case key.Matches(msg, m.keys.End):
			m.JumpToEnd()
		}
	}

	return *m, nil
}

// SetEntries replaces the listing. The active filter is re-applied and the
// cursor clamped to the new bounds.
func (m *Model) SetEntries(entries []Entry) {
	m.entries = entries
	m.applyFilter()
}

// SetSearchFilter narrows the listing to entries whose preview or hex
// rendering contains q (case-insensitive). An empty q restores the full
// listing. Returns the number of entries left visible.
func (m *Model) SetSearchFilter(q string) int {
	m.filter = q
	m.applyFilter()
	return len(m.visible)
}

// Filter returns the active search filter.
func (m *Model) Filter() string {
	return m.filter
}

func (m *Model) applyFilter() {
	q := strings.ToLower(m.filter)
	m.visible = m.visible[:0]
	for i, e := range m.entries {
		if q != "" {
			hay := strings.ToLower(e.Preview()) + " " + hex.EncodeToString(e.Payload)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		m.visible = append(m.visible, i)
	}

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// MoveTo moves the cursor to pos within the visible listing. Returns true
// if the cursor moved.
func (m *Model) MoveTo(pos int) bool {
	if pos < 0 || pos >= len(m.visible) || pos == m.cursor {
		return false
	}
	m.cursor = pos
	m.ensureCursorVisible()
	return true
}

// MoveUp moves the cursor up by one row.
func (m *Model) MoveUp() bool {
	return m.MoveTo(m.cursor - 1)
}

// MoveDown moves the cursor down by one row.
func (m *Model) MoveDown() bool {
	return m.MoveTo(m.cursor + 1)
}

// PageUp moves the cursor up by one screen.
func (m *Model) PageUp() {
	step := m.pageSize()
	if m.cursor-step < 0 {
		m.JumpToStart()
		return
	}
	m.MoveTo(m.cursor - step)
}

// PageDown moves the cursor down by one screen.
func (m *Model) PageDown() {
	step := m.pageSize()
	if m.cursor+step >= len(m.visible) {
		m.JumpToEnd()
		return
	}
	m.MoveTo(m.cursor + step)
}

// JumpToStart moves the cursor to the top entry.
func (m *Model) JumpToStart() {
	m.MoveTo(0)
}

// JumpToEnd moves the cursor to the bottom entry.
func (m *Model) JumpToEnd() {
	m.MoveTo(len(m.visible) - 1)
}

// JumpToEntry moves the cursor to the entry with the given stack index.
// Returns false when no visible entry carries that index.
func (m *Model) JumpToEntry(index int) bool {
	for pos, idx := range m.visible {
		if m.entries[idx].Index == index {
			m.MoveTo(pos)
			return true
		}
	}
	return false
}

func (m *Model) pageSize() int {
	if m.height > 1 {
		return m.height - 1
	}
	return 10
}

// ensureCursorVisible scrolls the window so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	visibleHeight := m.height
	if visibleHeight <= 0 {
		return
	}

	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visibleHeight {
		m.scrollOffset = m.cursor - visibleHeight + 1
	}

	maxOffset := len(m.visible) - visibleHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
}

// Cursor returns the cursor position within the visible listing.
func (m *Model) Cursor() int {
	return m.cursor
}

// ScrollOffset returns the index of the first rendered row.
func (m *Model) ScrollOffset() int {
	return m.scrollOffset
}

// CurrentEntry returns the entry under the cursor, or nil when the listing
// is empty.
func (m *Model) CurrentEntry() *Entry {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return &m.entries[m.visible[m.cursor]]
}

// Items returns the entries currently visible, in display order.
func (m *Model) Items() []Entry {
	items := make([]Entry, len(m.visible))
	for i, idx := range m.visible {
		items[i] = m.entries[idx]
	}
	return items
}

// TotalCount returns the number of entries before filtering.
func (m *Model) TotalCount() int {
	return len(m.entries)
}

// VisibleCount returns the number of entries that pass the filter.
func (m *Model) VisibleCount() int {
	return len(m.visible)
}

// View renders the visible window of the listing.
func (m Model) View() string {
	if len(m.entries) == 0 {
		return emptyStyle.Render("(stack is empty)")
	}
	if len(m.visible) == 0 {
		return emptyStyle.Render(fmt.Sprintf("(no entries match %q)", m.filter))
	}

	visibleHeight := m.height
	if visibleHeight <= 0 {
		visibleHeight = 20
	}

	start := m.scrollOffset
	end := start + visibleHeight
	if end > len(m.visible) {
		end = len(m.visible)
	}
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	for row := start; row < end; row++ {
		e := m.entries[m.visible[row]]
		b.WriteString(m.renderRow(e, row == m.cursor))
		if row < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderRow formats one listing line:
//
//	▸ [0] 0x00EF     4 B  |beta|
func (m Model) renderRow(e Entry, isCursor bool) string {
	prefix := "  "
	if isCursor {
		prefix = "▸ "
	}

	line := fmt.Sprintf("%s[%d] 0x%04X %5d B  |%s|", prefix, e.Index, e.Offset, e.Size, e.Preview())
	line = truncate(line, m.width)

	if isCursor {
		return selectedRowStyle.Render(line)
	}
	return normalRowStyle.Render(line)
}

// truncate shortens a line to the available width with an ellipsis.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
