package hexview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/stackkit/cmd/stackexplorer/entrylist"
)

// DetailDisplayMode determines how the detail view is shown
type DetailDisplayMode int

const (
	DetailModeModal DetailDisplayMode = iota // Popup overlay
	DetailModePane                           // Right-hand pane
)

// Model shows the full payload of a selected entry as an annotated hex
// dump.
type Model struct {
	entry       *entrylist.Entry
	displayMode DetailDisplayMode
	viewport    viewport.Model
	width       int
	height      int
	visible     bool
}

// NewModel creates a new hex detail model
func NewModel(mode DetailDisplayMode) Model {
	return Model{
		displayMode: mode,
		viewport:    viewport.New(0, 0),
		visible:     false,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Show displays details for an entry
func (m *Model) Show(entry *entrylist.Entry) {
	m.entry = entry
	m.visible = true
	m.updateContent()
}

// SetEntry updates the displayed entry without changing visibility. Used
// by the pane mode, which tracks the list cursor continuously.
func (m *Model) SetEntry(entry *entrylist.Entry) {
	m.entry = entry
	m.updateContent()
}

// Hide closes the detail view
func (m *Model) Hide() {
	m.visible = false
	m.entry = nil
}

// IsVisible returns whether the detail view is currently shown
func (m *Model) IsVisible() bool {
	return m.visible
}

// DisplayMode returns the current display mode
func (m *Model) DisplayMode() DetailDisplayMode {
	return m.displayMode
}

// Entry returns the entry under display, or nil.
func (m *Model) Entry() *entrylist.Entry {
	return m.entry
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportSize()
		m.updateContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SetSize sets the pane dimensions directly. The modal mode sizes itself
// from the window instead.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.updateContent()
}

// updateViewportSize adjusts viewport dimensions based on display mode
func (m *Model) updateViewportSize() {
	switch m.displayMode {
	case DetailModeModal:
		// Modal takes 80% of screen, centered
		// Account for: border (2 lines) + padding (2 lines top+bottom) = 4 vertical
		//             border (2 cols) + padding (4 cols left+right) = 6 horizontal
		m.viewport.Width = int(float64(m.width)*0.8) - 6
		m.viewport.Height = int(float64(m.height)*0.8) - 4
	case DetailModePane:
		m.viewport.Width = m.width
		m.viewport.Height = m.height
	}
}

// updateContent generates the detailed view content
func (m *Model) updateContent() {
	if m.entry == nil {
		m.viewport.SetContent("")
		return
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("Entry %d", m.entry.Index)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Offset:  0x%04X\n", m.entry.Offset))
	b.WriteString(fmt.Sprintf("Size:    %d bytes\n", m.entry.Size))
	b.WriteString("\n")

	b.WriteString("Payload:\n")
	ruler := m.viewport.Width - 2
	if ruler < 8 {
		ruler = 8
	}
	b.WriteString(strings.Repeat("─", ruler))
	b.WriteString("\n")
	b.WriteString(FormatHexDump(m.entry.Payload))
	b.WriteString("\n")

	m.viewport.SetContent(b.String())
}

// FormatHexDump creates a hex dump with ASCII sidebar
func FormatHexDump(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}

	var b strings.Builder
	const bytesPerLine = 16

	for offset := 0; offset < len(data); offset += bytesPerLine {
		// Offset
		b.WriteString(fmt.Sprintf("%08x  ", offset))

		// Hex bytes
		lineEnd := offset + bytesPerLine
		if lineEnd > len(data) {
			lineEnd = len(data)
		}

		for i := offset; i < lineEnd; i++ {
			b.WriteString(fmt.Sprintf("%02x ", data[i]))
			if i == offset+7 {
				b.WriteString(" ") // Extra space in the middle
			}
		}

		// Padding for incomplete lines
		remaining := bytesPerLine - (lineEnd - offset)
		for i := 0; i < remaining; i++ {
			b.WriteString("   ")
		}
		if remaining > 8 {
			b.WriteString(" ")
		}

		// ASCII representation
		b.WriteString(" |")
		for i := offset; i < lineEnd; i++ {
			if data[i] >= 32 && data[i] <= 126 {
				b.WriteByte(data[i])
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|")

		if lineEnd < len(data) {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// View renders the detail view
func (m Model) View() string {
	if m.displayMode == DetailModePane {
		if m.entry == nil {
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				Render("(no entry selected)")
		}
		return m.viewport.View()
	}

	if !m.visible || m.entry == nil {
		return ""
	}
	return m.viewModal()
}

// viewModal renders as a centered popup
func (m Model) viewModal() string {
	// The overlay package handles centering, so we just render the box.
	// The viewport is already sized to fit within the border+padding.
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	return borderStyle.Render(m.viewport.View())
}
