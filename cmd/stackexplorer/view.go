package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/joshuapare/stackkit/internal/format"
)

// View renders the whole application
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	if m.detailModal.IsVisible() {
		// Float the hex detail over a dimmed main view
		background := NewMainViewModel(&m)
		detailOverlay := overlay.New(
			&m.detailModal,
			background,
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return detailOverlay.View()
	}

	return m.renderMain()
}

// renderMain renders the normal header/content/status layout.
func (m Model) renderMain() string {
	header := m.renderHeader()
	content := m.renderContent()
	status := m.renderStatus()
	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

// layout splits the window between the two panes. The left column stacks the
// entry list above the arena info panel; the detail pane spans the full right
// column, so its view height is the left column's total minus its own title.
func (m Model) layout() (listWidth, detailWidth, listViewHeight, detailViewHeight int) {
	listWidth = m.width / 2
	detailWidth = m.width - listWidth

	paneHeight := max(m.height-8, 5)
	listViewHeight = max(paneHeight-InfoPanelHeight-2, 5)
	detailViewHeight = listViewHeight + InfoPanelHeight + 2
	return listWidth, detailWidth, listViewHeight, detailViewHeight
}

func (m Model) renderHeader() string {
	title := headerStyle.Render("Stack Arena Explorer")

	imageName := fmt.Sprintf("Image: %s", m.imagePath)
	if m.width > 30 {
		imageName = truncate(imageName, m.width-24)
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		lipgloss.NewStyle().Render("  "),
		pathStyle.Render(imageName),
	)

	if e := m.entryList.CurrentEntry(); e != nil {
		selected := fmt.Sprintf("Entry %d of %d  offset=0x%04X  size=%d bytes",
			e.Index, m.entryList.TotalCount(), e.Offset, e.Size)
		header = lipgloss.JoinVertical(lipgloss.Left, header, pathStyle.Render(selected))
	}

	return header
}

func (m Model) renderContent() string {
	listWidth, detailWidth, listViewHeight, detailViewHeight := m.layout()

	listTitle := "Entries"
	if m.searchQuery != "" {
		listTitle = fmt.Sprintf("Entries (%d/%d)", m.entryList.VisibleCount(), m.entryList.TotalCount())
	} else if n := m.entryList.TotalCount(); n > 0 {
		listTitle = fmt.Sprintf("Entries (%d)", n)
	}

	listContent := lipgloss.NewStyle().
		Width(listWidth - 4).
		Height(listViewHeight).
		Render(m.entryList.View())

	listBoxStyle := paneStyle
	if m.focusedPane == ListPane {
		listBoxStyle = activePaneStyle
	}
	listBox := listBoxStyle.
		Width(listWidth - 2).
		Height(listViewHeight + 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, listTitle, listContent))

	leftColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		listBox,
		m.renderInfoPanel(listWidth-2),
	)

	detailTitle := "Detail"
	if e := m.entryList.CurrentEntry(); e != nil {
		detailTitle = fmt.Sprintf("Detail [entry %d]", e.Index)
	}

	detailContent := lipgloss.NewStyle().
		Width(detailWidth - 4).
		Height(detailViewHeight).
		Render(m.detailPane.View())

	detailBoxStyle := paneStyle
	if m.focusedPane == DetailPane {
		detailBoxStyle = activePaneStyle
	}
	detailBox := detailBoxStyle.
		Width(detailWidth - 2).
		Height(detailViewHeight + 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, detailTitle, detailContent))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, detailBox)
}

// renderInfoPanel shows the arena header fields below the entry list.
func (m Model) renderInfoPanel(width int) string {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(infoLabelStyle.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(infoValueStyle.Render(value))
		b.WriteString("\n")
	}

	if m.arena != nil && m.arena.IsValid() {
		line("Version", fmt.Sprintf("%d", m.arena.Version()))
		line("Capacity", fmt.Sprintf("%d bytes", m.arena.Capacity()))
		line("Used", fmt.Sprintf("%d bytes", m.arena.UsedSize()))
		line("Free", fmt.Sprintf("%d bytes", m.arena.FreeSize()))
		line("Entries", fmt.Sprintf("%d", m.arena.EntryCount()))
		if h, err := format.ParseHeader(m.arena.Bytes()); err == nil {
			line("Checksum", fmt.Sprintf("0x%08X", h.Checksum))
		}
	} else {
		b.WriteString(infoLabelStyle.Render("(no arena loaded)"))
	}

	return paneStyle.
		Width(width).
		Height(InfoPanelHeight).
		Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderStatus() string {
	// Input prompts replace the whole status line while typing
	switch m.inputMode {
	case SearchMode:
		prompt := searchPromptStyle.Render("Filter: ") + m.inputBuffer + "█"
		return statusStyle.Width(m.width).Render(prompt)
	case GoToEntryMode:
		prompt := searchPromptStyle.Render("Go to entry: ") + m.inputBuffer + "█"
		return statusStyle.Width(m.width).Render(prompt)
	}

	if m.statusMessage != "" {
		return statusStyle.Width(m.width).Render(searchPromptStyle.Render(m.statusMessage))
	}

	var help strings.Builder
	if m.focusedPane == ListPane {
		help.WriteString(helpStyle.Render("↑/↓: Navigate"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("Enter: Detail"))
		help.WriteString(" │ ")
		if m.searchQuery != "" {
			help.WriteString(helpStyle.Render("Esc: Clear filter"))
			help.WriteString(" │ ")
		}
		help.WriteString(helpStyle.Render("/: Filter"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("^G: Jump"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("c: Copy"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("?: Help"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("q: Quit"))
	} else {
		help.WriteString(helpStyle.Render("↑/↓: Scroll"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("Tab: Back to list"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("c: Copy"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("?: Help"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("q: Quit"))
	}

	var stats strings.Builder
	stats.WriteString(statusCountStyle.Render(fmt.Sprintf("%d", m.entryList.VisibleCount())))
	if m.searchQuery != "" {
		stats.WriteString(helpStyle.Render(fmt.Sprintf("/%d", m.entryList.TotalCount())))
	}
	stats.WriteString(helpStyle.Render(" entries"))
	if m.arena != nil && m.arena.IsValid() {
		stats.WriteString(helpStyle.Render(" │ "))
		stats.WriteString(statusCountStyle.Render(fmt.Sprintf("%d", m.arena.UsedSize())))
		stats.WriteString(helpStyle.Render(" B used │ "))
		stats.WriteString(statusCountStyle.Render(fmt.Sprintf("%d", m.arena.FreeSize())))
		stats.WriteString(helpStyle.Render(" B free"))
	}
	if m.searchQuery != "" {
		stats.WriteString(helpStyle.Render(" │ "))
		stats.WriteString(searchPromptStyle.Render("Filter: "))
		stats.WriteString(pathStyle.Render(fmt.Sprintf("%q", m.searchQuery)))
	}

	statusLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		help.String(),
		lipgloss.NewStyle().Width(4).Render(""),
		stats.String(),
	)

	return statusStyle.Width(m.width).Render(statusLine)
}

func (m Model) renderHelpOverlay() string {
	var b strings.Builder

	b.WriteString(helpTitleStyle.Render("Stack Arena Explorer Help"))
	b.WriteString("\n\n")

	section := func(title string, rows [][2]string) {
		b.WriteString(helpTitleStyle.Render(title))
		b.WriteString("\n")
		for _, row := range rows {
			b.WriteString(helpKeyStyle.Render(row[0]))
			b.WriteString(helpDescStyle.Render(row[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	section("Navigation", [][2]string{
		{"↑/k ↓/j", "Move between entries"},
		{"PgUp/PgDn", "Move a page at a time"},
		{"Home/g End/G", "Jump to first / last entry"},
		{"Tab", "Switch between list and detail"},
	})

	section("Actions", [][2]string{
		{"Enter", "Open the payload hex dump"},
		{"c", "Copy payload to clipboard as hex"},
		{"y", "Copy payload to clipboard as text"},
		{"F5", "Reload the image from disk"},
	})

	section("Search", [][2]string{
		{"/", "Filter entries as you type"},
		{"Ctrl+G", "Jump to an entry by index"},
		{"Esc", "Cancel input or clear the filter"},
	})

	section("Other", [][2]string{
		{"?", "Toggle this help"},
		{"q / Ctrl+C", "Quit"},
	})

	b.WriteString(helpDescStyle.Render("Press Esc, ?, or q to close this help."))

	helpBox := modalStyle.Width(60).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
