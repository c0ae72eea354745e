package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/stackkit/cmd/stackexplorer/logger"
)

// handleInputMode handles keys while typing a filter or an entry index
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Cancel input and drop any filter already applied
		m.inputMode = NormalMode
		m.inputBuffer = ""
		m.searchQuery = ""
		m.entryList.SetSearchFilter("")
		m.syncDetailPane()
		return m, nil

	case tea.KeyEnter:
		switch m.inputMode {
		case SearchMode:
			m.searchQuery = m.inputBuffer
			m.inputMode = NormalMode
			n := m.entryList.SetSearchFilter(m.searchQuery)
			m.syncDetailPane()
			if m.searchQuery == "" {
				m.statusMessage = "Filter cleared"
			} else {
				m.statusMessage = fmt.Sprintf("%d entries match %q", n, m.searchQuery)
			}
			return m, clearStatusAfter(2 * time.Second)
		case GoToEntryMode:
			input := m.inputBuffer
			m.inputMode = NormalMode
			m.inputBuffer = ""
			return m.handleJumpToEntry(input)
		default:
			return m, nil
		}

	case tea.KeyBackspace, tea.KeyDelete:
		if len(m.inputBuffer) > 0 {
			m.inputBuffer = m.inputBuffer[:len(m.inputBuffer)-1]
		}
		if m.inputMode == SearchMode {
			// Filter as the user edits
			m.entryList.SetSearchFilter(m.inputBuffer)
			m.syncDetailPane()
		}
		return m, nil

	case tea.KeyRunes:
		m.inputBuffer += string(msg.Runes)
		if m.inputMode == SearchMode {
			m.entryList.SetSearchFilter(m.inputBuffer)
			m.syncDetailPane()
		}
		return m, nil
	}

	return m, nil
}

// handleJumpToEntry moves the cursor to the entry with the given index
func (m Model) handleJumpToEntry(input string) (tea.Model, tea.Cmd) {
	input = strings.TrimSpace(input)
	if input == "" {
		return m, nil
	}

	index, err := strconv.Atoi(input)
	if err != nil {
		m.statusMessage = "Not an entry index: " + input
		return m, clearStatusAfter(2 * time.Second)
	}

	if m.entryList.JumpToEntry(index) {
		logger.Debug("jumped to entry", "index", index)
		m.focusedPane = ListPane
		m.syncDetailPane()
		return m, nil
	}

	m.statusMessage = fmt.Sprintf("Entry %d not found", index)
	return m, clearStatusAfter(2 * time.Second)
}
