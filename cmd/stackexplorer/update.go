package main

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/stackkit/cmd/stackexplorer/entrylist"
	"github.com/joshuapare/stackkit/cmd/stackexplorer/hexview"
	"github.com/joshuapare/stackkit/cmd/stackexplorer/logger"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// If help is showing, handle help keys
		if m.showHelp {
			if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
				return m, nil
			}
			// Ignore other keys when help is showing
			return m, nil
		}

		// If the detail modal is open, handle its keys
		if m.detailModal.IsVisible() {
			if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Enter) {
				m.detailModal.Hide()
				return m, nil
			}
			// Forward scroll keys to the modal viewport
			if key.Matches(msg, m.keys.Up) || key.Matches(msg, m.keys.Down) ||
				key.Matches(msg, m.keys.PageUp) || key.Matches(msg, m.keys.PageDown) {
				var model tea.Model
				model, cmd = (&m.detailModal).Update(msg)
				m.detailModal = *model.(*hexview.Model)
				if cmd != nil {
					cmds = append(cmds, cmd)
				}
				return m, tea.Batch(cmds...)
			}
			// Still allow quit
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			// Ignore other keys when the modal is open
			return m, nil
		}

		// Handle input modes (filter, jump to entry)
		if m.inputMode == SearchMode || m.inputMode == GoToEntryMode {
			return m.handleInputMode(msg)
		}

		// Global keys
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		// Clear filter (Esc in normal mode)
		if key.Matches(msg, m.keys.Esc) && m.searchQuery != "" {
			m.searchQuery = ""
			m.entryList.SetSearchFilter("")
			m.syncDetailPane()
			m.statusMessage = "Filter cleared"
			return m, clearStatusAfter(2 * time.Second)
		}

		// Enter filter mode
		if key.Matches(msg, m.keys.Search) {
			m.inputMode = SearchMode
			m.inputBuffer = ""
			return m, nil
		}

		// Enter jump-to-entry mode
		if key.Matches(msg, m.keys.Jump) {
			m.inputMode = GoToEntryMode
			m.inputBuffer = ""
			return m, nil
		}

		// Show help overlay
		if key.Matches(msg, m.keys.Help) {
			m.showHelp = true
			return m, nil
		}

		// Reload the image from disk
		if key.Matches(msg, m.keys.Refresh) {
			m.statusMessage = "Reloading..."
			return m, entrylist.LoadArena(m.imagePath)
		}

		// Copy the selected payload
		if key.Matches(msg, m.keys.Copy) {
			return m.handleCopy(true)
		}
		if key.Matches(msg, m.keys.CopyText) {
			return m.handleCopy(false)
		}

		// Switch panes
		if key.Matches(msg, m.keys.Tab) {
			if m.focusedPane == ListPane {
				m.focusedPane = DetailPane
			} else {
				m.focusedPane = ListPane
			}
			return m, nil
		}

		// Open the detail modal for the selected entry
		if key.Matches(msg, m.keys.Enter) && m.focusedPane == ListPane {
			if e := m.entryList.CurrentEntry(); e != nil {
				m.detailModal.Show(e)
			}
			return m, nil
		}

		// Forward navigation to the focused pane
		switch m.focusedPane {
		case ListPane:
			m.entryList, cmd = m.entryList.Update(msg)
			m.syncDetailPane()
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		case DetailPane:
			var model tea.Model
			model, cmd = (&m.detailPane).Update(msg)
			m.detailPane = *model.(*hexview.Model)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()

		// The modal sizes itself from the full window
		var model tea.Model
		model, cmd = (&m.detailModal).Update(msg)
		m.detailModal = *model.(*hexview.Model)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case entrylist.ArenaLoadedMsg:
		logger.Debug("arena loaded", "entries", len(msg.Entries))

		// Swap in the fresh handle; the old arena is dead now
		if m.arena != nil {
			m.arena.Release()
		}
		m.arena = msg.Arena
		m.err = nil

		m.entryList, cmd = m.entryList.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.searchQuery != "" {
			m.entryList.SetSearchFilter(m.searchQuery)
		}
		m.syncDetailPane()

		m.statusMessage = fmt.Sprintf("Loaded %d entries", len(msg.Entries))
		cmds = append(cmds, clearStatusAfter(2*time.Second))

	case entrylist.ErrMsg:
		logger.Error("arena load failed", "error", msg.Err)
		m.err = msg.Err

	case clearStatusMsg:
		m.statusMessage = ""
	}

	return m, tea.Batch(cmds...)
}

// handleCopy puts the selected payload on the system clipboard, as a hex
// string or as display text.
func (m Model) handleCopy(asHex bool) (tea.Model, tea.Cmd) {
	e := m.entryList.CurrentEntry()
	if e == nil {
		m.statusMessage = "Nothing to copy"
		return m, clearStatusAfter(2 * time.Second)
	}

	var text string
	if asHex {
		text = hex.EncodeToString(e.Payload)
	} else {
		text = e.Preview()
	}

	if err := clipboard.WriteAll(text); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		m.statusMessage = "Copy failed: " + err.Error()
	} else if asHex {
		m.statusMessage = fmt.Sprintf("Copied entry %d as hex (%d bytes)", e.Index, e.Size)
	} else {
		m.statusMessage = fmt.Sprintf("Copied entry %d as text", e.Index)
	}
	return m, clearStatusAfter(2 * time.Second)
}

// syncDetailPane keeps the right-hand pane on the entry under the cursor.
func (m *Model) syncDetailPane() {
	m.detailPane.SetEntry(m.entryList.CurrentEntry())
}

// resizePanes distributes the window across the list and detail panes.
func (m *Model) resizePanes() {
	listWidth, detailWidth, listViewHeight, detailViewHeight := m.layout()
	m.entryList.SetSize(listWidth-4, listViewHeight)
	m.detailPane.SetSize(detailWidth-4, detailViewHeight)
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
