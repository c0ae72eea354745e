package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/stackkit/cmd/stackexplorer/entrylist"
	"github.com/joshuapare/stackkit/cmd/stackexplorer/hexview"
	"github.com/joshuapare/stackkit/stack"
)

// Pane represents which pane is focused
type Pane int

const (
	ListPane Pane = iota
	DetailPane
)

// Layout constants
const (
	InfoPanelHeight = 7 // Height reserved for the arena info display
)

// InputMode represents different input modes
type InputMode int

const (
	NormalMode InputMode = iota
	SearchMode
	GoToEntryMode
)

// Model is the main application model
type Model struct {
	imagePath   string
	entryList   entrylist.Model
	detailPane  hexview.Model // right-hand pane, tracks the cursor
	detailModal hexview.Model // full-screen detail opened with Enter
	keys        KeyMap

	focusedPane Pane
	width       int
	height      int

	// Input modes
	inputMode   InputMode
	inputBuffer string // Buffer for search/index input

	// Search state
	searchQuery string

	// Help overlay
	showHelp bool

	// Status message for temporary feedback
	statusMessage string

	// Most recently loaded arena, kept for the info panel. Swapped out
	// (and the old handle released) on every refresh.
	arena *stack.Stack

	err error
}

// NewModel creates a new TUI model
func NewModel(imagePath string) Model {
	keys := DefaultKeyMap()

	entryList := entrylist.NewModel()
	entryList.SetKeys(entrylist.Keys{
		Up:       keys.Up,
		Down:     keys.Down,
		PageUp:   keys.PageUp,
		PageDown: keys.PageDown,
		Home:     keys.Home,
		End:      keys.End,
	})

	return Model{
		imagePath:   imagePath,
		entryList:   entryList,
		detailPane:  hexview.NewModel(hexview.DetailModePane),
		detailModal: hexview.NewModel(hexview.DetailModeModal),
		keys:        keys,
		focusedPane: ListPane,
		inputMode:   NormalMode,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.entryList.Init(),
		entrylist.LoadArena(m.imagePath),
	)
}

// Close cleans up resources held by the model.
// Should be called when the TUI exits to release the arena handle.
func (m *Model) Close() error {
	if m.arena != nil {
		m.arena.Release()
		m.arena = nil
	}
	return nil
}

// Messages

type clearStatusMsg struct{}

// GetEntryList returns the entry list model (for testing)
func (m *Model) GetEntryList() *entrylist.Model {
	return &m.entryList
}
