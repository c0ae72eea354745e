package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MainViewModel wraps the main layout as a standalone tea.Model so the
// overlay package can use it as the background behind the detail modal.
type MainViewModel struct {
	app *Model
}

func NewMainViewModel(app *Model) *MainViewModel {
	return &MainViewModel{app: app}
}

func (m *MainViewModel) Init() tea.Cmd {
	return nil
}

func (m *MainViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m *MainViewModel) View() string {
	return m.app.renderMain()
}
