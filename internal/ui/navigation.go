package ui

import (
	"github.com/atomicstack/pincode-lookup/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.mode == ModeResults {
		return m.handleResultsKey(keyMsg)
	}
	return m.handleInputKey(keyMsg)
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		return tea.Quit
	case tea.KeyEnter:
		return m.submit()
	}
	if m.loading {
		return nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before && m.errMsg != "" {
		m.errMsg = ""
	}
	return cmd
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return m.resetToInput()
	case "up", "ctrl+p":
		m.moveCursor(m.results.MoveCursorUp)
		return nil
	case "down", "ctrl+n":
		m.moveCursor(m.results.MoveCursorDown)
		return nil
	case "pgup":
		m.moveCursor(func() bool { return m.results.MoveCursorPageUp(m.maxVisibleCards()) })
		return nil
	case "pgdown":
		m.moveCursor(func() bool { return m.results.MoveCursorPageDown(m.maxVisibleCards()) })
		return nil
	case "home":
		m.moveCursor(m.results.MoveCursorHome)
		return nil
	case "end":
		m.moveCursor(m.results.MoveCursorEnd)
		return nil
	}
	m.handleFilterInput(msg)
	return nil
}

func (m *Model) moveCursor(op func() bool) {
	if m.results == nil || !op() {
		return
	}
	events.UI.Cursor(m.results.Pincode, m.results.Cursor)
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if m.results == nil {
		return
	}
	m.results.EnsureCursorVisible(m.maxVisibleCards())
}
