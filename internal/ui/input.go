package ui

import (
	"unicode"

	"github.com/atomicstack/pincode-lookup/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if m.results == nil {
		return
	}
	if before != m.results.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// editFilter runs op against the results and, when it changed the filter
// text, refreshes the viewport and traces the new state via trace.
func (m *Model) editFilter(op func() bool, trace func(pincode, filter string, matches int)) bool {
	current := m.results
	before := current.FilterCursorPos()
	if !op() {
		return false
	}
	m.noteFilterCursorChange(before)
	m.errMsg = ""
	if trace != nil {
		trace(current.Pincode, current.Filter, len(current.Items))
	}
	m.syncViewport()
	return true
}

// moveFilterCaret runs a caret-only op and traces the new caret position.
func (m *Model) moveFilterCaret(op func() bool, trace func(pincode string, pos int)) bool {
	current := m.results
	before := current.FilterCursorPos()
	if !op() {
		return false
	}
	m.noteFilterCursorChange(before)
	trace(current.Pincode, current.FilterCursor)
	return true
}

// handleFilterInput applies readline-style editing keys to the filter. It
// reports whether the key was consumed.
func (m *Model) handleFilterInput(msg tea.KeyMsg) bool {
	current := m.results
	if current == nil {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		return m.editFilter(current.ClearFilter, func(code, _ string, _ int) {
			events.Filter.Cleared(code)
		})
	case "ctrl+w":
		return m.editFilter(current.DeleteFilterWordBackward, events.Filter.WordBackspace)
	case "ctrl+a":
		return m.moveFilterCaret(current.MoveFilterCursorStart, events.Filter.Cursor)
	case "ctrl+e":
		return m.moveFilterCaret(current.MoveFilterCursorEnd, events.Filter.Cursor)
	case "alt+b":
		return m.moveFilterCaret(current.MoveFilterCursorWordBackward, events.Filter.CursorWord)
	case "alt+f":
		return m.moveFilterCaret(current.MoveFilterCursorWordForward, events.Filter.CursorWord)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.editFilter(current.DeleteFilterRuneBackward, events.Filter.Backspace)
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		return m.moveFilterCaret(current.MoveFilterCursorRuneBackward, events.Filter.Cursor)
	case tea.KeyRight:
		return m.moveFilterCaret(current.MoveFilterCursorRuneForward, events.Filter.Cursor)
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if m.results == nil || text == "" {
		return false
	}
	current := m.results
	return m.editFilter(func() bool { return current.InsertFilterText(text) }, events.Filter.Append)
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = *styles.Filter
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "Filter » "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := ""
	pos := 0
	if m.results != nil {
		text = m.results.Filter
		pos = m.results.FilterCursorPos()
	}
	if text == "" {
		runes := []rune("(type to filter by name)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = *styles.FilterPlaceholder
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
