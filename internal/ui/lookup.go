package ui

import (
	"errors"

	"github.com/atomicstack/pincode-lookup/internal/logging"
	"github.com/atomicstack/pincode-lookup/internal/logging/events"
	"github.com/atomicstack/pincode-lookup/internal/pincode"
	"github.com/atomicstack/pincode-lookup/internal/ui/command"
	uistate "github.com/atomicstack/pincode-lookup/internal/ui/state"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newPincodeInput(initial string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Pincode"
	ti.CharLimit = pincode.Length
	ti.Prompt = "» "
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Input != nil {
		ti.TextStyle = *styles.Input
	}
	if styles.InputPlaceholder != nil {
		ti.PlaceholderStyle = *styles.InputPlaceholder
	}
	if initial != "" {
		ti.SetValue(initial)
	}
	ti.Focus()
	return ti
}

// submit validates the typed pincode and, when valid, starts a lookup. Only
// one lookup runs at a time; the request ID fences out late replies.
func (m *Model) submit() tea.Cmd {
	code := m.input.Value()
	if m.loading {
		events.UI.Submit(code, true)
		return nil
	}
	events.UI.Submit(code, false)
	if err := pincode.Validate(code); err != nil {
		events.Lookup.Invalid(code)
		m.errMsg = pincode.UserMessage(err)
		return nil
	}
	id := m.newID()
	m.errMsg = ""
	m.loading = true
	m.pendingID = id
	m.pendingCode = code
	events.Lookup.Start(id, code)
	return m.bus.Execute(command.Request{ID: id, Pincode: code})
}

func (m *Model) handleLookupResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if res.ID != m.pendingID {
		events.Lookup.Stale(res.ID, m.pendingID)
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingCode = ""
	if res.Err != nil {
		events.Lookup.Error(res.ID, res.Pincode, res.Err)
		m.errMsg = pincode.UserMessage(res.Err)
		if errors.Is(res.Err, pincode.ErrNoData) {
			m.results = nil
		} else {
			logging.Error(res.Err)
		}
		return nil
	}
	if res.Result.Cached {
		events.Lookup.CacheHit(res.Pincode)
	}
	events.Lookup.Success(res.ID, res.Pincode, len(res.Result.Offices), res.Result.Cached)
	m.errMsg = ""
	m.results = uistate.NewResults(res.Pincode, res.Result.Message, res.Result.Offices)
	if m.initialFilter != "" {
		m.results.SetFilter(m.initialFilter, len([]rune(m.initialFilter)))
		m.initialFilter = ""
	}
	m.mode = ModeResults
	m.input.Blur()
	m.syncViewport()
	return m.filterCursor.Focus()
}

// resetToInput returns from the results screen to pincode entry, keeping the
// previously typed code for editing.
func (m *Model) resetToInput() tea.Cmd {
	code := ""
	if m.results != nil {
		code = m.results.Pincode
	}
	events.UI.Reset(code)
	m.results = nil
	m.errMsg = ""
	m.mode = ModeInput
	m.filterCursor.Blur()
	m.input.CursorEnd()
	return m.input.Focus()
}
