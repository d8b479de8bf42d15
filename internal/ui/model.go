package ui

import (
	"reflect"

	"github.com/atomicstack/pincode-lookup/internal/pincode"
	"github.com/atomicstack/pincode-lookup/internal/theme"
	"github.com/atomicstack/pincode-lookup/internal/ui/command"
	uistate "github.com/atomicstack/pincode-lookup/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

type results = uistate.Results

type Mode int

const (
	// ModeInput shows the pincode entry screen.
	ModeInput Mode = iota
	// ModeResults shows the filterable post office list.
	ModeResults
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries user-supplied settings for the model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	// Pincode prefills the input and triggers a lookup on Init when valid.
	Pincode string
	// Filter is applied to the first successful lookup.
	Filter string
}

// Model implements the Bubble Tea model for the pincode lookup screen.
type Model struct {
	mode    Mode
	input   textinput.Model
	results *results

	loading     bool
	pendingID   string
	pendingCode string
	errMsg      string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	autoLookup    bool
	initialFilter string

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	bus   *command.Bus
	newID func() string
}

// NewModel initialises the UI state. bus runs lookups; a nil bus reports
// every lookup as a network failure.
func NewModel(bus *command.Bus, opts Options) *Model {
	if bus == nil {
		bus = command.New(nil, nil)
	}
	m := &Model{
		mode:          ModeInput,
		input:         newPincodeInput(opts.Pincode),
		showFooter:    opts.ShowFooter,
		initialFilter: opts.Filter,
		autoLookup:    opts.Pincode != "" && pincode.Validate(opts.Pincode) == nil,
		bus:           bus,
		newID:         uuid.NewString,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.input.Width = opts.Width - lipgloss.Width(m.input.Prompt) - 1
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if cmd := m.input.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.input.Cursor.Mode() == cursor.CursorBlink {
		cmds = append(cmds, textinput.Blink)
	}
	if m.autoLookup {
		m.autoLookup = false
		if cmd := m.submit(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if m.mode == ModeInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleLookupResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Mode reports which screen is active.
func (m *Model) Mode() Mode {
	return m.mode
}

// Loading reports whether a lookup is in flight.
func (m *Model) Loading() bool {
	return m.loading
}

// ErrorMessage returns the message currently shown to the user.
func (m *Model) ErrorMessage() string {
	return m.errMsg
}

// Pincode returns the text in the pincode input.
func (m *Model) Pincode() string {
	return m.input.Value()
}

// FilterText returns the active filter, or "" before any results exist.
func (m *Model) FilterText() string {
	if m.results == nil {
		return ""
	}
	return m.results.Filter
}

// Offices returns the full result list of the last successful lookup.
func (m *Model) Offices() []pincode.PostOffice {
	if m.results == nil {
		return nil
	}
	return pincode.Clone(m.results.Full)
}

// FilteredOffices returns the offices currently on screen.
func (m *Model) FilteredOffices() []pincode.PostOffice {
	if m.results == nil {
		return nil
	}
	return pincode.Clone(m.results.Items)
}
