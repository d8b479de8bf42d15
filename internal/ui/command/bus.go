package command

import (
	"context"
	"errors"

	"github.com/atomicstack/pincode-lookup/internal/logging/events"
	"github.com/atomicstack/pincode-lookup/internal/pincode"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoLookup = errors.New("no lookup client configured")

// Lookuper resolves a pincode to its post offices.
type Lookuper interface {
	Lookup(ctx context.Context, code string) (pincode.Result, error)
}

// Request identifies a single user-started lookup.
type Request struct {
	ID      string
	Pincode string
}

// Result is delivered back to the model once a lookup finishes.
type Result struct {
	ID      string
	Pincode string
	Result  pincode.Result
	Err     error
}

// Bus runs lookups off the update loop.
type Bus struct {
	ctx    context.Context
	lookup Lookuper
}

// New initialises a command bus. A nil ctx uses context.Background.
func New(ctx context.Context, lookup Lookuper) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx, lookup: lookup}
}

// Execute wraps a lookup into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Pincode)
	return func() tea.Msg {
		if b.lookup == nil {
			events.Command.Skip(req.ID, req.Pincode)
			return Result{ID: req.ID, Pincode: req.Pincode, Err: &pincode.NetworkError{Op: "lookup", Err: errNoLookup}}
		}
		res, err := b.lookup.Lookup(b.ctx, req.Pincode)
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		events.Command.Result(req.ID, req.Pincode, outcome)
		return Result{ID: req.ID, Pincode: req.Pincode, Result: res, Err: err}
	}
}
