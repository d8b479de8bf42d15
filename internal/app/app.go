package app

import (
	"context"
	"errors"
	"time"

	"github.com/atomicstack/pincode-lookup/internal/logging/events"
	"github.com/atomicstack/pincode-lookup/internal/pincode"
	"github.com/atomicstack/pincode-lookup/internal/ui"
	"github.com/atomicstack/pincode-lookup/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	APIURL     string
	Timeout    time.Duration
	CacheTTL   time.Duration
	Interval   time.Duration
	Width      int
	Height     int
	ShowFooter bool
	Pincode    string
	Filter     string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	defer func() { events.App.Exit(err) }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := pincode.NewClient(cfg.APIURL,
		pincode.WithTimeout(cfg.Timeout),
		pincode.WithCache(pincode.NewCache(cfg.CacheTTL)),
		pincode.WithMinInterval(cfg.Interval),
	)
	model := ui.NewModel(command.New(ctx, client), ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Pincode:    cfg.Pincode,
		Filter:     cfg.Filter,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
