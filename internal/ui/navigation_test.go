package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCardCursorWrapsAndJumps(t *testing.T) {
	h := resultsModel(t)
	current := h.Model().results

	h.Press(tea.KeyUp)
	if current.Cursor != 2 {
		t.Fatalf("expected wrap to last card, got %d", current.Cursor)
	}
	h.Press(tea.KeyDown)
	if current.Cursor != 0 {
		t.Fatalf("expected wrap to first card, got %d", current.Cursor)
	}
	h.Press(tea.KeyEnd)
	if current.Cursor != 2 {
		t.Fatalf("expected end to select last card, got %d", current.Cursor)
	}
	h.Press(tea.KeyHome)
	if current.Cursor != 0 {
		t.Fatalf("expected home to select first card, got %d", current.Cursor)
	}
}

func TestCursorMovesWithinFilteredList(t *testing.T) {
	h := resultsModel(t)
	h.Type("pune")
	current := h.Model().results

	h.Press(tea.KeyDown)
	selected, ok := current.Selected()
	if !ok || selected.Name != "Pune Camp" {
		t.Fatalf("expected Pune Camp selected, got %#v", selected)
	}
	h.Press(tea.KeyDown)
	if selected, _ := current.Selected(); selected.Name != "Pune GPO" {
		t.Fatalf("expected wrap to Pune GPO, got %q", selected.Name)
	}
}

func TestEnterOnResultsDoesNothing(t *testing.T) {
	lookup := puneLookup()
	h := newTestHarness(lookup, Options{})
	lookupPune(t, h)
	h.Press(tea.KeyEnter)
	if lookup.callCount() != 1 || h.Model().Mode() != ModeResults {
		t.Fatalf("expected enter on results to be ignored")
	}
}
