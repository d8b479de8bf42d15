package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/atomicstack/pincode-lookup/internal/logging"
	"github.com/atomicstack/pincode-lookup/internal/pincode"
	"github.com/atomicstack/pincode-lookup/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "pincode-ui")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Configure(filepath.Join(dir, "ui.log"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// fakeLookup answers lookups from a fixed table and records every call.
type fakeLookup struct {
	mu      sync.Mutex
	offices map[string][]pincode.PostOffice
	err     error
	calls   []string
}

func (f *fakeLookup) Lookup(_ context.Context, code string) (pincode.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, code)
	if f.err != nil {
		return pincode.Result{}, f.err
	}
	offices, ok := f.offices[code]
	if !ok {
		return pincode.Result{}, pincode.ErrNoData
	}
	return pincode.Result{
		Pincode: code,
		Message: fmt.Sprintf("Number of pincode(s) found:%d", len(offices)),
		Offices: pincode.Clone(offices),
	}, nil
}

func (f *fakeLookup) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func puneLookup() *fakeLookup {
	return &fakeLookup{offices: map[string][]pincode.PostOffice{
		"411001": {
			{Name: "Pune GPO", BranchType: "Head Post Office", DeliveryStatus: "Delivery", District: "Pune", State: "Maharashtra", Division: "Pune City East", Region: "Pune", Block: "Pune City"},
			{Name: "Pune Camp", BranchType: "Sub Post Office", DeliveryStatus: "Non-Delivery", District: "Pune", State: "Maharashtra"},
			{Name: "Shivajinagar", BranchType: "Sub Post Office", DeliveryStatus: "Delivery", District: "Pune", State: "Maharashtra"},
		},
	}}
}

func newTestHarness(lookup command.Lookuper, opts Options) *Harness {
	seq := 0
	model := NewModel(command.New(context.Background(), lookup), opts)
	model.newID = func() string {
		seq++
		return fmt.Sprintf("req-%d", seq)
	}
	return NewHarness(model)
}

func lookupPune(t *testing.T, h *Harness) {
	t.Helper()
	h.Type("411001")
	h.Press(tea.KeyEnter)
	if h.Model().Mode() != ModeResults {
		t.Fatalf("expected results mode after lookup, error %q", h.Model().ErrorMessage())
	}
}

func officeNames(offices []pincode.PostOffice) []string {
	out := make([]string, len(offices))
	for i, o := range offices {
		out[i] = o.Name
	}
	return out
}

func TestLookupSuccessShowsResults(t *testing.T) {
	lookup := puneLookup()
	h := newTestHarness(lookup, Options{})
	lookupPune(t, h)

	m := h.Model()
	if m.Loading() {
		t.Fatalf("expected loading cleared")
	}
	if m.ErrorMessage() != "" {
		t.Fatalf("expected no error, got %q", m.ErrorMessage())
	}
	if got := len(m.Offices()); got != 3 {
		t.Fatalf("expected 3 offices, got %d", got)
	}
	if lookup.callCount() != 1 {
		t.Fatalf("expected one lookup, got %d", lookup.callCount())
	}
}

func TestFilterNarrowsToMatchingOffice(t *testing.T) {
	h := newTestHarness(puneLookup(), Options{})
	lookupPune(t, h)

	h.Type("gpo")
	got := officeNames(h.Model().FilteredOffices())
	if len(got) != 1 || got[0] != "Pune GPO" {
		t.Fatalf("expected only Pune GPO, got %v", got)
	}
	if h.Model().FilterText() != "gpo" {
		t.Fatalf("expected filter text gpo, got %q", h.Model().FilterText())
	}
}

func TestFilterRoundTripRestoresOriginalList(t *testing.T) {
	h := newTestHarness(puneLookup(), Options{})
	lookupPune(t, h)
	before := officeNames(h.Model().FilteredOffices())

	h.Type("camp")
	if got := officeNames(h.Model().FilteredOffices()); len(got) != 1 {
		t.Fatalf("expected one match for camp, got %v", got)
	}
	for range "camp" {
		h.Press(tea.KeyBackspace)
	}
	after := officeNames(h.Model().FilteredOffices())
	if strings.Join(after, "|") != strings.Join(before, "|") {
		t.Fatalf("expected %v after clearing filter, got %v", before, after)
	}
	if h.Model().results.Cursor != 0 {
		t.Fatalf("expected cursor restored to 0, got %d", h.Model().results.Cursor)
	}
}

func TestLookupNoDataClearsResults(t *testing.T) {
	h := newTestHarness(puneLookup(), Options{})
	h.Type("999999")
	h.Press(tea.KeyEnter)

	m := h.Model()
	if m.Mode() != ModeInput {
		t.Fatalf("expected to stay on the input screen")
	}
	if m.ErrorMessage() != pincode.MessageNoData {
		t.Fatalf("expected %q, got %q", pincode.MessageNoData, m.ErrorMessage())
	}
	if len(m.Offices()) != 0 {
		t.Fatalf("expected no offices, got %d", len(m.Offices()))
	}
	if m.Loading() {
		t.Fatalf("expected loading cleared")
	}
}

func TestLookupNetworkFailure(t *testing.T) {
	lookup := &fakeLookup{err: &pincode.NetworkError{Op: "get", Err: errors.New("connection refused")}}
	h := newTestHarness(lookup, Options{})
	h.Type("411001")
	h.Press(tea.KeyEnter)

	m := h.Model()
	if m.ErrorMessage() != "Failed to fetch pincode data." {
		t.Fatalf("unexpected error message %q", m.ErrorMessage())
	}
	if m.Loading() {
		t.Fatalf("expected loading cleared after network failure")
	}
	if !strings.Contains(plainView(h), "Error: Failed to fetch pincode data.") {
		t.Fatalf("expected error line in view, got:\n%s", plainView(h))
	}
}

func TestInvalidPincodeDoesNotLookup(t *testing.T) {
	lookup := puneLookup()
	h := newTestHarness(lookup, Options{})
	h.Type("4110")
	h.Press(tea.KeyEnter)

	if lookup.callCount() != 0 {
		t.Fatalf("expected no lookup for invalid input")
	}
	if got := h.Model().ErrorMessage(); got != pincode.MessageInvalid {
		t.Fatalf("expected %q, got %q", pincode.MessageInvalid, got)
	}
	h.Type("0")
	if got := h.Model().ErrorMessage(); got != "" {
		t.Fatalf("expected error cleared once the input changes, got %q", got)
	}
}

func TestSubmitIgnoredWhileLoading(t *testing.T) {
	m := NewModel(command.New(context.Background(), puneLookup()), Options{})
	m.input.SetValue("411001")

	first := m.submit()
	if first == nil {
		t.Fatalf("expected a lookup command")
	}
	if second := m.submit(); second != nil {
		t.Fatalf("expected second submit to be ignored while loading")
	}
	if !m.Loading() {
		t.Fatalf("expected loading to stay set")
	}
}

func TestStaleResultIsDropped(t *testing.T) {
	m := NewModel(command.New(context.Background(), puneLookup()), Options{})
	m.loading = true
	m.pendingID = "current"

	m.Update(command.Result{
		ID:      "old",
		Pincode: "411001",
		Result:  pincode.Result{Pincode: "411001", Offices: []pincode.PostOffice{{Name: "Stale"}}},
	})
	if !m.Loading() {
		t.Fatalf("expected stale result to leave loading set")
	}
	if m.Mode() != ModeInput || m.Offices() != nil {
		t.Fatalf("expected stale result to be ignored")
	}
}

func TestEscapeReturnsToInput(t *testing.T) {
	lookup := puneLookup()
	h := newTestHarness(lookup, Options{})
	lookupPune(t, h)
	h.Type("gpo")

	h.Press(tea.KeyEsc)
	m := h.Model()
	if m.Mode() != ModeInput {
		t.Fatalf("expected input mode after esc")
	}
	if m.Pincode() != "411001" {
		t.Fatalf("expected pincode kept for editing, got %q", m.Pincode())
	}
	if m.FilterText() != "" || m.Offices() != nil {
		t.Fatalf("expected results cleared")
	}
	if h.Quit() {
		t.Fatalf("esc on results should not quit")
	}

	h.Press(tea.KeyEnter)
	if m.Mode() != ModeResults || lookup.callCount() != 2 {
		t.Fatalf("expected a second lookup, calls=%d", lookup.callCount())
	}
	if m.FilterText() != "" {
		t.Fatalf("expected a fresh filter, got %q", m.FilterText())
	}
}

func TestEscapeOnInputQuits(t *testing.T) {
	h := newTestHarness(puneLookup(), Options{})
	h.Press(tea.KeyEsc)
	if !h.Quit() {
		t.Fatalf("expected esc on the input screen to quit")
	}
}

func TestCtrlCQuitsFromResults(t *testing.T) {
	h := newTestHarness(puneLookup(), Options{})
	lookupPune(t, h)
	h.Press(tea.KeyCtrlC)
	if !h.Quit() {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestPrefilledPincodeLooksUpOnInit(t *testing.T) {
	lookup := puneLookup()
	h := newTestHarness(lookup, Options{Pincode: "411001", Filter: "camp"})
	h.Init()

	m := h.Model()
	if m.Mode() != ModeResults {
		t.Fatalf("expected results after init lookup, error %q", m.ErrorMessage())
	}
	if got := officeNames(m.FilteredOffices()); len(got) != 1 || got[0] != "Pune Camp" {
		t.Fatalf("expected initial filter applied, got %v", got)
	}

	h.Press(tea.KeyEsc)
	h.Press(tea.KeyEnter)
	if m.FilterText() != "" {
		t.Fatalf("expected initial filter to apply only once, got %q", m.FilterText())
	}
}

func TestInvalidPrefillDoesNotLookup(t *testing.T) {
	lookup := puneLookup()
	h := newTestHarness(lookup, Options{Pincode: "12ab"})
	h.Init()
	if lookup.callCount() != 0 {
		t.Fatalf("expected no lookup for an invalid prefill")
	}
	if h.Model().Pincode() != "12ab" {
		t.Fatalf("expected prefill kept in the input, got %q", h.Model().Pincode())
	}
}

func TestNilBusReportsNetworkFailure(t *testing.T) {
	h := NewHarness(NewModel(nil, Options{}))
	h.Type("411001")
	h.Press(tea.KeyEnter)
	if got := h.Model().ErrorMessage(); got != pincode.MessageNetwork {
		t.Fatalf("expected %q, got %q", pincode.MessageNetwork, got)
	}
}
