// Package ui contains the Bubble Tea program for looking up Indian postal
// pincodes. The Model type focuses on message orchestration, while dedicated
// helpers own key handling, filter editing, rendering, and lookup state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so key presses, resizes, and
//     lookup results are handled by focused functions.
//   - On the input screen, keys not claimed by the handlers go to the pincode
//     textinput. On the results screen they edit the filter
//     (internal/ui/input.go) or move the card cursor (internal/ui/navigation.go).
//
// Lookups:
//   - submit validates the pincode locally and then hands a command.Request to
//     the command bus, which runs the HTTP lookup off the update loop.
//   - Each request carries a fresh ID. Only the result matching the pending ID
//     is applied; anything else is traced as stale and dropped.
//
// State ownership:
//   - The returned offices, the filter, and the card viewport live in
//     internal/ui/state.Results. The filtered list is always derived from the
//     full list and the filter text, never edited in place.
package ui
