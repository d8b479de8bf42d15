package state

import "github.com/atomicstack/pincode-lookup/internal/pincode"

// Results holds a completed lookup along with the filter, list cursor, and
// viewport derived from it.
type Results struct {
	Pincode        string
	Message        string
	Full           []pincode.PostOffice
	Items          []pincode.PostOffice
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewResults constructs Results for the offices returned for code.
func NewResults(code, message string, offices []pincode.PostOffice) *Results {
	r := &Results{
		Pincode:    code,
		Message:    message,
		LastCursor: -1,
	}
	r.UpdateOffices(offices)
	return r
}

// UpdateOffices replaces the full list and re-derives the visible items with
// the current filter.
func (r *Results) UpdateOffices(offices []pincode.PostOffice) {
	prevOffset := r.ViewportOffset
	r.Full = pincode.Clone(offices)
	if r.Full == nil {
		r.Full = []pincode.PostOffice{}
	}
	r.applyFilter()
	if len(r.Items) == 0 {
		r.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(r.Items)-1 {
		r.ViewportOffset = 0
		return
	}
	r.ViewportOffset = prevOffset
}

// Selected returns the office under the cursor.
func (r *Results) Selected() (pincode.PostOffice, bool) {
	if r == nil || r.Cursor < 0 || r.Cursor >= len(r.Items) {
		return pincode.PostOffice{}, false
	}
	return r.Items[r.Cursor], true
}

// Total reports the number of offices returned by the lookup.
func (r *Results) Total() int {
	if r == nil {
		return 0
	}
	return len(r.Full)
}
