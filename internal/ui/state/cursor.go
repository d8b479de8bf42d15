package state

import "github.com/atomicstack/pincode-lookup/internal/pincode"

// MoveCursorUp moves the cursor to the previous office, wrapping to the last.
func (r *Results) MoveCursorUp() bool {
	n := len(r.Items)
	if n == 0 {
		return false
	}
	if r.Cursor > 0 {
		return r.setCursor(r.Cursor - 1)
	}
	return r.setCursor(n - 1)
}

// MoveCursorDown moves the cursor to the next office, wrapping to the first.
func (r *Results) MoveCursorDown() bool {
	n := len(r.Items)
	if n == 0 {
		return false
	}
	if r.Cursor < n-1 {
		return r.setCursor(r.Cursor + 1)
	}
	return r.setCursor(0)
}

// MoveCursorHome moves the cursor to the first office.
func (r *Results) MoveCursorHome() bool {
	return r.setCursor(0)
}

// MoveCursorEnd moves the cursor to the last office.
func (r *Results) MoveCursorEnd() bool {
	return r.setCursor(len(r.Items) - 1)
}

// MoveCursorPageUp moves the cursor up by one page of maxVisible cards.
func (r *Results) MoveCursorPageUp(maxVisible int) bool {
	return r.setCursor(r.Cursor - r.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page of maxVisible cards.
func (r *Results) MoveCursorPageDown(maxVisible int) bool {
	return r.setCursor(r.Cursor + r.pageSize(maxVisible))
}

// setCursor clamps idx into the item range and reports whether it moved.
func (r *Results) setCursor(idx int) bool {
	if len(r.Items) == 0 {
		r.Cursor = 0
		return false
	}
	old := r.Cursor
	r.Cursor = clamp(idx, 0, len(r.Items)-1)
	return r.Cursor != old
}

func (r *Results) pageSize(maxVisible int) int {
	total := len(r.Items)
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays within
// a window of maxVisible cards. A non-positive maxVisible shows everything.
func (r *Results) EnsureCursorVisible(maxVisible int) {
	if len(r.Items) == 0 {
		r.Cursor = 0
		r.ViewportOffset = 0
		return
	}
	r.Cursor = clamp(r.Cursor, 0, len(r.Items)-1)
	if maxVisible <= 0 {
		r.ViewportOffset = 0
		return
	}
	maxOffset := len(r.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := clamp(r.ViewportOffset, 0, maxOffset)
	if r.Cursor < offset {
		offset = r.Cursor
	}
	if r.Cursor > offset+maxVisible-1 {
		offset = r.Cursor - maxVisible + 1
	}
	r.ViewportOffset = clamp(offset, 0, maxOffset)
}

// Visible returns the window of items starting at the viewport offset.
func (r *Results) Visible(maxVisible int) (int, []pincode.PostOffice) {
	if maxVisible <= 0 || len(r.Items) <= maxVisible {
		return 0, r.Items
	}
	start := clamp(r.ViewportOffset, 0, len(r.Items)-maxVisible)
	return start, r.Items[start : start+maxVisible]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
