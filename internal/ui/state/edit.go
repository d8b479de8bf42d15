package state

import "unicode"

// FilterCursorPos returns the rune offset of the filter caret clamped to the
// filter text.
func (r *Results) FilterCursorPos() int {
	n := len([]rune(r.Filter))
	switch {
	case r.FilterCursor < 0:
		return 0
	case r.FilterCursor > n:
		return n
	}
	return r.FilterCursor
}

// InsertFilterText inserts text at the caret.
func (r *Results) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(r.Filter)
	pos := r.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	r.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward removes the rune before the caret.
func (r *Results) DeleteFilterRuneBackward() bool {
	pos := r.FilterCursorPos()
	if pos == 0 {
		return false
	}
	r.deleteFilterRange(pos-1, pos)
	return true
}

// DeleteFilterWordBackward removes the word before the caret along with any
// whitespace between the word and the caret.
func (r *Results) DeleteFilterWordBackward() bool {
	pos := r.FilterCursorPos()
	if pos == 0 {
		return false
	}
	r.deleteFilterRange(wordStart([]rune(r.Filter), pos), pos)
	return true
}

// ClearFilter empties the filter. It reports false when already empty.
func (r *Results) ClearFilter() bool {
	if r.Filter == "" {
		return false
	}
	r.SetFilter("", 0)
	return true
}

func (r *Results) deleteFilterRange(from, to int) {
	runes := []rune(r.Filter)
	updated := make([]rune, 0, len(runes)-(to-from))
	updated = append(updated, runes[:from]...)
	updated = append(updated, runes[to:]...)
	r.SetFilter(string(updated), from)
}

func (r *Results) moveFilterCursor(to int) bool {
	if to == r.FilterCursorPos() {
		return false
	}
	r.FilterCursor = to
	return true
}

// MoveFilterCursorStart moves the caret to the start.
func (r *Results) MoveFilterCursorStart() bool {
	return r.moveFilterCursor(0)
}

// MoveFilterCursorEnd moves the caret to the end.
func (r *Results) MoveFilterCursorEnd() bool {
	return r.moveFilterCursor(len([]rune(r.Filter)))
}

// MoveFilterCursorWordBackward moves the caret to the start of the previous word.
func (r *Results) MoveFilterCursorWordBackward() bool {
	return r.moveFilterCursor(wordStart([]rune(r.Filter), r.FilterCursorPos()))
}

// MoveFilterCursorWordForward moves the caret past the next word.
func (r *Results) MoveFilterCursorWordForward() bool {
	return r.moveFilterCursor(wordEnd([]rune(r.Filter), r.FilterCursorPos()))
}

// MoveFilterCursorRuneBackward moves the caret one rune left.
func (r *Results) MoveFilterCursorRuneBackward() bool {
	pos := r.FilterCursorPos()
	if pos == 0 {
		return false
	}
	return r.moveFilterCursor(pos - 1)
}

// MoveFilterCursorRuneForward moves the caret one rune right.
func (r *Results) MoveFilterCursorRuneForward() bool {
	pos := r.FilterCursorPos()
	if pos >= len([]rune(r.Filter)) {
		return false
	}
	return r.moveFilterCursor(pos + 1)
}

// wordStart skips whitespace then non-whitespace leftwards from pos.
func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// wordEnd skips non-whitespace then whitespace rightwards from pos.
func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}
