package state

import (
	"strings"

	"github.com/atomicstack/pincode-lookup/internal/pincode"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and cursor position, then re-derives the
// visible offices. The list cursor jumps to the best match while a query is
// active and returns to where it was once the query is cleared.
func (r *Results) SetFilter(query string, cursor int) {
	prev := r.Filter
	restore := -1
	r.Filter = query
	runes := []rune(r.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	r.FilterCursor = cursor
	if query != "" {
		if prev == "" {
			r.LastCursor = r.Cursor
		}
		r.Cursor = 0
	} else if prev != "" {
		restore = r.LastCursor
	}
	r.applyFilter()
	if query != "" && len(r.Items) > 0 {
		if idx := BestMatchIndex(r.Items, query); idx >= 0 {
			r.Cursor = idx
		}
	}
	if query == "" && prev != "" {
		if restore >= 0 && restore < len(r.Items) {
			r.Cursor = restore
		} else {
			r.Cursor = 0
		}
		r.LastCursor = -1
	}
}

func (r *Results) applyFilter() {
	r.Items = FilterOffices(r.Full, r.Filter)
	if len(r.Items) == 0 {
		r.Cursor = 0
		r.ViewportOffset = 0
		return
	}
	if r.Cursor < 0 {
		r.Cursor = 0
	}
	if r.Cursor >= len(r.Items) {
		r.Cursor = len(r.Items) - 1
	}
	if r.ViewportOffset > len(r.Items)-1 {
		r.ViewportOffset = 0
	}
}

// FilterOffices returns the offices whose Name contains query, ignoring case,
// in their original order. An empty query returns a copy of the full list.
func FilterOffices(offices []pincode.PostOffice, query string) []pincode.PostOffice {
	if query == "" {
		dup := pincode.Clone(offices)
		if dup == nil {
			dup = []pincode.PostOffice{}
		}
		return dup
	}
	lower := strings.ToLower(query)
	filtered := make([]pincode.PostOffice, 0, len(offices))
	for _, office := range offices {
		if strings.Contains(strings.ToLower(office.Name), lower) {
			filtered = append(filtered, office)
		}
	}
	return filtered
}

// BestMatchIndex picks the office the cursor should land on for query: an
// exact name match first, then the first prefix match, then the closest fuzzy
// rank. It never changes which offices are listed.
func BestMatchIndex(offices []pincode.PostOffice, query string) int {
	if len(offices) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, office := range offices {
		if strings.EqualFold(office.Name, trimmed) {
			return i
		}
	}
	for i, office := range offices {
		if strings.HasPrefix(strings.ToLower(office.Name), lower) {
			return i
		}
	}
	names := make([]string, len(offices))
	for i, office := range offices {
		names[i] = office.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(offices) {
		return 0
	}
	return best.OriginalIndex
}
