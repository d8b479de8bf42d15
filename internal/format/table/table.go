package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Row is a single label/value pair rendered on a card.
type Row struct {
	Label string
	Value string
}

// Compact drops rows whose value is blank.
func Compact(rows ...Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Value) == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}

// LabelWidth returns the display width of the widest label.
func LabelWidth(rows []Row) int {
	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(row.Label); w > width {
			width = w
		}
	}
	return width
}

// Format pads each label to width and joins it to its value with gap spaces.
// A width smaller than the widest label is raised to fit.
func Format(rows []Row, width, gap int) []string {
	if len(rows) == 0 {
		return nil
	}
	if w := LabelWidth(rows); w > width {
		width = w
	}
	if gap < 1 {
		gap = 1
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		b.WriteString(row.Label)
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(row.Label)+gap))
		b.WriteString(row.Value)
		out[i] = b.String()
	}
	return out
}
