package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/pincode-lookup/internal/format/table"
	"github.com/atomicstack/pincode-lookup/internal/pincode"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	inputTitle    = "Enter Pincode"
	inputHelp     = "enter lookup  esc quit"
	resultsFooter = "↑/↓ move  type to filter  esc new lookup  ctrl+c quit"
	loadingText   = "Loading..."
	noMatchesText = "Couldn’t find the postal data you’re looking for…"

	cardIndicator = "▌"
	cardIndent    = "  "
	cardLabelGap  = 2

	// title plus the four base rows plus the separating blank line
	cardHeight = 6
	// Division, Region and Block on the selected card
	cardDetailRows = 3
	// header, message, blank, filter prompt, blank
	resultsChrome = 5
)

var countPrinter = message.NewPrinter(language.English)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModeResults && m.results != nil {
		return m.viewResults()
	}
	return m.viewInput()
}

func (m *Model) viewInput() string {
	lines := make([]styledLine, 0, 8)
	lines = append(lines,
		styledLine{text: inputTitle, style: styles.Title},
		styledLine{text: m.input.View(), raw: true},
		styledLine{},
	)
	switch {
	case m.loading:
		lines = append(lines, styledLine{text: loadingText, style: styles.Loading})
	case m.errMsg != "":
		lines = append(lines, m.errorLine())
	}
	lines = append(lines, styledLine{}, styledLine{text: inputHelp, style: styles.Footer})
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) viewResults() string {
	current := m.results
	m.syncViewport()

	lines := make([]styledLine, 0, 32)
	lines = append(lines,
		styledLine{text: "Pincode: " + current.Pincode, style: styles.Title},
		styledLine{text: "Message: " + countMessage(current.Total(), len(current.Items), current.Filter), style: styles.Info},
		styledLine{},
		styledLine{text: m.filterPrompt(), raw: true},
		styledLine{},
	)
	if len(current.Items) == 0 {
		lines = append(lines, styledLine{text: noMatchesText, style: styles.Info})
	} else {
		start, visible := current.Visible(m.maxVisibleCards())
		for i, office := range visible {
			if i > 0 {
				lines = append(lines, styledLine{})
			}
			lines = append(lines, m.cardLines(office, start+i == current.Cursor)...)
		}
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: resultsFooter, style: styles.Footer})
	}
	var status styledLine
	if m.errMsg != "" {
		status = m.errorLine()
	}
	if m.height == 1 {
		if m.errMsg != "" {
			return renderLines(applyWidth([]styledLine{status}, m.width))
		}
		return renderLines(applyWidth(limitHeight(lines, 1, m.width), m.width))
	}
	// Reserve the bottom row for the error line.
	lines = limitHeight(lines, m.height-1, m.width)
	lines = applyWidth(lines, m.width)
	lines = append(lines, applyWidth([]styledLine{status}, m.width)...)
	return renderLines(lines)
}

func (m *Model) errorLine() styledLine {
	return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
}

func countMessage(total, shown int, filter string) string {
	text := countPrinter.Sprintf("Number of post offices found: %d", total)
	if filter != "" {
		text += countPrinter.Sprintf(" (showing %d)", shown)
	}
	return text
}

// cardLines renders one post office as a titled block of aligned rows.
func (m *Model) cardLines(office pincode.PostOffice, selected bool) []styledLine {
	titleStyle := styles.CardTitle
	indicatorStyle := styles.CardIndicator
	if selected {
		titleStyle = styles.SelectedCardTitle
		indicatorStyle = styles.SelectedCardIndicator
	}
	title := cardIndicator + " " + office.Name
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(title); pad > 0 {
			title += strings.Repeat(" ", pad)
		}
	}
	lines := []styledLine{{
		text:          title,
		style:         titleStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}}

	rows := []table.Row{
		{Label: "Branch Type", Value: orDash(office.BranchType)},
		{Label: "Delivery Status", Value: orDash(office.DeliveryStatus)},
		{Label: "District", Value: orDash(office.District)},
		{Label: "State", Value: orDash(office.State)},
	}
	var details []table.Row
	if selected {
		details = table.Compact(
			table.Row{Label: "Division", Value: office.Division},
			table.Row{Label: "Region", Value: office.Region},
			table.Row{Label: "Block", Value: office.Block},
		)
	}
	width := table.LabelWidth(append(append([]table.Row{}, rows...), details...))
	for _, text := range table.Format(rows, width, cardLabelGap) {
		lines = append(lines, styledLine{text: cardIndent + text, style: styles.CardValue})
	}
	for _, text := range table.Format(details, width, cardLabelGap) {
		lines = append(lines, styledLine{text: cardIndent + text, style: styles.CardDetail})
	}
	return lines
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.input.Width = resize.Width - lipgloss.Width(m.input.Prompt) - 1
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// maxVisibleCards returns how many cards fit on screen, or -1 when the height
// is unknown.
func (m *Model) maxVisibleCards() int {
	if m.height <= 0 {
		return -1
	}
	used := resultsChrome + 1 // bottom error line
	if m.showFooter {
		used += 2
	}
	// The final card has no trailing blank line.
	remain := m.height - used - cardDetailRows + 1
	if remain < cardHeight {
		return 1
	}
	return remain / cardHeight
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
