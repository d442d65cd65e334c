package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pagekit/internal/pageutil"
	"github.com/rshade/pagekit/internal/paginator"
)

// View renders the current page, the status line and the page buttons.
func (m *PagerModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(
		fmt.Sprintf("Page %d of %d", m.pager.Page(), max(m.pager.PageCount(), 1))))
	b.WriteString("\n\n")

	rows := pageutil.Page(m.records, m.pager.Start(), m.pager.Limit())
	if len(rows) == 0 {
		b.WriteString(recordStyle.Render(emptyStyle.Render("(no records)")))
		b.WriteString("\n")
	}
	visible, hidden := m.clipRows(len(rows))
	for _, row := range rows[:visible] {
		b.WriteString(recordStyle.Render(truncate(row, m.width-2)))
		b.WriteString("\n")
	}
	if hidden > 0 {
		b.WriteString(recordStyle.Render(emptyStyle.Render(printer.Sprintf("… %d more", hidden))))
		b.WriteString("\n")
	}

	r := m.pager.Range()
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(FormatShowing(r.Start, r.End, r.Total)))
	b.WriteString("\n")
	b.WriteString(RenderButtons(m.pager))
	b.WriteString("\n\n")

	if m.state == ViewStateJump {
		b.WriteString(m.jumpInput.View())
	} else {
		b.WriteString(helpStyle.Render(helpSummary))
	}

	return b.String()
}

// clipRows returns how many of n rows fit in the window and how many are
// hidden behind the overflow line. A zero height means the size is not known
// yet and nothing is clipped.
func (m *PagerModel) clipRows(n int) (visible, hidden int) {
	if m.height <= 0 {
		return n, 0
	}
	budget := max(m.height-chromeLines, minRowLines)
	if n <= budget {
		return n, 0
	}
	return budget - 1, n - (budget - 1)
}

// RenderButtons renders the navigation bar: first/previous arrows, the button
// window with the current page highlighted, then next/last arrows.
func RenderButtons(pg *paginator.Paginator) string {
	arrow := func(label string, disabled bool) string {
		if disabled {
			return disabledButtonStyle.Render(label)
		}
		return buttonStyle.Render(label)
	}

	parts := []string{
		arrow("«", pg.IsFirst()),
		arrow("‹", pg.IsFirst()),
	}
	for _, n := range pg.Buttons() {
		label := strconv.Itoa(n)
		if n == pg.Page() {
			parts = append(parts, currentButtonStyle.Render(label))
		} else {
			parts = append(parts, buttonStyle.Render(label))
		}
	}
	parts = append(parts,
		arrow("›", pg.IsLast()),
		arrow("»", pg.IsLast()),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// truncate shortens s to width display cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
