package tui

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Layout constants. The height is unknown until the first WindowSizeMsg arrives.
const (
	defaultWidth = 80

	// chromeLines counts the lines around the records: title, blank, blank,
	// status, buttons, blank and help.
	chromeLines = 7
	// minRowLines keeps one record and the overflow line on tiny windows.
	minRowLines = 2
)

//nolint:gochecknoglobals // Styles are shared read-only lipgloss values.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

	recordStyle = lipgloss.NewStyle().PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	buttonStyle = lipgloss.NewStyle().Padding(0, 1)

	currentButtonStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	disabledButtonStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("240"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	emptyStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))
)

// printer formats counts with thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatShowing returns the "Showing X–Y of Z" line for a page range.
func FormatShowing(start, end, total int) string {
	if total == 0 {
		return "No records"
	}
	return printer.Sprintf("Showing %d–%d of %d", start, end, total)
}
