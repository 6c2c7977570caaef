package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alanyoungcy/polytui/internal/browser"
	"github.com/alanyoungcy/polytui/internal/projector"
)

var (
	colorBorder = lipgloss.Color("#30363d")
	colorText   = lipgloss.Color("#c9d1d9")
	colorAccent = lipgloss.Color("#58a6ff")
	colorYellow = lipgloss.Color("#d29922")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Foreground(colorText).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Padding(0, 1)
)

const banner = "PolyTUI - Polymarket Terminal Interface"

// View renders the whole screen from the current navigation state. It reads
// state but never writes it.
func (m Model) View() string {
	var sections []string

	sections = append(sections, headerStyle.Render(banner))

	if m.state.View == browser.ViewSearch {
		sections = append(sections, panelStyle.Render("Search: "+m.search.View()))
	}

	list := panelStyle.Render(projector.MarketList(m.state))

	// Side-by-side panes when the terminal is wide enough, stacked
	// otherwise.
	if m.state.Selected != nil {
		detail := panelStyle.Render(projector.MarketDetail(m.state.Selected))
		book := panelStyle.Render(projector.OrderBook(m.state.Book))
		if m.width >= 120 {
			sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, list, detail, book))
		} else {
			sections = append(sections, list, detail, book)
		}
	} else {
		sections = append(sections, list)
	}

	sections = append(sections, statusStyle.Render("| "+m.state.Status))
	sections = append(sections, helpStyle.Render(helpLine()))

	return strings.Join(sections, "\n")
}

// helpLine builds the footer from the binding table so help never drifts
// from dispatch.
func helpLine() string {
	parts := make([]string, 0, len(bindings)+1)
	parts = append(parts, "q quit")
	for _, b := range bindings {
		parts = append(parts, b.keys[0]+" "+b.help)
	}
	return strings.Join(parts, " | ")
}
