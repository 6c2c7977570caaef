// Package tui is the interactive front end: a bubbletea program wrapping
// the browser state machine. It is strictly a projection layer; every state
// change goes through browser.State.Apply, and each keystroke blocks until
// its triggered fetch completes, so no locking is needed anywhere.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alanyoungcy/polytui/internal/browser"
	"github.com/alanyoungcy/polytui/internal/domain"
)

// loadMsg triggers the initial market fetch after the program starts.
type loadMsg struct{}

// Model is the bubbletea model. It holds the navigation state by pointer;
// bubbletea delivers messages serially, which preserves the single-writer
// discipline the browser package relies on.
type Model struct {
	state  *browser.State
	gw     domain.DataGateway
	search textinput.Model

	width  int
	height int
}

// New creates the interactive model. listLimit is the refresh page size.
func New(gw domain.DataGateway, listLimit int, logger *slog.Logger) Model {
	search := textinput.New()
	search.Placeholder = "filter markets..."
	search.CharLimit = 80
	search.Width = 40

	return Model{
		state:  browser.New(listLimit, logger),
		gw:     gw,
		search: search,
	}
}

// Init schedules the initial refresh.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return loadMsg{} }
}

// Update handles one message. Gateway-backed transitions run inline: the
// loop blocks until the fetch completes, then re-renders.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadMsg:
		m.state.Apply(context.Background(), m.gw, browser.Event{Kind: browser.EventRefresh})
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press. Search view owns most keys for text entry;
// everywhere else the declarative binding table decides.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state.View == browser.ViewSearch && m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	if key == "q" {
		return m, tea.Quit
	}

	if ev, ok := lookupBinding(key); ok {
		m.state.Apply(context.Background(), m.gw, ev)
		if ev.Kind == browser.EventEnterSearch {
			m.search.SetValue(m.state.Query)
			m.search.Focus()
		}
	}
	return m, nil
}

// handleSearchKey feeds keystrokes to the text input and mirrors its value
// into the state's query filter.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.Blur()
		m.state.Apply(context.Background(), m.gw, browser.Event{Kind: browser.EventSetQuery})
		m.state.Apply(context.Background(), m.gw, browser.Event{Kind: browser.EventClearSelection})
		return m, nil
	case "enter":
		// Keep the filter, return focus to the list bindings.
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.state.Apply(context.Background(), m.gw, browser.Event{
		Kind:  browser.EventSetQuery,
		Query: m.search.Value(),
	})
	return m, cmd
}
