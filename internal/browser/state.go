// Package browser owns the navigation state machine of the market browser:
// the loaded market list, cursor and selection, the current order-book
// snapshot, and the active view. Transitions are pure with respect to
// already-fetched data; Refresh and SelectMarket are the only events that
// trigger gateway calls, and both treat failure as a status message, never
// as a crash.
package browser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/alanyoungcy/polytui/internal/domain"
)

// View identifies which pane has focus.
type View int

const (
	ViewList View = iota
	ViewDetail
	ViewOrderBook
	ViewSearch
)

func (v View) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewDetail:
		return "detail"
	case ViewOrderBook:
		return "orderbook"
	case ViewSearch:
		return "search"
	default:
		return "unknown"
	}
}

// DefaultListLimit matches the interactive refresh page size.
const DefaultListLimit = 50

// State is the navigation state. It is owned by a single goroutine (the
// input loop); no locking is required because every fetch blocks the loop
// until it completes.
type State struct {
	// Markets is the last successfully fetched list, in API response order.
	// It is replaced wholesale on refresh, never merged.
	Markets []domain.Market

	// SelectedIndex is kept within [0, len(Visible())) whenever the visible
	// subset is non-empty, wrapping modulo its length on cursor movement.
	// Outside Search view the visible subset is the full list.
	SelectedIndex int

	// Selected is a snapshot copy of the market at SelectedIndex taken at
	// selection time, or nil. Selecting again re-copies.
	Selected *domain.Market

	// Book is the last-fetched order book for the selected market's primary
	// token; empty when nothing is selected.
	Book domain.OrderBook

	// View is the active pane.
	View View

	// Query filters the displayed subset in Search view. It never mutates
	// Markets.
	Query string

	// Status is the one-line message shown in the status bar.
	Status string

	limit  int
	logger *slog.Logger
}

// New creates an empty List-view state. limit is the refresh page size;
// values <= 0 fall back to DefaultListLimit.
func New(limit int, logger *slog.Logger) *State {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &State{
		View:   ViewList,
		Status: "Ready. Press 'q' to quit, 'r' to refresh.",
		limit:  limit,
		logger: logger.With(slog.String("component", "browser")),
	}
}

// Visible returns the markets the current view should display. In Search
// view with a non-empty query it is the case-insensitive substring filter
// over the question text; otherwise it is the full list. The returned slice
// aliases Markets but is never written through.
func (s *State) Visible() []domain.Market {
	if s.View != ViewSearch || s.Query == "" {
		return s.Markets
	}
	needle := strings.ToLower(s.Query)
	out := make([]domain.Market, 0, len(s.Markets))
	for _, m := range s.Markets {
		if strings.Contains(strings.ToLower(m.Question), needle) {
			out = append(out, m)
		}
	}
	return out
}

// setStatus records a status-bar message.
func (s *State) setStatus(format string, args ...any) {
	s.Status = fmt.Sprintf(format, args...)
}
