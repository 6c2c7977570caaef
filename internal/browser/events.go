package browser

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alanyoungcy/polytui/internal/domain"
)

// EventKind enumerates the discrete input events the state machine accepts.
type EventKind int

const (
	EventRefresh EventKind = iota
	EventCursorDown
	EventCursorUp
	EventSelectMarket
	EventClearSelection
	EventEnterSearch
	EventSetQuery
	EventTradeAction
)

// Event is one input event. Query is set for EventSetQuery; Side and Outcome
// are set for EventTradeAction.
type Event struct {
	Kind    EventKind
	Query   string
	Side    domain.OrderSide
	Outcome string // "Yes" or "No"
}

// handler applies one event kind to the state. Refresh and SelectMarket are
// the only handlers that touch the gateway.
type handler func(s *State, ctx context.Context, gw domain.DataGateway, ev Event)

// transitions is the event→transition table. Apply is the single dispatch
// point; the rendering layer never mutates state on its own.
var transitions = map[EventKind]handler{
	EventRefresh:        (*State).refresh,
	EventCursorDown:     (*State).cursorDown,
	EventCursorUp:       (*State).cursorUp,
	EventSelectMarket:   (*State).selectMarket,
	EventClearSelection: (*State).clearSelection,
	EventEnterSearch:    (*State).enterSearch,
	EventSetQuery:       (*State).setQuery,
	EventTradeAction:    (*State).tradeAction,
}

// Apply dispatches one event through the transition table. Unknown events
// are ignored.
func (s *State) Apply(ctx context.Context, gw domain.DataGateway, ev Event) {
	if h, ok := transitions[ev.Kind]; ok {
		h(s, ctx, gw, ev)
	}
}

// refresh re-fetches the market list. On success the list is replaced
// wholesale and the selection cleared. On failure the previous list stays
// visible with only the status line updated (stale data retained).
func (s *State) refresh(ctx context.Context, gw domain.DataGateway, _ Event) {
	s.setStatus("Fetching markets...")

	markets, err := gw.ListMarkets(ctx, domain.ListQuery{Limit: s.limit, ActiveOnly: true})
	if err != nil {
		s.logger.WarnContext(ctx, "refresh failed", slog.String("error", err.Error()))
		s.setStatus("Error: %v", err)
		return
	}

	s.Markets = markets
	s.SelectedIndex = 0
	s.Selected = nil
	s.Book = domain.OrderBook{}
	s.View = ViewList

	if len(markets) == 0 {
		s.setStatus("No markets found")
		return
	}
	s.setStatus("Loaded %d markets", len(markets))
}

// cursorDown moves the selection down one entry, wrapping circularly over
// the visible subset so the marked row is always the row Enter selects.
func (s *State) cursorDown(_ context.Context, _ domain.DataGateway, _ Event) {
	visible := s.Visible()
	if len(visible) == 0 {
		return
	}
	s.SelectedIndex = (s.SelectedIndex + 1) % len(visible)
}

// cursorUp moves the selection up one entry, wrapping circularly over the
// visible subset.
func (s *State) cursorUp(_ context.Context, _ domain.DataGateway, _ Event) {
	visible := s.Visible()
	if len(visible) == 0 {
		return
	}
	s.SelectedIndex = (s.SelectedIndex - 1 + len(visible)) % len(visible)
}

// selectMarket snapshots the market under the cursor and loads the order
// book for its primary token. The cursor indexes the visible subset, so a
// filtered Search view selects exactly the marked row. Selecting with an
// empty list is a no-op.
func (s *State) selectMarket(ctx context.Context, gw domain.DataGateway, _ Event) {
	visible := s.Visible()
	if len(visible) == 0 || s.SelectedIndex < 0 || s.SelectedIndex >= len(visible) {
		return
	}

	// The previous selection's book must never render next to a new market.
	s.Book = domain.OrderBook{}

	snapshot := copyMarket(visible[s.SelectedIndex])
	s.Selected = &snapshot
	s.View = ViewDetail

	tok, ok := snapshot.PrimaryToken()
	if !ok || tok.TokenID == "" {
		s.setStatus("Selected %q (no tokens, order book unavailable)", snapshot.Question)
		return
	}

	book, err := gw.GetOrderBook(ctx, tok.TokenID)
	if err != nil {
		s.logger.WarnContext(ctx, "order book fetch failed",
			slog.String("token_id", tok.TokenID),
			slog.String("error", err.Error()),
		)
		s.setStatus("Error loading order book: %v", err)
		return
	}

	s.Book = book
	s.View = ViewOrderBook
	s.setStatus("Loaded order book for %s", tok.Outcome)
}

// clearSelection returns to an empty List-view selection.
func (s *State) clearSelection(_ context.Context, _ domain.DataGateway, _ Event) {
	s.Selected = nil
	s.SelectedIndex = 0
	s.Book = domain.OrderBook{}
	s.View = ViewList
	s.setStatus("Selection cleared")
}

// enterSearch switches to the query-filter view without touching the list.
func (s *State) enterSearch(_ context.Context, _ domain.DataGateway, _ Event) {
	s.View = ViewSearch
	s.setStatus("Search: type to filter markets")
}

// setQuery updates the search filter. Markets itself is never mutated. The
// cursor is pulled back to the top whenever it falls outside the newly
// visible subset.
func (s *State) setQuery(_ context.Context, _ domain.DataGateway, ev Event) {
	s.Query = ev.Query
	if s.SelectedIndex >= len(s.Visible()) {
		s.SelectedIndex = 0
	}
}

// tradeAction posts a user-facing notice. Order placement is deliberately
// not performed from navigation; the agent path owns the write surface.
func (s *State) tradeAction(_ context.Context, _ domain.DataGateway, ev Event) {
	if s.Selected == nil {
		return
	}
	s.setStatus("%s %s - use agent mode (--trade) or the web interface to place orders",
		ev.Side, strings.ToUpper(ev.Outcome))
}

// copyMarket deep-copies a market so the selection snapshot cannot alias the
// list entry's slices.
func copyMarket(m domain.Market) domain.Market {
	out := m
	if m.OutcomePrices != nil {
		out.OutcomePrices = make([]float64, len(m.OutcomePrices))
		copy(out.OutcomePrices, m.OutcomePrices)
	}
	if m.Tokens != nil {
		out.Tokens = make([]domain.Token, len(m.Tokens))
		copy(out.Tokens, m.Tokens)
	}
	return out
}
