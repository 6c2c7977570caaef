package tui

import (
	"github.com/alanyoungcy/polytui/internal/browser"
	"github.com/alanyoungcy/polytui/internal/domain"
)

// binding maps key presses to browser events. The table is the single
// source of truth for dispatch and for the help line; Update never switches
// on raw keys for navigation.
type binding struct {
	keys  []string
	help  string
	event browser.Event
}

var bindings = []binding{
	{keys: []string{"r"}, help: "refresh", event: browser.Event{Kind: browser.EventRefresh}},
	{keys: []string{"j", "down"}, help: "down", event: browser.Event{Kind: browser.EventCursorDown}},
	{keys: []string{"k", "up"}, help: "up", event: browser.Event{Kind: browser.EventCursorUp}},
	{keys: []string{"enter"}, help: "select", event: browser.Event{Kind: browser.EventSelectMarket}},
	{keys: []string{"esc"}, help: "back", event: browser.Event{Kind: browser.EventClearSelection}},
	{keys: []string{"/"}, help: "search", event: browser.Event{Kind: browser.EventEnterSearch}},
	{keys: []string{"1"}, help: "buy yes", event: browser.Event{Kind: browser.EventTradeAction, Side: domain.OrderSideBuy, Outcome: "Yes"}},
	{keys: []string{"2"}, help: "buy no", event: browser.Event{Kind: browser.EventTradeAction, Side: domain.OrderSideBuy, Outcome: "No"}},
	{keys: []string{"3"}, help: "sell yes", event: browser.Event{Kind: browser.EventTradeAction, Side: domain.OrderSideSell, Outcome: "Yes"}},
	{keys: []string{"4"}, help: "sell no", event: browser.Event{Kind: browser.EventTradeAction, Side: domain.OrderSideSell, Outcome: "No"}},
}

// lookupBinding resolves a key press to its browser event.
func lookupBinding(key string) (browser.Event, bool) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if k == key {
				return b.event, true
			}
		}
	}
	return browser.Event{}, false
}
