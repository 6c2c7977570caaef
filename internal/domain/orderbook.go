package domain

// PriceLevel is a single price+size entry in an order book.
type PriceLevel struct {
	Price float64
	Size  float64
}

// OrderBook is a normalized snapshot of resting orders for one token.
// Bids are ordered descending by price, asks ascending. Levels that could
// not be decoded upstream have been dropped, not defaulted.
type OrderBook struct {
	AssetID string
	Bids    []PriceLevel
	Asks    []PriceLevel
}

// Empty reports whether the book has no levels on either side.
func (b OrderBook) Empty() bool {
	return len(b.Bids) == 0 && len(b.Asks) == 0
}

// BestBid returns the highest bid price. ok is false when there are no bids.
func (b OrderBook) BestBid() (price float64, ok bool) {
	if len(b.Bids) == 0 {
		return 0, false
	}
	return b.Bids[0].Price, true
}

// BestAsk returns the lowest ask price. ok is false when there are no asks.
func (b OrderBook) BestAsk() (price float64, ok bool) {
	if len(b.Asks) == 0 {
		return 0, false
	}
	return b.Asks[0].Price, true
}

// Spread returns bestAsk - bestBid. ok is false unless both sides are
// non-empty. Both renderers derive the spread through this method so the
// human and machine views always agree on the number.
func (b OrderBook) Spread() (spread float64, ok bool) {
	bid, okBid := b.BestBid()
	ask, okAsk := b.BestAsk()
	if !okBid || !okAsk {
		return 0, false
	}
	return ask - bid, true
}
