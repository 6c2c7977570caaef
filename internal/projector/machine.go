package projector

import (
	"encoding/json"

	"github.com/alanyoungcy/polytui/internal/domain"
)

// Machine-view documents. These emit the normalized data model with no
// truncation and no navigation state: each is a pure function of the last
// gateway+normalizer result for the requested operation.

// MarketDoc is the machine projection of one market.
type MarketDoc struct {
	ID            string     `json:"id"`
	ConditionID   string     `json:"condition_id,omitempty"`
	Slug          string     `json:"slug,omitempty"`
	Question      string     `json:"question"`
	Description   string     `json:"description"`
	Volume        float64    `json:"volume"`
	Liquidity     float64    `json:"liquidity"`
	EndDate       string     `json:"end_date,omitempty"`
	Active        bool       `json:"active"`
	Closed        bool       `json:"closed"`
	OutcomePrices []float64  `json:"outcome_prices"`
	Tokens        []TokenDoc `json:"tokens"`
}

// TokenDoc is the machine projection of one outcome token.
type TokenDoc struct {
	TokenID string  `json:"token_id"`
	Outcome string  `json:"outcome"`
	Price   float64 `json:"price"`
	Winner  bool    `json:"winner,omitempty"`
}

// MarketsDoc wraps a listing result.
type MarketsDoc struct {
	Markets []MarketDoc `json:"markets"`
	Count   int         `json:"count"`
}

// LevelDoc is one book level.
type LevelDoc struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
}

// BookDoc is the machine projection of an order book. Spread is present
// only when both sides are non-empty; it is the same bestAsk-bestBid value
// the human view prints.
type BookDoc struct {
	AssetID string     `json:"asset_id"`
	Bids    []LevelDoc `json:"bids"`
	Asks    []LevelDoc `json:"asks"`
	Spread  *float64   `json:"spread,omitempty"`
}

// PriceDoc is the machine projection of a quote.
type PriceDoc struct {
	TokenID string  `json:"token_id"`
	Price   float64 `json:"price"`
	Source  string  `json:"source"`
}

// PositionDoc is the machine projection of one holding.
type PositionDoc struct {
	Asset       string  `json:"asset"`
	ConditionID string  `json:"condition_id,omitempty"`
	Title       string  `json:"title,omitempty"`
	Outcome     string  `json:"outcome,omitempty"`
	Size        float64 `json:"size"`
	AvgPrice    float64 `json:"avg_price"`
	CurPrice    float64 `json:"cur_price"`
	CashPnL     float64 `json:"cash_pnl"`
}

// PositionsDoc wraps a positions result.
type PositionsDoc struct {
	Positions []PositionDoc `json:"positions"`
}

// OrderDoc is the machine projection of an order submission result.
type OrderDoc struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorDoc is the machine projection of any failure.
type ErrorDoc struct {
	Error string `json:"error"`
}

// ProjectMarket maps a normalized market to its document.
func ProjectMarket(m domain.Market) MarketDoc {
	doc := MarketDoc{
		ID:            m.ID,
		ConditionID:   m.ConditionID,
		Slug:          m.Slug,
		Question:      m.Question,
		Description:   m.Description,
		Volume:        m.Volume,
		Liquidity:     m.Liquidity,
		EndDate:       m.EndDate,
		Active:        m.Active,
		Closed:        m.Closed,
		OutcomePrices: m.OutcomePrices,
		Tokens:        make([]TokenDoc, 0, len(m.Tokens)),
	}
	for _, t := range m.Tokens {
		doc.Tokens = append(doc.Tokens, TokenDoc{
			TokenID: t.TokenID,
			Outcome: t.Outcome,
			Price:   t.Price,
			Winner:  t.Winner,
		})
	}
	return doc
}

// ProjectMarkets maps a listing to its document.
func ProjectMarkets(markets []domain.Market) MarketsDoc {
	doc := MarketsDoc{Markets: make([]MarketDoc, 0, len(markets)), Count: len(markets)}
	for _, m := range markets {
		doc.Markets = append(doc.Markets, ProjectMarket(m))
	}
	return doc
}

// ProjectBook maps an order book to its document.
func ProjectBook(book domain.OrderBook) BookDoc {
	doc := BookDoc{
		AssetID: book.AssetID,
		Bids:    make([]LevelDoc, 0, len(book.Bids)),
		Asks:    make([]LevelDoc, 0, len(book.Asks)),
	}
	for _, lvl := range book.Bids {
		doc.Bids = append(doc.Bids, LevelDoc{Price: lvl.Price, Size: lvl.Size})
	}
	for _, lvl := range book.Asks {
		doc.Asks = append(doc.Asks, LevelDoc{Price: lvl.Price, Size: lvl.Size})
	}
	if spread, ok := book.Spread(); ok {
		doc.Spread = &spread
	}
	return doc
}

// ProjectPrice maps a quote to its document.
func ProjectPrice(q domain.Quote) PriceDoc {
	return PriceDoc{TokenID: q.TokenID, Price: q.Price, Source: q.Source}
}

// ProjectPositions maps holdings to their document.
func ProjectPositions(positions []domain.Position) PositionsDoc {
	doc := PositionsDoc{Positions: make([]PositionDoc, 0, len(positions))}
	for _, p := range positions {
		doc.Positions = append(doc.Positions, PositionDoc{
			Asset:       p.Asset,
			ConditionID: p.ConditionID,
			Title:       p.Title,
			Outcome:     p.Outcome,
			Size:        p.Size,
			AvgPrice:    p.AvgPrice,
			CurPrice:    p.CurPrice,
			CashPnL:     p.CashPnL,
		})
	}
	return doc
}

// ProjectOrder maps an order result to its document.
func ProjectOrder(r domain.OrderResult) OrderDoc {
	return OrderDoc{Success: r.Success, OrderID: r.OrderID, Status: r.Status, Message: r.Message}
}

// ProjectError maps any error to the error document the agent emits.
func ProjectError(err error) ErrorDoc {
	return ErrorDoc{Error: err.Error()}
}

// MarshalDoc renders any document as the indented JSON the agent writes to
// standard output.
func MarshalDoc(doc any) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
