package polymarket

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/alanyoungcy/polytui/internal/domain"
)

// defaultDescription is shown for markets that arrive without one.
const defaultDescription = "No description available"

// fallbackPrices is the documented default when outcome prices cannot be
// decoded: an even two-way split.
func fallbackPrices() []float64 { return []float64{0.5, 0.5} }

// DecodeMarkets normalizes a raw markets payload. The Gamma API is known to
// return two shapes for the same listing: a bare JSON array of market
// objects, or an object wrapping the array in a "markets" field. Both decode
// to the same sequence; when neither shape matches, the result is an empty
// slice, never an error.
func DecodeMarkets(raw []byte) []domain.Market {
	apiMarkets := decodeMarketsPayload(raw)
	markets := make([]domain.Market, 0, len(apiMarkets))
	for i := range apiMarkets {
		markets = append(markets, apiMarkets[i].Normalize())
	}
	return markets
}

// decodeMarketsPayload performs the shape-tag check: array first, then
// object-with-field.
func decodeMarketsPayload(raw []byte) []APIMarket {
	var list []APIMarket
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var wrapped struct {
		Markets []APIMarket `json:"markets"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		return wrapped.Markets
	}
	return nil
}

// Normalize converts a Gamma APIMarket into the canonical domain.Market.
// It never fails: every missing or wrong-typed field degrades to its
// documented default.
func (m *APIMarket) Normalize() domain.Market {
	dm := domain.Market{
		ID:          m.ID,
		ConditionID: m.ConditionID,
		Slug:        m.Slug,
		Question:    m.Question,
		Description: m.Description,
		Volume:      nonNegative(float64(m.Volume)),
		Liquidity:   nonNegative(float64(m.Liquidity)),
		EndDate:     m.EndDate,
		Active:      bool(m.Active),
		Closed:      bool(m.Closed),
	}
	if dm.Description == "" {
		dm.Description = defaultDescription
	}

	dm.OutcomePrices = decodeOutcomePrices(m.OutcomePrices)
	dm.Tokens = m.normalizeTokens(dm.OutcomePrices)

	return dm
}

// normalizeTokens prefers the native tokens array when the API sends one,
// otherwise synthesizes tokens from the doubly-encoded clobTokenIds and
// outcomes fields. Token prices missing upstream are filled from the
// position-parallel outcome prices.
func (m *APIMarket) normalizeTokens(prices []float64) []domain.Token {
	var tokens []domain.Token

	if len(m.Tokens) > 0 {
		tokens = make([]domain.Token, 0, len(m.Tokens))
		for _, t := range m.Tokens {
			tokens = append(tokens, domain.Token{
				TokenID: t.TokenID,
				Outcome: t.Outcome,
				Price:   clampUnit(float64(t.Price)),
				Winner:  t.Winner,
			})
		}
	} else {
		ids := decodeStringArray(m.ClobTokenIDs)
		outcomes := decodeStringArray(m.Outcomes)
		tokens = make([]domain.Token, 0, len(ids))
		for i, id := range ids {
			tok := domain.Token{TokenID: id}
			if i < len(outcomes) {
				tok.Outcome = outcomes[i]
			}
			tokens = append(tokens, tok)
		}
	}

	// Fill absent prices by position.
	for i := range tokens {
		if tokens[i].Price == 0 && i < len(prices) {
			tokens[i].Price = prices[i]
		}
	}

	return tokens
}

// decodeOutcomePrices decodes the JSON-in-string outcome price array. Any
// decode failure, or an empty array, yields the fallback pair.
func decodeOutcomePrices(encoded string) []float64 {
	if encoded == "" {
		return fallbackPrices()
	}
	var strs []string
	if err := json.Unmarshal([]byte(encoded), &strs); err != nil {
		// Some responses encode the array with numeric elements.
		var nums []float64
		if err := json.Unmarshal([]byte(encoded), &nums); err != nil || len(nums) == 0 {
			return fallbackPrices()
		}
		return clampUnitSlice(nums)
	}
	if len(strs) == 0 {
		return fallbackPrices()
	}
	prices := make([]float64, len(strs))
	for i, s := range strs {
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			p = 0.5
		}
		prices[i] = clampUnit(p)
	}
	return prices
}

// decodeStringArray decodes a JSON-in-string array of strings, returning nil
// on any failure.
func decodeStringArray(encoded string) []string {
	if encoded == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(encoded), &out); err != nil {
		return nil
	}
	return out
}

// Normalize converts a CLOB book response into the canonical
// domain.OrderBook: bids descending, asks ascending, malformed or negative
// levels dropped.
func (b *APIOrderBook) Normalize() domain.OrderBook {
	book := domain.OrderBook{AssetID: b.AssetID}
	book.Bids = normalizeLevels(b.Bids)
	book.Asks = normalizeLevels(b.Asks)

	sort.Slice(book.Bids, func(i, j int) bool { return book.Bids[i].Price > book.Bids[j].Price })
	sort.Slice(book.Asks, func(i, j int) bool { return book.Asks[i].Price < book.Asks[j].Price })

	return book
}

// normalizeLevels parses string-encoded levels, dropping entries that do not
// decode or carry a negative size.
func normalizeLevels(levels []APIBookLevel) []domain.PriceLevel {
	out := make([]domain.PriceLevel, 0, len(levels))
	for _, lvl := range levels {
		price, err := strconv.ParseFloat(lvl.Price, 64)
		if err != nil {
			continue
		}
		size, err := strconv.ParseFloat(lvl.Size, 64)
		if err != nil || size < 0 {
			continue
		}
		out = append(out, domain.PriceLevel{Price: price, Size: size})
	}
	return out
}

// Normalize converts an APIPosition into the canonical domain.Position.
func (p *APIPosition) Normalize() domain.Position {
	return domain.Position{
		Asset:       p.Asset,
		ConditionID: p.ConditionID,
		Title:       p.Title,
		Outcome:     p.Outcome,
		Size:        float64(p.Size),
		AvgPrice:    float64(p.AvgPrice),
		CurPrice:    float64(p.CurPrice),
		CashPnL:     float64(p.CashPnL),
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampUnitSlice(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = clampUnit(v)
	}
	return out
}
