package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyoungcy/polytui/internal/domain"
)

// stubGateway returns canned results and records what the agent asked for.
type stubGateway struct {
	markets     []domain.Market
	listErr     error
	market      domain.Market
	marketFound bool
	book        domain.OrderBook
	quote       domain.Quote
	positions   []domain.Position
	orderResult domain.OrderResult
	orderErr    error

	lastQuery  domain.ListQuery
	orderCalls int
}

func (g *stubGateway) ListMarkets(_ context.Context, q domain.ListQuery) ([]domain.Market, error) {
	g.lastQuery = q
	return g.markets, g.listErr
}

func (g *stubGateway) GetMarket(_ context.Context, _ string) (domain.Market, bool, error) {
	return g.market, g.marketFound, nil
}

func (g *stubGateway) GetOrderBook(_ context.Context, _ string) (domain.OrderBook, error) {
	return g.book, nil
}

func (g *stubGateway) GetPrice(_ context.Context, _ string) (domain.Quote, error) {
	return g.quote, nil
}

func (g *stubGateway) GetPositions(_ context.Context, _ string) ([]domain.Position, error) {
	return g.positions, nil
}

func (g *stubGateway) PlaceOrder(_ context.Context, _ domain.OrderRequest) (domain.OrderResult, error) {
	g.orderCalls++
	return g.orderResult, g.orderErr
}

func runAgent(t *testing.T, gw *stubGateway, opts Options) (map[string]any, error) {
	t.Helper()
	var buf bytes.Buffer
	err := Run(context.Background(), gw, opts, &buf, nil)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc), "output must always be one valid JSON document")
	return doc, err
}

func TestRunDefaultsToListing(t *testing.T) {
	gw := &stubGateway{markets: []domain.Market{
		{ID: "m1", Question: "A?"},
		{ID: "m2", Question: "B?"},
	}}

	doc, err := runAgent(t, gw, Options{})

	require.NoError(t, err)
	assert.Equal(t, float64(2), doc["count"])
	assert.Equal(t, 20, gw.lastQuery.Limit, "unset limit falls back to default")
	assert.True(t, gw.lastQuery.ActiveOnly)
}

func TestRunExplicitListFlag(t *testing.T) {
	gw := &stubGateway{markets: []domain.Market{{ID: "m1", Question: "A?"}}}

	doc, err := runAgent(t, gw, Options{ListMarkets: true, Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, float64(1), doc["count"])
	assert.Equal(t, 5, gw.lastQuery.Limit)
}

func TestRunListError(t *testing.T) {
	gw := &stubGateway{listErr: errors.New("gamma unavailable")}

	doc, err := runAgent(t, gw, Options{ListMarkets: true})

	require.Error(t, err)
	assert.Contains(t, doc["error"], "gamma unavailable")
}

func TestRunMarketByID(t *testing.T) {
	gw := &stubGateway{market: domain.Market{ID: "m1", Question: "A?"}, marketFound: true}

	doc, err := runAgent(t, gw, Options{MarketID: "0xcond"})

	require.NoError(t, err)
	assert.Equal(t, "m1", doc["id"])
}

func TestRunMarketNotFound(t *testing.T) {
	gw := &stubGateway{}

	doc, err := runAgent(t, gw, Options{MarketID: "0xmissing"})

	require.NoError(t, err, "an empty result is not a failure")
	assert.Equal(t, float64(0), doc["count"])
}

func TestRunPrice(t *testing.T) {
	gw := &stubGateway{quote: domain.Quote{TokenID: "tok1", Price: 0.42, Source: "midpoint"}}

	doc, err := runAgent(t, gw, Options{Price: "tok1"})

	require.NoError(t, err)
	assert.Equal(t, "tok1", doc["token_id"])
	assert.Equal(t, 0.42, doc["price"])
	assert.Equal(t, "midpoint", doc["source"])
}

func TestRunOrderBook(t *testing.T) {
	gw := &stubGateway{book: domain.OrderBook{
		AssetID: "tok1",
		Bids:    []domain.PriceLevel{{Price: 0.60, Size: 5}},
		Asks:    []domain.PriceLevel{{Price: 0.65, Size: 4}},
	}}

	doc, err := runAgent(t, gw, Options{OrderBook: "tok1"})

	require.NoError(t, err)
	assert.Equal(t, "tok1", doc["asset_id"])
	assert.InDelta(t, 0.05, doc["spread"].(float64), 1e-9)
}

func TestRunTradeMissingArguments(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"all missing", Options{Trade: true}},
		{"no side", Options{Trade: true, TokenID: "t", Amount: 10, TradePrice: 0.5}},
		{"no amount", Options{Trade: true, TokenID: "t", Side: "buy", TradePrice: 0.5}},
		{"no price", Options{Trade: true, TokenID: "t", Side: "buy", Amount: 10}},
		{"bad side", Options{Trade: true, TokenID: "t", Side: "hold", Amount: 10, TradePrice: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubGateway{}
			doc, err := runAgent(t, gw, tt.opts)

			assert.ErrorIs(t, err, domain.ErrInvalidOrder)
			assert.NotEmpty(t, doc["error"])
			assert.Zero(t, gw.orderCalls, "invalid trades never reach the gateway")
		})
	}
}

func TestRunTrade(t *testing.T) {
	gw := &stubGateway{orderResult: domain.OrderResult{Success: true, OrderID: "ord-1", Status: "live"}}

	doc, err := runAgent(t, gw, Options{
		Trade:      true,
		TokenID:    "tok1",
		Side:       "BUY",
		Amount:     10,
		TradePrice: 0.5,
	})

	require.NoError(t, err)
	assert.Equal(t, true, doc["success"])
	assert.Equal(t, "ord-1", doc["order_id"])
	assert.Equal(t, 1, gw.orderCalls)
}

func TestRunTradeGatewayError(t *testing.T) {
	gw := &stubGateway{orderErr: domain.ErrAuthRequired}

	doc, err := runAgent(t, gw, Options{
		Trade:      true,
		TokenID:    "tok1",
		Side:       "sell",
		Amount:     10,
		TradePrice: 0.5,
	})

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.NotEmpty(t, doc["error"])
}

func TestRunPositions(t *testing.T) {
	gw := &stubGateway{positions: []domain.Position{
		{Asset: "tok1", Title: "Will X?", Outcome: "Yes", Size: 100, AvgPrice: 0.4, CurPrice: 0.55, CashPnL: 15},
	}}

	doc, err := runAgent(t, gw, Options{Positions: "0xabc"})

	require.NoError(t, err)
	positions, ok := doc["positions"].([]any)
	require.True(t, ok)
	require.Len(t, positions, 1)
}
