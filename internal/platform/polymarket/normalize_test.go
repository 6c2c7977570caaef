package polymarket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyoungcy/polytui/internal/domain"
)

func TestDecodeMarketsAcceptsBothShapes(t *testing.T) {
	bare := []byte(`[{"id":"m1","question":"Will X happen?"},{"id":"m2","question":"Will Y happen?"}]`)
	wrapped := []byte(`{"markets":[{"id":"m1","question":"Will X happen?"},{"id":"m2","question":"Will Y happen?"}]}`)

	fromBare := DecodeMarkets(bare)
	fromWrapped := DecodeMarkets(wrapped)

	require.Len(t, fromBare, 2)
	assert.Equal(t, fromBare, fromWrapped)
	assert.Equal(t, "m1", fromBare[0].ID)
	assert.Equal(t, "Will Y happen?", fromBare[1].Question)
}

func TestDecodeMarketsUnknownShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"scalar", `42`},
		{"string", `"markets"`},
		{"object without field", `{"data":[]}`},
		{"garbage", `{{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, DecodeMarkets([]byte(tt.raw)))
		})
	}
}

func TestNormalizeSpecimenPayload(t *testing.T) {
	raw := []byte(`{"markets": [{"question":"Will X happen?","volume":"1000","outcomePrices":"[\"0.7\",\"0.3\"]"}]}`)

	markets := DecodeMarkets(raw)
	require.Len(t, markets, 1)

	m := markets[0]
	assert.Equal(t, "Will X happen?", m.Question)
	assert.Equal(t, 1000.0, m.Volume)
	assert.Equal(t, []float64{0.7, 0.3}, m.OutcomePrices)
}

func TestNormalizeOutcomePriceFallback(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not json", "not json at all"},
		{"wrong type", `{"a":1}`},
		{"empty array", `[]`},
		{"truncated", `["0.7",`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := APIMarket{ID: "m1", OutcomePrices: tt.encoded}
			dm := m.Normalize()
			assert.Equal(t, []float64{0.5, 0.5}, dm.OutcomePrices)
		})
	}
}

func TestNormalizeOutcomePriceVariants(t *testing.T) {
	// Numeric-element encoding decodes too.
	m := APIMarket{OutcomePrices: `[0.8, 0.2]`}
	assert.Equal(t, []float64{0.8, 0.2}, m.Normalize().OutcomePrices)

	// Non-numeric elements degrade per element, not per array.
	m = APIMarket{OutcomePrices: `["0.9","oops"]`}
	assert.Equal(t, []float64{0.9, 0.5}, m.Normalize().OutcomePrices)

	// Out-of-range values are clamped into [0,1].
	m = APIMarket{OutcomePrices: `["1.7","-0.3"]`}
	assert.Equal(t, []float64{1, 0}, m.Normalize().OutcomePrices)
}

func TestNormalizeDefaults(t *testing.T) {
	m := APIMarket{ID: "m1"}
	dm := m.Normalize()

	assert.Equal(t, "No description available", dm.Description)
	assert.Zero(t, dm.Volume)
	assert.Zero(t, dm.Liquidity)
	assert.Equal(t, []float64{0.5, 0.5}, dm.OutcomePrices)
	assert.Empty(t, dm.Tokens)
}

func TestNormalizeVolumeCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"numeric", `{"volume": 1234.5}`, 1234.5},
		{"string", `{"volume": "1234.5"}`, 1234.5},
		{"non-numeric", `{"volume": "lots"}`, 0},
		{"absent", `{}`, 0},
		{"negative clamps", `{"volume": "-10"}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markets := DecodeMarkets([]byte("[" + tt.raw + "]"))
			require.Len(t, markets, 1)
			assert.Equal(t, tt.want, markets[0].Volume)
		})
	}
}

func TestNormalizeSynthesizesTokens(t *testing.T) {
	m := APIMarket{
		ID:            "m1",
		ClobTokenIDs:  `["111","222"]`,
		Outcomes:      `["Yes","No"]`,
		OutcomePrices: `["0.7","0.3"]`,
	}
	dm := m.Normalize()

	require.Len(t, dm.Tokens, 2)
	assert.Equal(t, domain.Token{TokenID: "111", Outcome: "Yes", Price: 0.7}, dm.Tokens[0])
	assert.Equal(t, domain.Token{TokenID: "222", Outcome: "No", Price: 0.3}, dm.Tokens[1])
}

func TestNormalizePrefersNativeTokens(t *testing.T) {
	m := APIMarket{
		ID:            "m1",
		ClobTokenIDs:  `["111","222"]`,
		OutcomePrices: `["0.7","0.3"]`,
		Tokens: []APIToken{
			{TokenID: "aaa", Outcome: "Yes", Price: 0.65},
			{TokenID: "bbb", Outcome: "No"},
		},
	}
	dm := m.Normalize()

	require.Len(t, dm.Tokens, 2)
	assert.Equal(t, "aaa", dm.Tokens[0].TokenID)
	assert.Equal(t, 0.65, dm.Tokens[0].Price)
	// Missing native price filled from the position-parallel outcome price.
	assert.Equal(t, 0.3, dm.Tokens[1].Price)
}

func TestAPITokenAcceptsBothKeySpellings(t *testing.T) {
	gamma := []byte(`[{"tokens":[{"tokenId":"g1","outcome":"Yes"}]}]`)
	clob := []byte(`[{"tokens":[{"token_id":"c1","outcome":"Yes"}]}]`)

	require.NotEmpty(t, DecodeMarkets(gamma))
	require.NotEmpty(t, DecodeMarkets(clob))
	assert.Equal(t, "g1", DecodeMarkets(gamma)[0].Tokens[0].TokenID)
	assert.Equal(t, "c1", DecodeMarkets(clob)[0].Tokens[0].TokenID)
}

func TestDecodeMarketsToleratesMalformedTokenEntry(t *testing.T) {
	raw := []byte(`[{"id":"m1","question":"A?","tokens":[{"tokenId":"t1","outcome":"Yes","price":0.7},42]}]`)

	markets := DecodeMarkets(raw)
	require.Len(t, markets, 1, "one bad token entry must not empty the listing")

	require.Len(t, markets[0].Tokens, 2)
	assert.Equal(t, "t1", markets[0].Tokens[0].TokenID)
	assert.Equal(t, 0.7, markets[0].Tokens[0].Price)
	assert.Empty(t, markets[0].Tokens[1].TokenID, "wrong-typed entry degrades to a zero token")
}

func TestNormalizeOrderBook(t *testing.T) {
	api := APIOrderBook{
		AssetID: "tok1",
		Bids: []APIBookLevel{
			{Price: "0.55", Size: "10"},
			{Price: "0.60", Size: "5"},
			{Price: "oops", Size: "3"}, // dropped: bad price
			{Price: "0.50", Size: "-1"}, // dropped: negative size
		},
		Asks: []APIBookLevel{
			{Price: "0.70", Size: "2"},
			{Price: "0.65", Size: "4"},
			{Price: "0.68", Size: ""}, // dropped: bad size
		},
	}

	book := api.Normalize()

	require.Len(t, book.Bids, 2)
	require.Len(t, book.Asks, 2)

	// Bids descending, asks ascending.
	assert.Equal(t, 0.60, book.Bids[0].Price)
	assert.Equal(t, 0.55, book.Bids[1].Price)
	assert.Equal(t, 0.65, book.Asks[0].Price)
	assert.Equal(t, 0.70, book.Asks[1].Price)

	spread, ok := book.Spread()
	require.True(t, ok)
	assert.InDelta(t, 0.05, spread, 1e-9)
}

func TestFlexBool(t *testing.T) {
	markets := DecodeMarkets([]byte(`[{"active":"true","closed":false},{"active":false,"closed":"1"}]`))
	require.Len(t, markets, 2)
	assert.True(t, markets[0].Active)
	assert.False(t, markets[0].Closed)
	assert.False(t, markets[1].Active)
	assert.True(t, markets[1].Closed)
}
