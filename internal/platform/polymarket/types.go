package polymarket

import (
	"encoding/json"
	"strconv"
	"strings"
)

// flexBool unmarshals from JSON bool or string ("true"/"false") so Gamma API
// responses work whether "active" is sent as bool or string.
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = flexBool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = flexBool(strings.EqualFold(s, "true") || s == "1")
	return nil
}

// flexFloat unmarshals from a JSON number or a number-rendered-as-string.
// Anything that cannot be parsed decodes to zero instead of failing, so one
// bad field never poisons a whole market record.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(n)
	return nil
}

// --------------------------------------------------------------------------
// Gamma API DTOs
// --------------------------------------------------------------------------

// APIMarket represents a market as returned by the Polymarket Gamma API.
// Several fields arrive doubly encoded: OutcomePrices, Outcomes, and
// ClobTokenIDs are JSON arrays rendered as JSON strings.
type APIMarket struct {
	ID            string     `json:"id"`
	ConditionID   string     `json:"conditionId"`
	Slug          string     `json:"slug"`
	Question      string     `json:"question"`
	Description   string     `json:"description"`
	Volume        flexFloat  `json:"volume"`
	Liquidity     flexFloat  `json:"liquidity"`
	EndDate       string     `json:"endDate"`
	Active        flexBool   `json:"active"`
	Closed        flexBool   `json:"closed"`
	OutcomePrices string     `json:"outcomePrices"` // JSON-encoded: e.g. "[\"0.5\",\"0.5\"]"
	Outcomes      string     `json:"outcomes"`      // JSON-encoded: e.g. "[\"Yes\",\"No\"]"
	ClobTokenIDs  string     `json:"clobTokenIds"`  // JSON-encoded: e.g. "[\"123\",\"456\"]"
	Tokens        []APIToken `json:"tokens"`
}

// APIToken is a token entry inside a Gamma market response. The CLOB variant
// of the same record uses snake_case keys, hence the doubled tags handled in
// UnmarshalJSON.
type APIToken struct {
	TokenID string    `json:"tokenId"`
	Outcome string    `json:"outcome"`
	Price   flexFloat `json:"price"`
	Winner  bool      `json:"winner"`
}

// UnmarshalJSON accepts both "tokenId" (Gamma) and "token_id" (CLOB)
// spellings. A wrong-typed entry decodes to a zero token instead of failing
// the surrounding array, so one bad element never empties a whole listing.
func (t *APIToken) UnmarshalJSON(data []byte) error {
	var raw struct {
		TokenID      string    `json:"tokenId"`
		TokenIDSnake string    `json:"token_id"`
		Outcome      string    `json:"outcome"`
		Price        flexFloat `json:"price"`
		Winner       bool      `json:"winner"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*t = APIToken{}
		return nil
	}
	t.TokenID = raw.TokenID
	if t.TokenID == "" {
		t.TokenID = raw.TokenIDSnake
	}
	t.Outcome = raw.Outcome
	t.Price = raw.Price
	t.Winner = raw.Winner
	return nil
}

// --------------------------------------------------------------------------
// CLOB API DTOs
// --------------------------------------------------------------------------

// APIBookLevel is a single bid/ask level in the CLOB book response. Price
// and size arrive as strings.
type APIBookLevel struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}

// APIOrderBook is the CLOB /book response.
type APIOrderBook struct {
	AssetID string         `json:"asset_id"`
	Market  string         `json:"market"`
	Bids    []APIBookLevel `json:"bids"`
	Asks    []APIBookLevel `json:"asks"`
}

// APIQuote is the CLOB /price or /midpoint response. Only one of Price/Mid
// is populated depending on the endpoint.
type APIQuote struct {
	Price flexFloat `json:"price"`
	Mid   flexFloat `json:"mid"`
}

// APIOrderResult is the response from placing an order via the CLOB API.
type APIOrderResult struct {
	Success  bool   `json:"success"`
	ErrorMsg string `json:"errorMsg,omitempty"`
	OrderID  string `json:"orderID,omitempty"`
	Status   string `json:"status,omitempty"`
}

// --------------------------------------------------------------------------
// Data API DTOs
// --------------------------------------------------------------------------

// APIPosition is one holding entry from the data API /positions response.
type APIPosition struct {
	Asset       string    `json:"asset"`
	ConditionID string    `json:"conditionId"`
	Title       string    `json:"title"`
	Outcome     string    `json:"outcome"`
	Size        flexFloat `json:"size"`
	AvgPrice    flexFloat `json:"avgPrice"`
	CurPrice    flexFloat `json:"curPrice"`
	CashPnL     flexFloat `json:"cashPnl"`
}
