package domain

// Market represents a Polymarket prediction market as seen by the browser.
// All fields are already normalized: missing or malformed upstream data has
// been replaced by documented defaults, never by a decode error.
type Market struct {
	ID          string
	ConditionID string
	Slug        string
	Question    string
	Description string
	Volume      float64 // USD, never negative; 0 when absent or unparseable
	Liquidity   float64 // USD, never negative; 0 when absent or unparseable
	EndDate     string  // opaque display string, never parsed by the core
	Active      bool
	Closed      bool

	// OutcomePrices holds the probability of each outcome in [0,1], in the
	// order the API reported them. Falls back to {0.5, 0.5} when the source
	// encoding could not be decoded.
	OutcomePrices []float64

	// Tokens is parallel to OutcomePrices by position when both are present.
	Tokens []Token
}

// Token is one outcome side of a market, addressable by its own identifier
// for price and order-book lookups.
type Token struct {
	TokenID string
	Outcome string // e.g. "Yes" / "No"
	Price   float64
	Winner  bool
}

// PrimaryToken returns the first token of the market, used for the default
// order-book lookup on selection.
func (m Market) PrimaryToken() (Token, bool) {
	if len(m.Tokens) == 0 {
		return Token{}, false
	}
	return m.Tokens[0], true
}

// YesPrice returns the probability of the first outcome, or 0.5 when the
// market carries no price data.
func (m Market) YesPrice() float64 {
	if len(m.OutcomePrices) == 0 {
		return 0.5
	}
	return m.OutcomePrices[0]
}
