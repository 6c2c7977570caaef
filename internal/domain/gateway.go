package domain

import "context"

// Credentials is the authentication capability constructed once at startup
// and passed into the gateway constructor. There is no ambient credential
// state anywhere else in the program.
type Credentials struct {
	APIKey     string
	APISecret  string
	PrivateKey string // signing key; held but never used to sign by this client
}

// Authenticated reports whether the write/authenticated-read surface is
// available. Presence of the API key and signing key is the toggle.
func (c Credentials) Authenticated() bool {
	return c.APIKey != "" && c.PrivateKey != ""
}

// ListQuery carries pagination and filtering for market listings.
type ListQuery struct {
	Limit      int
	Cursor     string
	ActiveOnly bool
}

// Quote is a normalized price response for a single token.
type Quote struct {
	TokenID string
	Price   float64
	Source  string // "price" or "midpoint", depending on which endpoint answered
}

// DataGateway abstracts the read operations of the upstream Polymarket APIs
// plus the single write operation. Both the interactive browser and the
// headless agent path consume this interface; the concrete transport lives
// in internal/gateway.
//
// All operations carry a fixed timeout and report failures as error values
// (typically *TransportError); none of them panic on malformed input.
type DataGateway interface {
	// ListMarkets returns normalized markets in API response order.
	ListMarkets(ctx context.Context, q ListQuery) ([]Market, error)

	// GetMarket looks up one market by condition id. An empty upstream
	// result is valid and reported via found=false, not an error.
	GetMarket(ctx context.Context, conditionID string) (m Market, found bool, err error)

	// GetOrderBook returns the normalized book for a token.
	GetOrderBook(ctx context.Context, tokenID string) (OrderBook, error)

	// GetPrice returns the current price for a token, falling back to the
	// midpoint endpoint when the primary price source returns a non-success
	// status. It fails only when both sources fail.
	GetPrice(ctx context.Context, tokenID string) (Quote, error)

	// GetPositions returns holdings for an address. Fails fast with
	// ErrAuthRequired when no credentials are present.
	GetPositions(ctx context.Context, address string) ([]Position, error)

	// PlaceOrder submits a limit order. Fails fast with ErrAuthRequired
	// before any network call when no credentials are present, and with
	// ErrInvalidOrder when the request does not validate.
	PlaceOrder(ctx context.Context, req OrderRequest) (OrderResult, error)
}
