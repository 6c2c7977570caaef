package domain

import "fmt"

// OrderSide indicates whether this is a buy or sell.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// OrderRequest describes a limit order to submit to the CLOB. No signature
// is attached here: cryptographic signing is the transport collaborator's
// responsibility and is not performed by this client.
type OrderRequest struct {
	ClientID string // client-side id, assigned by the gateway when empty
	TokenID  string
	Side     OrderSide
	Amount   float64
	Price    float64 // limit price in [0,1]
}

// Validate checks the request parameters before any network call is made.
// Every problem found is reported; a failing request must never reach the
// wire.
func (r OrderRequest) Validate() error {
	if r.TokenID == "" {
		return fmt.Errorf("%w: token id is required", ErrInvalidOrder)
	}
	if r.Side != OrderSideBuy && r.Side != OrderSideSell {
		return fmt.Errorf("%w: side must be BUY or SELL, got %q", ErrInvalidOrder, r.Side)
	}
	if r.Amount <= 0 {
		return fmt.Errorf("%w: amount must be > 0, got %v", ErrInvalidOrder, r.Amount)
	}
	if r.Price < 0 || r.Price > 1 {
		return fmt.Errorf("%w: price must be within [0,1], got %v", ErrInvalidOrder, r.Price)
	}
	return nil
}

// OrderResult wraps the API response after order submission.
type OrderResult struct {
	Success bool
	OrderID string
	Status  string
	Message string
}
