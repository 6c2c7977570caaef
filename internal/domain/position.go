package domain

// Position is one holding returned by the data API for a wallet address.
// Requires authentication to fetch.
type Position struct {
	Asset       string // token id of the held outcome
	ConditionID string
	Title       string
	Outcome     string
	Size        float64
	AvgPrice    float64
	CurPrice    float64
	CashPnL     float64
}
