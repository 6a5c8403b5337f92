package xdex

import "github.com/shopspring/decimal"

// PrepareRequest is the body for POST /swap/prepare. Amounts are human units,
// not base units; the aggregator scales by the mint's decimals itself.
type PrepareRequest struct {
	Network       string  `json:"network"`
	Wallet        string  `json:"wallet"`
	TokenIn       string  `json:"token_in"`
	TokenOut      string  `json:"token_out"`
	TokenInAmount float64 `json:"token_in_amount"`
	IsExactIn     bool    `json:"is_exact_amount_in"`
}

// PrepareResponse is the aggregator's answer. Everything beyond Success is
// optional and untrusted: check each field for presence before use.
type PrepareResponse struct {
	Success         bool             `json:"success"`
	Transaction     string           `json:"transaction,omitempty"` // base64-encoded, ready to sign
	EstimatedOutput *decimal.Decimal `json:"estimatedOutput,omitempty"`
	PriceImpact     *decimal.Decimal `json:"priceImpact,omitempty"`
	Route           []string         `json:"route,omitempty"`
	MinimumReceived *decimal.Decimal `json:"minimumReceived,omitempty"`
	Fee             *decimal.Decimal `json:"fee,omitempty"`
	Error           string           `json:"error,omitempty"`
	Message         string           `json:"message,omitempty"`
}

// ErrorMessage returns the server-reported error, preferring the message
// field the way the web client did.
func (r *PrepareResponse) ErrorMessage() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Error
}
