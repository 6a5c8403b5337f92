package swap

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Submission preconditions, in the order they gate the submit action. Each
// one maps to a distinct status label via SubmitLabel.
var (
	ErrNotConnected   = errors.New("wallet not connected")
	ErrSubmitInFlight = errors.New("a swap is already being submitted")
	ErrQuoteInFlight  = errors.New("quote still loading")
	ErrNoAmount       = errors.New("no amount entered")
	ErrNoQuote        = errors.New("no swap transaction available for the current input")

	ErrClosed = errors.New("swap controller is closed")
)

// InsufficientBalanceError blocks submission locally, before any network
// call. The comparison behind it uses the token's own decimal precision.
type InsufficientBalanceError struct {
	Symbol  string
	Amount  decimal.Decimal
	Balance decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance: have %s, need %s", e.Symbol, e.Balance, e.Amount)
}

// SubmitLabel maps a submit precondition failure to the action label the
// presentation layer shows. A nil error means the swap is ready.
func SubmitLabel(err error) string {
	var insufficient *InsufficientBalanceError
	switch {
	case err == nil:
		return "Swap"
	case errors.Is(err, ErrNotConnected):
		return "Connect Wallet"
	case errors.Is(err, ErrSubmitInFlight):
		return "Swapping..."
	case errors.Is(err, ErrQuoteInFlight):
		return "Getting Quote..."
	case errors.As(err, &insufficient):
		return "Insufficient Balance"
	case errors.Is(err, ErrNoAmount):
		return "Enter Amount"
	default:
		return "Unable to Swap"
	}
}
