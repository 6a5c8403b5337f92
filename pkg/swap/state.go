package swap

import (
	"github.com/shopspring/decimal"

	"github.com/cgrie0321-cell/hbc-trading/pkg/token"
	"github.com/cgrie0321-cell/hbc-trading/pkg/xdex"
)

// Status is the workflow's lifecycle phase.
type Status int

const (
	StatusIdle Status = iota
	StatusQuoting
	StatusReady
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusQuoting:
		return "quoting"
	case StatusReady:
		return "ready"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the workflow state, safe to read after
// the controller has moved on. The view layer renders snapshots and never
// mutates controller state directly.
type Snapshot struct {
	TokenIn  token.Token
	TokenOut token.Token

	AmountIn  string // raw user text
	AmountOut string // derived from the current quote, blank while quoting

	SlippageBps uint16

	// Balances are nil while unknown (disconnected, or not yet fetched).
	BalanceIn  *decimal.Decimal
	BalanceOut *decimal.Decimal

	Quote     *xdex.PrepareResponse
	Status    Status
	Signature string // set on succeeded
	Err       string // set on failed

	Connected bool

	// SubmitLabel and CanSubmit are the evaluated submit preconditions.
	SubmitLabel string
	CanSubmit   bool
}

// Rate returns amountOut/amountIn when both parse, or nil.
func (s *Snapshot) Rate() *decimal.Decimal {
	in, errIn := decimal.NewFromString(s.AmountIn)
	out, errOut := decimal.NewFromString(s.AmountOut)
	if errIn != nil || errOut != nil || in.IsZero() {
		return nil
	}
	rate := out.DivRound(in, 12)
	return &rate
}
