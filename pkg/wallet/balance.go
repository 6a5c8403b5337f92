package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"

	"github.com/cgrie0321-cell/hbc-trading/pkg/token"
)

// BalanceService reads wallet balances from the chain RPC. Native balances
// come from getBalance, SPL balances from the owner's associated token
// account. A missing token account reads as a zero balance, not an error.
type BalanceService struct {
	rpcClient  *rpc.Client
	commitment rpc.CommitmentType
}

// NewBalanceService creates a balance reader at the given commitment level.
func NewBalanceService(rpcClient *rpc.Client, commitment rpc.CommitmentType) *BalanceService {
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}
	return &BalanceService{rpcClient: rpcClient, commitment: commitment}
}

// Balance returns the owner's balance of t in human units.
func (s *BalanceService) Balance(ctx context.Context, owner solana.PublicKey, t token.Token) (decimal.Decimal, error) {
	if t.IsNative() {
		out, err := s.rpcClient.GetBalance(ctx, owner, s.commitment)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
		}
		return token.FromBaseUnits(out.Value, t.Decimals), nil
	}

	ata, _, err := solana.FindAssociatedTokenAddress(owner, t.Mint)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to derive associated token address: %w", err)
	}

	out, err := s.rpcClient.GetTokenAccountBalance(ctx, ata, s.commitment)
	if err != nil {
		if isAccountNotFound(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get token balance: %w", err)
	}

	amount, err := decimal.NewFromString(out.Value.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse token balance: %w", err)
	}
	return amount.Shift(-int32(t.Decimals)), nil
}

func isAccountNotFound(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "not found") || strings.Contains(msg, "could not find account")
}
