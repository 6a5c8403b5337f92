package token

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// NativeMint is the sentinel mint address the chain uses for the wrapped
// native asset (XNT on X1, same convention as wrapped SOL).
var NativeMint = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

// Token is a tradable asset from the static registry. Two tokens are the same
// token exactly when their mint addresses are equal.
type Token struct {
	Symbol   string
	Mint     solana.PublicKey
	Decimals uint8
	Logo     string
}

// IsNative reports whether the token is the chain's native asset, which pays
// transaction fees and therefore needs a reserve held back from max-amount
// shortcuts.
func (t Token) IsNative() bool {
	return t.Mint.Equals(NativeMint)
}

// Equals compares tokens by mint address.
func (t Token) Equals(other Token) bool {
	return t.Mint.Equals(other.Mint)
}

func (t Token) String() string {
	return t.Symbol
}

// The tradable pair set. Adding a token means redeploying with a new registry
// entry, not a runtime API.
var (
	XNT = Token{
		Symbol:   "XNT",
		Mint:     NativeMint,
		Decimals: 9,
		Logo:     "⚡",
	}
	HBC = Token{
		Symbol:   "HBC",
		Mint:     solana.MustPublicKeyFromBase58("GnbZJKXBxS1om9dWqnd6UPMevM1Np4Wx9SBQwNTLyw9T"),
		Decimals: 9,
		Logo:     "💀",
	}
	USDC = Token{
		Symbol:   "USDC.x",
		Mint:     solana.MustPublicKeyFromBase58("B69chRzqzDCmdB5WYB8NRu5Yv5ZA95ABiZcdzCgGm9Tq"),
		Decimals: 6,
		Logo:     "💵",
	}
)

// HBCUSDCPool is the on-chain pool for the HBC/USDC.x pair.
var HBCUSDCPool = solana.MustPublicKeyFromBase58("7oCifpKkiCNut7wp21z461uAoiZbsNbnhbPTXkGpedVA")

var registry = []Token{XNT, HBC, USDC}

// All returns the registry tokens in display order.
func All() []Token {
	out := make([]Token, len(registry))
	copy(out, registry)
	return out
}

// BySymbol looks a token up by symbol, case-insensitively.
func BySymbol(symbol string) (Token, error) {
	for _, t := range registry {
		if strings.EqualFold(t.Symbol, symbol) {
			return t, nil
		}
	}
	return Token{}, fmt.Errorf("token '%s' not found", symbol)
}

// ByMint looks a token up by mint address.
func ByMint(mint solana.PublicKey) (Token, error) {
	for _, t := range registry {
		if t.Mint.Equals(mint) {
			return t, nil
		}
	}
	return Token{}, fmt.Errorf("token with mint %s not found", mint)
}
