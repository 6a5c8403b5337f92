package token

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount for display, truncated to the token's own
// decimal precision with trailing zeros trimmed. Truncation (not rounding)
// keeps a displayed balance from overstating what the wallet actually holds.
func FormatAmount(amount decimal.Decimal, decimals uint8) string {
	return amount.Truncate(int32(decimals)).String()
}

// ParseAmount parses raw user text into a positive amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s': %w", s, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than 0")
	}
	return d, nil
}

// FromBaseUnits converts a raw on-chain amount (lamports for the native
// asset, smallest token units otherwise) into a human amount.
func FromBaseUnits(raw uint64, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(raw), -int32(decimals))
}

// ToBaseUnits converts a human amount into raw on-chain units, truncating
// anything below the token's precision.
func ToBaseUnits(amount decimal.Decimal, decimals uint8) uint64 {
	return amount.Shift(int32(decimals)).Truncate(0).BigInt().Uint64()
}
