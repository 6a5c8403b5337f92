package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBySymbolCaseInsensitive(t *testing.T) {
	for _, symbol := range []string{"HBC", "hbc", "Hbc"} {
		tok, err := BySymbol(symbol)
		require.NoError(t, err)
		assert.Equal(t, "HBC", tok.Symbol)
	}

	tok, err := BySymbol("usdc.x")
	require.NoError(t, err)
	assert.Equal(t, "USDC.x", tok.Symbol)

	_, err = BySymbol("DOGE")
	assert.Error(t, err)
}

func TestByMint(t *testing.T) {
	tok, err := ByMint(NativeMint)
	require.NoError(t, err)
	assert.Equal(t, "XNT", tok.Symbol)

	_, err = ByMint(HBCUSDCPool)
	assert.Error(t, err)
}

func TestIsNative(t *testing.T) {
	assert.True(t, XNT.IsNative())
	assert.False(t, HBC.IsNative())
	assert.False(t, USDC.IsNative())
}

func TestIdentityByMint(t *testing.T) {
	other := HBC
	other.Symbol = "renamed"
	assert.True(t, HBC.Equals(other))
	assert.False(t, HBC.Equals(USDC))
}

func TestAllReturnsCopy(t *testing.T) {
	tokens := All()
	require.Len(t, tokens, 3)
	tokens[0] = Token{}
	assert.Equal(t, "XNT", All()[0].Symbol)
}
