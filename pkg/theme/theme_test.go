package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("light")
	require.NoError(t, err)
	assert.Equal(t, ModeLight, mode)

	_, err = ParseMode("sepia")
	assert.Error(t, err)
}

func TestParseBrightness(t *testing.T) {
	b, err := ParseBrightness("dim")
	require.NoError(t, err)
	assert.Equal(t, BrightnessDim, b)

	_, err = ParseBrightness("blinding")
	assert.Error(t, err)
}

func TestBrightnessFactor(t *testing.T) {
	assert.Equal(t, 0.85, BrightnessDim.Factor())
	assert.Equal(t, 1.0, BrightnessNormal.Factor())
	assert.Equal(t, 1.1, BrightnessBright.Factor())
	assert.Equal(t, 1.0, Brightness("unknown").Factor())
}
