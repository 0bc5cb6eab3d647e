package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex_BlackWithOpacity(t *testing.T) {
	c, err := ParseHex("#000000", 0.7)
	require.NoError(t, err)
	assert.Equal(t, RGBA{R: 0, G: 0, B: 0, A: 0.7}, c)
	assert.Equal(t, "rgba(0, 0, 0, 0.7)", c.CSS())
}

func TestExpandHex(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"#0f0", "#00ff00"},
		{"0F0", "#00ff00"},
		{"#ABCDEF", "#abcdef"},
		{" #123456 ", "#123456"},
	}

	for _, tt := range tests {
		got, err := ExpandHex(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.expected, got)
	}
}

func TestParseHex_ShortFormMatchesLongForm(t *testing.T) {
	short, err := ParseHex("#0f0", 1)
	require.NoError(t, err)
	long, err := ParseHex("#00ff00", 1)
	require.NoError(t, err)

	assert.Equal(t, long, short)
	assert.Equal(t, RGBA{R: 0, G: 255, B: 0, A: 1}, short)
}

func TestParseHex_ClampsOpacity(t *testing.T) {
	c, err := ParseHex("#ffffff", 1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.A)

	c, err = ParseHex("#ffffff", -0.2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.A)
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#ggg", "red"} {
		_, err := ParseHex(in, 1)
		assert.Error(t, err, in)
	}
}

func TestRGBA_NRGBA(t *testing.T) {
	c := RGBA{R: 10, G: 20, B: 30, A: 0.5}
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 128}, c.NRGBA())
}
