package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		css      string
		expected color.NRGBA
	}{
		{"#ff6600", color.NRGBA{R: 255, G: 102, B: 0, A: 255}},
		{"#FFF", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"red", color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{"rgb(0, 128, 255)", color.NRGBA{R: 0, G: 128, B: 255, A: 255}},
		{"rgba(255, 0, 0, 0.5)", color.NRGBA{R: 255, G: 0, B: 0, A: 127}},
		{"hsl(0, 100%, 50%)", color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{"transparent", color.NRGBA{}},
	}
	for _, test := range tests {
		tint, err := ParseColor(test.css)
		require.NoError(t, err, test.css)
		assert.Equal(t, test.expected, tint.NRGBA(), test.css)
	}
}

func TestParseColor_HexAlpha(t *testing.T) {
	tint, err := ParseColor("#ff000080")
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255.0, tint.Alpha, 1e-9)
	assert.Equal(t, uint8(255), tint.NRGBA().R)
}

func TestParseColor_Invalid(t *testing.T) {
	for _, css := range []string{"", "#12", "#gggggg", "notacolor", "rgb(1,2)", "hsl(x, 1%, 1%)"} {
		_, err := ParseColor(css)
		assert.ErrorIs(t, err, ErrInvalidColor, css)
	}
}

func TestTint_Blend(t *testing.T) {
	start := MustParseColor("#ff0000")
	end := MustParseColor("#0000ff")

	assert.Equal(t, start.NRGBA(), start.Blend(end, 0).NRGBA())
	assert.Equal(t, end.NRGBA(), start.Blend(end, 1).NRGBA())
	mid := start.Blend(end, 0.5).NRGBA()
	assert.InDelta(t, 127, int(mid.R), 1)
	assert.InDelta(t, 127, int(mid.B), 1)
	assert.Equal(t, uint8(255), mid.A)
}
