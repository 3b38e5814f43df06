package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#336699", Color(0xFF336699)},
		{"#FF336699", Color(0xFF336699)},
		{"#80336699", Color(0x80336699)},
		{"#369", Color(0xFF336699)},
		{" #369 ", Color(0xFF336699)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseColorNamed(t *testing.T) {
	red, err := ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, ColorRed, red)

	// Case-insensitive lookup.
	blue, err := ParseColor("Blue")
	require.NoError(t, err)
	assert.Equal(t, ColorBlue, blue)

	purple, err := ParseColor("rebeccapurple")
	require.NoError(t, err)
	assert.Equal(t, Color(0xFF663399), purple)
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "nope", "#12", "#12345", "#GGGGGG"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#FF336699", Color(0xFF336699).String())
	assert.Equal(t, "#00000000", ColorTransparent.String())
}

func TestColorComponents(t *testing.T) {
	c := RGBA8(0x10, 0x20, 0x30, 0x80)
	r, g, b, a := c.RGBAF()
	assert.InDelta(t, 0x10/255.0, r, 1e-9)
	assert.InDelta(t, 0x20/255.0, g, 1e-9)
	assert.InDelta(t, 0x30/255.0, b, 1e-9)
	assert.InDelta(t, 0x80/255.0, a, 1e-9)

	assert.Equal(t, Color(0xFF102030), c.WithAlpha8(0xFF))
}
