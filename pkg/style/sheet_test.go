package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSheet = `
title:
  color: white
  background: "#336699"
  fontSize: 24
  fontWeight: bold
body:
  color: "#333"
  fontSize: 14
plain: {}
`

func TestLoadSheet(t *testing.T) {
	sheet, err := LoadSheet([]byte(sampleSheet))
	require.NoError(t, err)

	title, ok := sheet.Resolve("title")
	require.True(t, ok)
	assert.Equal(t, ColorWhite, title.Color)
	assert.Equal(t, Color(0xFF336699), title.Background)
	assert.Equal(t, 24.0, title.FontSize)
	assert.Equal(t, WeightBold, title.FontWeight)

	body, ok := sheet.Resolve("body")
	require.True(t, ok)
	assert.Equal(t, Color(0xFF333333), body.Color)
	assert.Equal(t, 14.0, body.FontSize)
	assert.Empty(t, body.FontWeight)

	plain, ok := sheet.Resolve("plain")
	require.True(t, ok)
	assert.True(t, plain.IsZero())

	assert.ElementsMatch(t, []string{"title", "body", "plain"}, sheet.Names())
}

func TestLoadSheetMissingName(t *testing.T) {
	sheet, err := LoadSheet([]byte(sampleSheet))
	require.NoError(t, err)

	_, ok := sheet.Resolve("missing")
	assert.False(t, ok)
	assert.Panics(t, func() { sheet.MustResolve("missing") })
}

func TestLoadSheetInvalid(t *testing.T) {
	_, err := LoadSheet([]byte("title: [not-a-style"))
	assert.Error(t, err)

	_, err = LoadSheet([]byte("title:\n  color: nope\n"))
	assert.Error(t, err)
}

func TestNilSheetResolves(t *testing.T) {
	var sheet *Sheet
	_, ok := sheet.Resolve("anything")
	assert.False(t, ok)
	assert.Nil(t, sheet.Names())
}

func TestStyleMerge(t *testing.T) {
	base := Style{Color: ColorBlack, FontSize: 14}
	over := Style{Color: ColorRed, FontWeight: WeightBold}
	merged := base.Merge(over)
	assert.Equal(t, ColorRed, merged.Color)
	assert.Equal(t, 14.0, merged.FontSize)
	assert.Equal(t, WeightBold, merged.FontWeight)

	assert.Equal(t, base, base.Merge(Style{}))
}
