package stylesheet

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
/* panel chrome */
.panel { background: #1a1a1a; width: 245px; left: 100%; top: 0; }
#matrix { color: #0f0; font-size: 12px }
body { color: #fff; }
.panel .title { color: #f00; }
.panel { padding: 6; }
`

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(sample)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3, "element and descendant selectors are skipped")

	assert.Equal(t, ".panel", sheet.Rules[0].Selector)
	assert.Equal(t, "#1a1a1a", sheet.Rules[0].Props["background"])
	assert.Equal(t, "245px", sheet.Rules[0].Props["width"])
	assert.Equal(t, "100%", sheet.Rules[0].Props["left"])
	assert.Equal(t, "#matrix", sheet.Rules[1].Selector)
	assert.Equal(t, "12px", sheet.Rules[1].Props["font-size"])
}

func TestResolve(t *testing.T) {
	sheet, err := ParseCSS(sample)
	require.NoError(t, err)

	panel := sheet.Resolve("panel", "")
	assert.Equal(t, color.RGBA{0x1a, 0x1a, 0x1a, 255}, panel.Background)
	assert.Equal(t, int32(245), panel.Width)
	assert.Equal(t, int32(100), panel.LeftPct)
	assert.Equal(t, int32(0), panel.Top)
	assert.Equal(t, int32(6), panel.Padding, "later rule overrides")

	matrix := sheet.Resolve("readout", "matrix")
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, matrix.Color)
	assert.Equal(t, int32(12), matrix.FontSize)

	none := sheet.Resolve("unknown", "")
	assert.Equal(t, DefaultComputedStyle(), none)

	var nilSheet *Stylesheet
	assert.Equal(t, DefaultComputedStyle(), nilSheet.Resolve("panel", ""))
}

func TestParseHexColor(t *testing.T) {
	c, ok := ParseHexColor("#abc")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0xaa, 0xbb, 0xcc, 255}, c)

	c, ok = ParseHexColor("#10203040")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0x40}, c)

	for _, bad := range []string{"", "red", "#12", "#12345", "#zzzzzz"} {
		_, ok := ParseHexColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseUnits(t *testing.T) {
	n, ok := ParsePx(" 12px ")
	assert.True(t, ok)
	assert.Equal(t, int32(12), n)
	_, ok = ParsePx("wide")
	assert.False(t, ok)

	n, ok = ParsePct("50%")
	assert.True(t, ok)
	assert.Equal(t, int32(50), n)
	_, ok = ParsePct("150%")
	assert.False(t, ok)
}
