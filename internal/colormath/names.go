package colormath

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse accepts "#rrggbb", "#rgb" or a CSS color name such as "red".
func Parse(s string) (RGB, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return HexToRGB(ExpandShorthandHex(s))
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGB{R: int(c.R), G: int(c.G), B: int(c.B)}, true
	}
	return HexToRGB(s)
}

// Color returns c as an opaque color.NRGBA.
func (c RGB) Color() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, RGBMax)),
		G: uint8(clamp(c.G, 0, RGBMax)),
		B: uint8(clamp(c.B, 0, RGBMax)),
		A: 0xff,
	}
}

// FromColor drops alpha after un-premultiplying.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: int(n.R), G: int(n.G), B: int(n.B)}
}

// ToColor resolves any string accepted by Parse, falling back to black.
func ToColor(s string) color.NRGBA {
	c, ok := Parse(s)
	if !ok {
		return color.NRGBA{A: 0xff}
	}
	return c.Color()
}
