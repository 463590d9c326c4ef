// Package colormath converts colors between RGB, HSV and hex strings.
//
// HSV uses integer degrees for hue (0-359) and integer percent for
// saturation and value (0-100). RGB channels are 0-255.
package colormath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	RGBMax = 255
	HueMax = 360
	SVMax  = 100
)

// RGB is a color with 8-bit channels stored as ints.
type RGB struct {
	R, G, B int
}

// HSV is a color in hue/saturation/value form.
type HSV struct {
	H, S, V int
}

// NormalizeHue folds any hue into [0, 360).
func NormalizeHue(degrees float64) float64 {
	return math.Mod(math.Mod(degrees, HueMax)+HueMax, HueMax)
}

// RGBToHSV rounds each HSV component to the nearest integer.
func RGBToHSV(c RGB) HSV {
	r := unit(clamp(c.R, 0, RGBMax), RGBMax)
	g := unit(clamp(c.G, 0, RGBMax), RGBMax)
	b := unit(clamp(c.B, 0, RGBMax), RGBMax)

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	d := maxC - minC

	var h, s float64
	if maxC != 0 {
		s = d / maxC
	}

	// Ties go to r, then g, then b.
	switch {
	case d == 0:
		h = 0
	case maxC == r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case maxC == g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	hue := int(math.Round(h * HueMax))
	if hue >= HueMax {
		hue -= HueMax
	}
	return HSV{
		H: hue,
		S: int(math.Round(s * SVMax)),
		V: int(math.Round(maxC * SVMax)),
	}
}

// HSVToRGB truncates each channel rather than rounding, so a round trip
// through RGBToHSV can drift by a few units per channel.
func HSVToRGB(c HSV) RGB {
	h := NormalizeHue(float64(c.H)) / HueMax * 6
	s := unit(clamp(c.S, 0, SVMax), SVMax)
	v := unit(clamp(c.V, 0, SVMax), SVMax)

	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	sector := int(i) % 6
	r := [6]float64{v, q, p, p, t, v}[sector]
	g := [6]float64{t, v, v, q, p, p}[sector]
	b := [6]float64{p, p, t, v, v, q}[sector]

	return RGB{
		R: int(math.Floor(r * RGBMax)),
		G: int(math.Floor(g * RGBMax)),
		B: int(math.Floor(b * RGBMax)),
	}
}

// RGBToHex formats c as "#rrggbb". Channels are clamped to 0-255.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x",
		clamp(c.R, 0, RGBMax), clamp(c.G, 0, RGBMax), clamp(c.B, 0, RGBMax))
}

// HexToRGB parses "#rrggbb" or "rrggbb" in any letter case.
// ok is false for anything else.
func HexToRGB(hex string) (RGB, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return RGB{}, false
	}
	var ch [3]int
	for i := range ch {
		n, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = int(n)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

func HSVToHex(c HSV) string {
	return RGBToHex(HSVToRGB(c))
}

func HexToHSV(hex string) (HSV, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return HSV{}, false
	}
	return RGBToHSV(rgb), true
}

// ExpandShorthandHex turns "#abc" into "#aabbcc". Any string that is not
// four characters long is returned unchanged.
func ExpandShorthandHex(hex string) string {
	if len(hex) != 4 {
		return hex
	}
	return string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
}

// RGBToHSVComponents is RGBToHSV for callers holding loose channel values.
func RGBToHSVComponents(r, g, b int) (h, s, v int) {
	c := RGBToHSV(RGB{R: r, G: g, B: b})
	return c.H, c.S, c.V
}

// HSVToRGBComponents is HSVToRGB for callers holding loose components.
func HSVToRGBComponents(h, s, v int) (r, g, b int) {
	c := HSVToRGB(HSV{H: h, S: s, V: v})
	return c.R, c.G, c.B
}

func (c RGB) Hex() string { return RGBToHex(c) }
func (c RGB) HSV() HSV    { return RGBToHSV(c) }
func (c HSV) RGB() RGB    { return HSVToRGB(c) }
func (c HSV) Hex() string { return HSVToHex(c) }

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%d, %d%%, %d%%)", c.H, c.S, c.V)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// unit maps n in [0, full] onto [0, 1]; full itself maps to exactly 1.
func unit(n, full int) float64 {
	if n == full {
		return 1
	}
	return float64(n%full) / float64(full)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
