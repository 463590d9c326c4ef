// Package picker holds the state behind a wheel-and-slider color picker.
//
// The wheel maps angle to hue and distance from the center to saturation.
// Hue 0 sits at three o'clock and grows counter-clockwise on screen; screen
// y grows downward. The slider maps its offset to value, full brightness at
// offset 0 and black at the far end.
package picker

import (
	"math"

	"SketchBoard/internal/colormath"
)

// Swatches are the preset colors shown under the wheel.
var Swatches = []string{
	"#000000",
	"#888888",
	"#ed1c24",
	"#d11cd5",
	"#1633e6",
	"#00aeef",
	"#00c85d",
	"#57ff0a",
	"#ffde17",
	"#f26522",
}

// DefaultColor is used when no initial color is configured.
var DefaultColor = colormath.HSV{H: 0, S: 100, V: 100}

type Picker struct {
	color colormath.HSV

	// OnChanged is called after every change to the selected color.
	OnChanged func(colormath.HSV)
}

func New(initial colormath.HSV) *Picker {
	return &Picker{color: initial}
}

// NewFromHex falls back to DefaultColor when hex does not parse.
func NewFromHex(hex string) *Picker {
	p := New(DefaultColor)
	p.SetFromHex(hex)
	return p
}

func (p *Picker) HSV() colormath.HSV { return p.color }
func (p *Picker) RGB() colormath.RGB { return p.color.RGB() }
func (p *Picker) Hex() string        { return p.color.Hex() }

func (p *Picker) SetHSV(c colormath.HSV) {
	c.H = int(colormath.NormalizeHue(float64(c.H)))
	c.S = clampInt(c.S, 0, colormath.SVMax)
	c.V = clampInt(c.V, 0, colormath.SVMax)
	p.set(c)
}

// SetFromWheelPosition takes the pointer offset from the wheel center.
// Points outside the wheel saturate at 100. Value is left alone.
func (p *Picker) SetFromWheelPosition(px, py, wheelRadius float64) {
	if wheelRadius <= 0 {
		return
	}
	h, s := wheelHueSat(px, py, wheelRadius)
	p.set(colormath.HSV{H: h, S: s, V: p.color.V})
}

// SetFromSliderPosition takes the pointer offset along the slider.
func (p *Picker) SetFromSliderPosition(offset, sliderLength float64) {
	if sliderLength <= 0 {
		return
	}
	t := clamp01(offset / sliderLength)
	v := int(math.Round((1 - t) * colormath.SVMax))
	p.set(colormath.HSV{H: p.color.H, S: p.color.S, V: v})
}

// SetFromHex accepts "#rrggbb" or "#rgb". Malformed input leaves the
// picker untouched and returns false.
func (p *Picker) SetFromHex(hex string) bool {
	hsv, ok := colormath.HexToHSV(colormath.ExpandShorthandHex(hex))
	if !ok {
		return false
	}
	p.set(hsv)
	return true
}

// SelectSwatch picks Swatches[i]. Out of range indexes are ignored.
func (p *Picker) SelectSwatch(i int) bool {
	if i < 0 || i >= len(Swatches) {
		return false
	}
	return p.SetFromHex(Swatches[i])
}

// WheelThumbPosition is the offset from the wheel center at which the
// current hue and saturation sit.
func (p *Picker) WheelThumbPosition(wheelRadius float64) (x, y float64) {
	angle := float64(p.color.H) * math.Pi / 180
	r := float64(p.color.S) / colormath.SVMax * wheelRadius
	return r * math.Cos(angle), -r * math.Sin(angle)
}

func (p *Picker) SliderThumbOffset(sliderLength float64) float64 {
	return (1 - float64(p.color.V)/colormath.SVMax) * sliderLength
}

// WheelColorAt is the color the wheel artwork shows at offset (px, py),
// drawn at the given value. ok is false outside the wheel.
func WheelColorAt(px, py, wheelRadius float64, value int) (c colormath.RGB, ok bool) {
	if wheelRadius <= 0 || math.Hypot(px, py) > wheelRadius {
		return colormath.RGB{}, false
	}
	h, s := wheelHueSat(px, py, wheelRadius)
	return colormath.HSVToRGB(colormath.HSV{H: h, S: s, V: value}), true
}

func (p *Picker) set(c colormath.HSV) {
	p.color = c
	if p.OnChanged != nil {
		p.OnChanged(c)
	}
}

func wheelHueSat(px, py, wheelRadius float64) (h, s int) {
	deg := colormath.NormalizeHue(math.Atan2(-py, px) * 180 / math.Pi)
	h = int(math.Round(deg)) % colormath.HueMax
	s = int(math.Round(clamp01(math.Hypot(px, py)/wheelRadius) * colormath.SVMax))
	return h, s
}

func clamp01(f float64) float64 {
	if f < 0 || math.IsNaN(f) {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
