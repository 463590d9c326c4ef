package colormath

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSV
	}{
		{"black", RGB{0, 0, 0}, HSV{0, 0, 0}},
		{"white", RGB{255, 255, 255}, HSV{0, 0, 100}},
		{"mid gray is achromatic", RGB{128, 128, 128}, HSV{0, 0, 50}},
		{"red", RGB{255, 0, 0}, HSV{0, 100, 100}},
		{"green", RGB{0, 255, 0}, HSV{120, 100, 100}},
		{"blue", RGB{0, 0, 255}, HSV{240, 100, 100}},
		{"yellow ties red and green", RGB{255, 255, 0}, HSV{60, 100, 100}},
		{"magenta ties red and blue", RGB{255, 0, 255}, HSV{300, 100, 100}},
		{"cyan ties green and blue", RGB{0, 255, 255}, HSV{180, 100, 100}},
		{"palette red", RGB{237, 28, 36}, HSV{358, 88, 93}},
		{"palette orange", RGB{242, 101, 34}, HSV{19, 86, 95}},
		{"hue rounding to 360 wraps", RGB{255, 0, 1}, HSV{0, 100, 100}},
		{"out of range channels clamp", RGB{300, -4, 0}, HSV{0, 100, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToHSV(tt.in))
		})
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name string
		in   HSV
		want RGB
	}{
		{"red", HSV{0, 100, 100}, RGB{255, 0, 0}},
		{"green", HSV{120, 100, 100}, RGB{0, 255, 0}},
		{"blue", HSV{240, 100, 100}, RGB{0, 0, 255}},
		{"hue 360 is red", HSV{360, 100, 100}, RGB{255, 0, 0}},
		{"negative hue wraps", HSV{-120, 100, 100}, RGB{0, 0, 255}},
		{"overflowing hue wraps", HSV{480, 100, 100}, RGB{0, 255, 0}},
		{"gray truncates", HSV{0, 0, 50}, RGB{127, 127, 127}},
		{"black", HSV{200, 80, 0}, RGB{0, 0, 0}},
		{"saturation and value clamp", HSV{0, 150, 120}, RGB{255, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HSVToRGB(tt.in))
		})
	}
}

func TestRoundTripExactForPrimaries(t *testing.T) {
	for _, c := range []RGB{
		{0, 0, 0}, {255, 255, 255},
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{255, 255, 0}, {0, 255, 255}, {255, 0, 255},
	} {
		assert.Equal(t, c, HSVToRGB(RGBToHSV(c)), "round trip of %v", c)
	}
}

// Integer-percent HSV loses precision, so the round trip is bounded rather
// than exact. The worst case over the cube is 4, reached at (0, 207, 246).
func TestRoundTripBoundedOverCube(t *testing.T) {
	const bound = 4
	worst := 0
	for r := 0; r <= 255; r++ {
		for g := 0; g <= 255; g++ {
			for b := 0; b <= 255; b++ {
				in := RGB{r, g, b}
				out := HSVToRGB(RGBToHSV(in))
				d := max(abs(out.R-r), abs(out.G-g), abs(out.B-b))
				if d > worst {
					worst = d
				}
				if d > bound {
					t.Fatalf("round trip of %v gave %v", in, out)
				}
			}
		}
	}
	assert.Equal(t, bound, worst)
	assert.Equal(t, RGB{0, 203, 244}, RGB{0, 207, 246}.HSV().RGB())
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		in   RGB
		want string
	}{
		{RGB{0, 0, 0}, "#000000"},
		{RGB{255, 255, 255}, "#ffffff"},
		{RGB{1, 10, 15}, "#010a0f"},
		{RGB{237, 28, 36}, "#ed1c24"},
		{RGB{256, -1, 16}, "#ff0010"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToHex(tt.in))
		})
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in     string
		want   RGB
		wantOK bool
	}{
		{"#ed1c24", RGB{237, 28, 36}, true},
		{"ED1C24", RGB{237, 28, 36}, true},
		{"#Ed1C24", RGB{237, 28, 36}, true},
		{"#000000", RGB{}, true},
		{"", RGB{}, false},
		{"#", RGB{}, false},
		{"#abc", RGB{}, false},
		{"#ed1c2", RGB{}, false},
		{"#ed1c245", RGB{}, false},
		{"#gg0000", RGB{}, false},
		{"#+f0000", RGB{}, false},
		{"##ed1c24", RGB{}, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			got, ok := HexToRGB(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexRoundTripNormalizesCase(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#Ed1C24", "#00aeef", "#57FF0A", "#123abc"} {
		rgb, ok := HexToRGB(hex)
		require.True(t, ok, hex)
		assert.Equal(t, strings.ToLower(hex), RGBToHex(rgb))
	}
}

func TestHexRoundTripAllChannelValues(t *testing.T) {
	for n := 0; n <= 255; n++ {
		hex := fmt.Sprintf("#%02X%02x%02X", n, 255-n, n/2)
		rgb, ok := HexToRGB(hex)
		require.True(t, ok, hex)
		require.Equal(t, strings.ToLower(hex), RGBToHex(rgb))
	}
}

func TestHSVHexComposition(t *testing.T) {
	assert.Equal(t, "#ff0000", HSVToHex(HSV{0, 100, 100}))
	assert.Equal(t, "#7f7f7f", HSVToHex(HSV{0, 0, 50}))

	hsv, ok := HexToHSV("#00AEEF")
	require.True(t, ok)
	assert.Equal(t, HSV{196, 100, 94}, hsv)

	_, ok = HexToHSV("nope")
	assert.False(t, ok)
}

func TestExpandShorthandHex(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#abc", "#aabbcc"},
		{"#F0a", "#FF00aa"},
		{"#aabbcc", "#aabbcc"},
		{"abc", "abc"},
		{"", ""},
		{"#abcd", "#abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandShorthandHex(tt.in))
		})
	}
}

func TestPositionalAdaptersMatchStructured(t *testing.T) {
	for _, c := range []RGB{{12, 200, 99}, {255, 222, 23}, {0, 0, 0}, {136, 136, 136}} {
		h, s, v := RGBToHSVComponents(c.R, c.G, c.B)
		assert.Equal(t, RGBToHSV(c), HSV{h, s, v})

		r, g, b := HSVToRGBComponents(h, s, v)
		assert.Equal(t, HSVToRGB(HSV{h, s, v}), RGB{r, g, b})
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
