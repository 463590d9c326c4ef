package picker

import (
	"testing"

	"SketchBoard/internal/colormath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFromWheelPosition(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		wantH  int
		wantS  int
	}{
		{"right edge is hue 0", 100, 0, 0, 100},
		{"top is hue 90", 0, -100, 90, 100},
		{"left half way is hue 180", -50, 0, 180, 50},
		{"bottom is hue 270", 0, 100, 270, 100},
		{"center is unsaturated", 0, 0, 0, 0},
		{"outside the wheel clamps", 300, 0, 0, 100},
		{"outside on a diagonal clamps", -400, -400, 135, 100},
		{"just below the x axis wraps", 100, 0.1, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(colormath.HSV{H: 10, S: 10, V: 42})
			p.SetFromWheelPosition(tt.px, tt.py, 100)
			assert.Equal(t, colormath.HSV{H: tt.wantH, S: tt.wantS, V: 42}, p.HSV())
		})
	}
}

func TestSetFromWheelPositionIgnoresDegenerateRadius(t *testing.T) {
	p := New(colormath.HSV{H: 10, S: 20, V: 30})
	p.SetFromWheelPosition(5, 5, 0)
	p.SetFromWheelPosition(5, 5, -3)
	assert.Equal(t, colormath.HSV{H: 10, S: 20, V: 30}, p.HSV())
}

func TestWheelThumbPositionInvertsWheel(t *testing.T) {
	p := New(colormath.HSV{H: 90, S: 50, V: 100})
	x, y := p.WheelThumbPosition(200)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, -100, y, 1e-9)

	for _, c := range []colormath.HSV{
		{H: 0, S: 100, V: 80},
		{H: 45, S: 30, V: 80},
		{H: 200, S: 75, V: 80},
		{H: 359, S: 100, V: 80},
	} {
		p := New(c)
		x, y := p.WheelThumbPosition(120)
		p.SetFromWheelPosition(x, y, 120)
		assert.Equal(t, c, p.HSV())
	}
}

func TestSetFromSliderPosition(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		wantV  int
	}{
		{"start is full brightness", 0, 100},
		{"end is black", 200, 0},
		{"quarter", 50, 75},
		{"before start clamps", -30, 100},
		{"past end clamps", 500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(colormath.HSV{H: 200, S: 60, V: 10})
			p.SetFromSliderPosition(tt.offset, 200)
			assert.Equal(t, colormath.HSV{H: 200, S: 60, V: tt.wantV}, p.HSV())
		})
	}

	p := New(colormath.HSV{H: 200, S: 60, V: 10})
	p.SetFromSliderPosition(10, 0)
	assert.Equal(t, 10, p.HSV().V)

	p.SetFromSliderPosition(30, 200)
	assert.InDelta(t, 30, p.SliderThumbOffset(200), 1e-9)
}

func TestSetFromHex(t *testing.T) {
	p := New(DefaultColor)

	require.True(t, p.SetFromHex("#00AEEF"))
	assert.Equal(t, "#00aeef", p.Hex())
	assert.Equal(t, colormath.RGB{R: 0, G: 174, B: 239}, p.RGB())
	assert.Equal(t, colormath.HSV{H: 196, S: 100, V: 94}, p.HSV())

	require.True(t, p.SetFromHex("#fff"))
	assert.Equal(t, colormath.HSV{H: 0, S: 0, V: 100}, p.HSV())

	for _, bad := range []string{"", "#ff", "#zzzzzz", "blue", "#1234567"} {
		assert.False(t, p.SetFromHex(bad), bad)
		assert.Equal(t, colormath.HSV{H: 0, S: 0, V: 100}, p.HSV(), bad)
	}
}

func TestNewFromHex(t *testing.T) {
	assert.Equal(t, colormath.HSV{H: 240, S: 100, V: 100}, NewFromHex("#0000ff").HSV())
	assert.Equal(t, DefaultColor, NewFromHex("garbage").HSV())
}

func TestSetHSVNormalizes(t *testing.T) {
	p := New(DefaultColor)
	p.SetHSV(colormath.HSV{H: -30, S: 140, V: -5})
	assert.Equal(t, colormath.HSV{H: 330, S: 100, V: 0}, p.HSV())
}

func TestSelectSwatch(t *testing.T) {
	p := New(DefaultColor)
	require.True(t, p.SelectSwatch(2))
	assert.Equal(t, colormath.HSV{H: 358, S: 88, V: 93}, p.HSV())

	assert.False(t, p.SelectSwatch(-1))
	assert.False(t, p.SelectSwatch(len(Swatches)))
	assert.Equal(t, colormath.HSV{H: 358, S: 88, V: 93}, p.HSV())
}

func TestOnChanged(t *testing.T) {
	var got []colormath.HSV
	p := New(DefaultColor)
	p.OnChanged = func(c colormath.HSV) { got = append(got, c) }

	p.SetFromWheelPosition(0, -10, 10)
	p.SetFromSliderPosition(5, 10)
	p.SetFromHex("not hex")
	p.SetFromWheelPosition(1, 1, 0)

	assert.Equal(t, []colormath.HSV{
		{H: 90, S: 100, V: 100},
		{H: 90, S: 100, V: 50},
	}, got)
}

func TestWheelColorAt(t *testing.T) {
	c, ok := WheelColorAt(50, 0, 50, 100)
	require.True(t, ok)
	assert.Equal(t, colormath.RGB{R: 255}, c)

	c, ok = WheelColorAt(0, 0, 50, 100)
	require.True(t, ok)
	assert.Equal(t, colormath.RGB{R: 255, G: 255, B: 255}, c)

	_, ok = WheelColorAt(40, 40, 50, 100)
	assert.False(t, ok)
}
