package colormath

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   RGB
		wantOK bool
	}{
		{"red", RGB{255, 0, 0}, true},
		{"Blue", RGB{0, 0, 255}, true},
		{"green", RGB{0, 128, 0}, true},
		{" yellow ", RGB{255, 255, 0}, true},
		{"#abc", RGB{0xaa, 0xbb, 0xcc}, true},
		{"#ED1C24", RGB{237, 28, 36}, true},
		{"00aeef", RGB{0, 174, 239}, true},
		{"notacolor", RGB{}, false},
		{"#12", RGB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorBridge(t *testing.T) {
	c := RGB{237, 28, 36}
	assert.Equal(t, color.NRGBA{R: 237, G: 28, B: 36, A: 255}, c.Color())
	assert.Equal(t, c, FromColor(c.Color()))
	assert.Equal(t, RGB{0, 0, 255}, FromColor(color.RGBA{B: 255, A: 255}))

	assert.Equal(t, color.NRGBA{R: 255, A: 255}, ToColor("red"))
	assert.Equal(t, color.NRGBA{A: 255}, ToColor("bogus"))
}
