package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/colormath"
	"SketchBoard/internal/picker"
)

const thumbSize = 14

var thumbColor = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}

// colorWheel maps taps and drags on a hue/saturation disc to the picker.
type colorWheel struct {
	widget.BaseWidget
	picker *picker.Picker
}

func newColorWheel(p *picker.Picker) *colorWheel {
	w := &colorWheel{picker: p}
	w.ExtendBaseWidget(w)
	return w
}

func (w *colorWheel) radius() float32 {
	s := w.Size()
	return min(s.Width, s.Height) / 2
}

func (w *colorWheel) pick(pos fyne.Position) {
	s := w.Size()
	w.picker.SetFromWheelPosition(
		float64(pos.X-s.Width/2), float64(pos.Y-s.Height/2), float64(w.radius()))
}

func (w *colorWheel) Tapped(e *fyne.PointEvent) { w.pick(e.Position) }
func (w *colorWheel) Dragged(e *fyne.DragEvent) { w.pick(e.Position) }
func (w *colorWheel) DragEnd()                  {}

func (w *colorWheel) CreateRenderer() fyne.WidgetRenderer {
	// The disc is drawn from the same mapping the picker reads pointer
	// input with, at full value.
	disc := canvas.NewRasterWithPixels(func(x, y, pw, ph int) color.Color {
		r := float64(min(pw, ph)) / 2
		c, ok := picker.WheelColorAt(float64(x)-float64(pw)/2, float64(y)-float64(ph)/2, r, colormath.SVMax)
		if !ok {
			return color.Transparent
		}
		return c.Color()
	})
	thumb := canvas.NewCircle(thumbColor)
	thumb.StrokeColor = color.NRGBA{R: 46, G: 48, B: 58, A: 0xff}
	thumb.StrokeWidth = 2
	return &colorWheelRenderer{wheel: w, disc: disc, thumb: thumb}
}

type colorWheelRenderer struct {
	wheel *colorWheel
	disc  *canvas.Raster
	thumb *canvas.Circle
}

func (r *colorWheelRenderer) Layout(size fyne.Size) {
	r.disc.Resize(size)
	r.disc.Move(fyne.NewPos(0, 0))
	x, y := r.wheel.picker.WheelThumbPosition(float64(r.wheel.radius()))
	r.thumb.Resize(fyne.NewSquareSize(thumbSize))
	r.thumb.Move(fyne.NewPos(size.Width/2+float32(x)-thumbSize/2, size.Height/2+float32(y)-thumbSize/2))
}

func (r *colorWheelRenderer) MinSize() fyne.Size { return fyne.NewSquareSize(200) }

func (r *colorWheelRenderer) Refresh() {
	r.thumb.FillColor = r.wheel.picker.RGB().Color()
	r.Layout(r.wheel.Size())
	canvas.Refresh(r.wheel)
}

func (r *colorWheelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.disc, r.thumb}
}

func (r *colorWheelRenderer) Destroy() {}

// shadeSlider maps a horizontal offset to value: bright on the left,
// black on the right.
type shadeSlider struct {
	widget.BaseWidget
	picker *picker.Picker
}

func newShadeSlider(p *picker.Picker) *shadeSlider {
	s := &shadeSlider{picker: p}
	s.ExtendBaseWidget(s)
	return s
}

func (s *shadeSlider) pick(pos fyne.Position) {
	s.picker.SetFromSliderPosition(float64(pos.X), float64(s.Size().Width))
}

func (s *shadeSlider) Tapped(e *fyne.PointEvent) { s.pick(e.Position) }
func (s *shadeSlider) Dragged(e *fyne.DragEvent) { s.pick(e.Position) }
func (s *shadeSlider) DragEnd()                  {}

func (s *shadeSlider) CreateRenderer() fyne.WidgetRenderer {
	grad := canvas.NewHorizontalGradient(color.White, color.Black)
	thumb := canvas.NewRectangle(color.Transparent)
	thumb.StrokeColor = thumbColor
	thumb.StrokeWidth = 2
	r := &shadeSliderRenderer{slider: s, grad: grad, thumb: thumb}
	r.update()
	return r
}

type shadeSliderRenderer struct {
	slider *shadeSlider
	grad   *canvas.LinearGradient
	thumb  *canvas.Rectangle
}

func (r *shadeSliderRenderer) update() {
	hsv := r.slider.picker.HSV()
	hsv.V = colormath.SVMax
	r.grad.StartColor = hsv.RGB().Color()
}

func (r *shadeSliderRenderer) Layout(size fyne.Size) {
	r.grad.Resize(size)
	off := float32(r.slider.picker.SliderThumbOffset(float64(size.Width)))
	r.thumb.Resize(fyne.NewSize(thumbSize/2, size.Height))
	r.thumb.Move(fyne.NewPos(off-thumbSize/4, 0))
}

func (r *shadeSliderRenderer) MinSize() fyne.Size { return fyne.NewSize(200, 24) }

func (r *shadeSliderRenderer) Refresh() {
	r.update()
	r.Layout(r.slider.Size())
	canvas.Refresh(r.slider)
}

func (r *shadeSliderRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.grad, r.thumb}
}

func (r *shadeSliderRenderer) Destroy() {}

// PickerPanel is the wheel, the slider, a hex entry, the preset swatches
// and a readout of the current color in all three forms.
type PickerPanel struct {
	picker  *picker.Picker
	wheel   *colorWheel
	slider  *shadeSlider
	hex     *widget.Entry
	readout *widget.Label
	content fyne.CanvasObject
}

func NewPickerPanel(p *picker.Picker) *PickerPanel {
	pp := &PickerPanel{
		picker:  p,
		wheel:   newColorWheel(p),
		slider:  newShadeSlider(p),
		hex:     widget.NewEntry(),
		readout: widget.NewLabel(""),
	}
	pp.hex.SetPlaceHolder("#rrggbb")
	pp.hex.OnSubmitted = func(s string) {
		// Malformed input leaves the color alone and restores the entry.
		if !p.SetFromHex(s) {
			pp.Update()
		}
	}

	swatches := container.NewHBox()
	for i, hex := range picker.Swatches {
		swatches.Add(newColorSwatch(colormath.ToColor(hex), func(color.Color) {
			p.SelectSwatch(i)
		}))
	}

	pp.content = container.NewVBox(pp.wheel, pp.slider, swatches, pp.hex, pp.readout)
	pp.Update()
	return pp
}

func (pp *PickerPanel) Content() fyne.CanvasObject { return pp.content }

// Update redraws every part after the picker changed.
func (pp *PickerPanel) Update() {
	hsv := pp.picker.HSV()
	rgb := hsv.RGB()
	pp.hex.SetText(hsv.Hex())
	pp.readout.SetText(fmt.Sprintf("%s  %s  %s", hsv, rgb, hsv.Hex()))
	pp.wheel.Refresh()
	pp.slider.Refresh()
}
