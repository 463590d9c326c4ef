package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/state"
)

// colorSwatch is a tappable square of one color, used by the toolbar
// palette and the picker presets.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// toolbar shows the palette, the active color, the tool toggle and clear.
type toolbar struct {
	board   *Board
	active  *canvas.Rectangle
	tool    *widget.Button
	content fyne.CanvasObject
}

func newToolbar(b *Board) *toolbar {
	tb := &toolbar{board: b}

	tb.active = canvas.NewRectangle(b.Store.ActiveRGB().Color())
	tb.active.SetMinSize(fyne.NewSize(40, 40))
	tb.active.CornerRadius = 20

	tb.tool = widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		if b.Store.Tool() == state.ToolPencil {
			b.Surface.SetTool(state.ToolStamp)
		} else {
			b.Surface.SetTool(state.ToolPencil)
		}
	})
	clearBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), b.Surface.Clear)

	colorBox := container.NewHBox()
	for i, sw := range b.Store.Palette() {
		colorBox.Add(newColorSwatch(sw.RGB.Color(), func(color.Color) {
			b.Store.SelectPalette(i)
		}))
	}

	tb.content = container.NewHBox(
		tb.active,
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Tool:"),
		tb.tool,
		widget.NewSeparator(),
		clearBtn,
		layout.NewSpacer(),
	)
	tb.update()
	return tb
}

// update reflects the store's tool and color.
func (tb *toolbar) update() {
	tb.active.FillColor = tb.board.Store.ActiveRGB().Color()
	tb.active.Refresh()

	if tb.board.Store.Tool() == state.ToolStamp {
		tb.tool.SetIcon(theme.ContentAddIcon())
		tb.tool.SetText("Stamp")
	} else {
		tb.tool.SetIcon(theme.DocumentCreateIcon())
		tb.tool.SetText("Pencil")
	}
}
