package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/colormath"
	"SketchBoard/internal/config"
	"SketchBoard/internal/picker"
	"SketchBoard/internal/state"
	"SketchBoard/internal/surface"
)

// Board ties the drawing surface, the shared store and the color picker to
// their widgets. All of its state is touched only on the fyne goroutine.
type Board struct {
	Store   *state.Store
	Surface *surface.Surface
	Picker  *picker.Picker

	canvas *BoardWidget
	tools  *toolbar
	panel  *PickerPanel
	status *widget.Label
}

// NewBoard builds the model from cfg. The toolbar and picker panel are
// created by Layout.
func NewBoard(cfg config.Config) (*Board, error) {
	store, err := state.NewStore(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("build palette: %w", err)
	}
	store.SetTool(cfg.InitialTool())

	opts := surface.Options{
		StampWidth:  cfg.Stamp.Width,
		StampHeight: cfg.Stamp.Height,
		StrokeWidth: cfg.Stroke.Width,
	}
	b := &Board{
		Store:   store,
		Surface: surface.New(store, opts, state.NewLog()),
		Picker:  picker.NewFromHex(cfg.PickerColor),
	}
	b.canvas = NewBoardWidget(b.Surface, opts)
	b.status = widget.NewLabel("Ready")

	b.Surface.OnChange = b.canvas.Refresh
	b.Picker.OnChanged = func(c colormath.HSV) {
		b.Store.SetCustomColor(c.Hex())
		if b.panel != nil {
			b.panel.Update()
		}
	}
	b.Store.OnChanged = func() {
		if b.tools != nil {
			b.tools.update()
		}
	}
	log.Printf("Board ready as site %s", b.Surface.Site())
	return b, nil
}

// ApplyRemote merges an op received from the network. It may be called
// from any goroutine.
func (b *Board) ApplyRemote(op state.Op) {
	fyne.Do(func() {
		b.Surface.Apply(op)
	})
}

// SetStatus may be called from any goroutine.
func (b *Board) SetStatus(text string) {
	fyne.Do(func() {
		b.status.SetText(text)
	})
}

func (b *Board) Canvas() *BoardWidget { return b.canvas }

// Layout builds the window content: toolbar on top, status bar below, the
// picker to the right of the drawing area.
func (b *Board) Layout() fyne.CanvasObject {
	b.tools = newToolbar(b)
	b.panel = NewPickerPanel(b.Picker)
	return container.NewBorder(b.tools.content, b.status, nil, b.panel.Content(), b.canvas)
}
