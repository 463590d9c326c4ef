package state

import (
	"fmt"

	"SketchBoard/internal/colormath"
)

// CustomIndex is the active index while a picked, non-palette color is in use.
const CustomIndex = -1

// DefaultPalette lists the drawing colors offered by default.
var DefaultPalette = []string{"red", "green", "blue", "yellow"}

// Swatch is one palette entry. Name is what strokes and stamps record.
type Swatch struct {
	Name string
	RGB  colormath.RGB
}

// Store is the UI context shared by the surface and the toolbar: the active
// tool and the active drawing color. It is owned by the UI goroutine.
type Store struct {
	tool    Tool
	palette []Swatch
	active  int
	custom  string

	// OnChanged fires after the tool or the active color changes.
	OnChanged func()
}

// NewStore builds a store over the given palette, which must not be empty.
// Each entry is a CSS color name or a hex color.
func NewStore(palette []string) (*Store, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	s := &Store{palette: make([]Swatch, 0, len(palette))}
	for _, name := range palette {
		rgb, ok := colormath.Parse(name)
		if !ok {
			return nil, fmt.Errorf("palette color %q is not a color name or hex value", name)
		}
		s.palette = append(s.palette, Swatch{Name: name, RGB: rgb})
	}
	return s, nil
}

func (s *Store) Tool() Tool { return s.tool }

func (s *Store) SetTool(t Tool) {
	if s.tool == t {
		return
	}
	s.tool = t
	s.changed()
}

// ToggleTool flips between pencil and stamp and returns the new tool.
func (s *Store) ToggleTool() Tool {
	if s.tool == ToolPencil {
		s.SetTool(ToolStamp)
	} else {
		s.SetTool(ToolPencil)
	}
	return s.tool
}

// Palette returns a copy of the palette entries.
func (s *Store) Palette() []Swatch {
	return append([]Swatch(nil), s.palette...)
}

// ActiveIndex is a palette index or CustomIndex.
func (s *Store) ActiveIndex() int { return s.active }

// SelectPalette makes palette entry i the drawing color.
func (s *Store) SelectPalette(i int) bool {
	if i < 0 || i >= len(s.palette) {
		return false
	}
	s.active = i
	s.changed()
	return true
}

// SetCustomColor makes a hex color from the picker the drawing color.
// Malformed hex is ignored.
func (s *Store) SetCustomColor(hex string) bool {
	rgb, ok := colormath.HexToRGB(colormath.ExpandShorthandHex(hex))
	if !ok {
		return false
	}
	s.custom = rgb.Hex()
	s.active = CustomIndex
	s.changed()
	return true
}

// ActiveColor is the palette name, or "#rrggbb" for a custom color.
func (s *Store) ActiveColor() string {
	if s.active == CustomIndex {
		return s.custom
	}
	return s.palette[s.active].Name
}

func (s *Store) ActiveRGB() colormath.RGB {
	if s.active == CustomIndex {
		rgb, _ := colormath.HexToRGB(s.custom)
		return rgb
	}
	return s.palette[s.active].RGB
}

func (s *Store) changed() {
	if s.OnChanged != nil {
		s.OnChanged()
	}
}
