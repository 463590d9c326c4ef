package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/colormath"
	"SketchBoard/internal/state"
	"SketchBoard/internal/surface"
)

const starSVG = `<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200"><polygon fill="{{fillColor}}" points="100,0,129.38926261462365,59.54915028125263,195.10565162951536,69.09830056250526,147.55282581475768,115.45084971874736,158.77852522924732,180.90169943749473,100,150,41.2214747707527,180.90169943749476,52.447174185242325,115.45084971874738,4.894348370484636,69.09830056250527,70.61073738537632,59.549150281252636"></polygon></svg>`

// BoardWidget feeds pointer gestures to a surface and draws what it holds.
// A drag draws with the pencil; a tap places a stamp.
type BoardWidget struct {
	widget.BaseWidget
	surface  *surface.Surface
	opts     surface.Options
	dragging bool
	stars    map[string]fyne.Resource
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)

func NewBoardWidget(s *surface.Surface, opts surface.Options) *BoardWidget {
	b := &BoardWidget{
		surface: s,
		opts:    opts,
		stars:   make(map[string]fyne.Resource),
	}
	b.ExtendBaseWidget(b)
	return b
}

// Dragged starts a stroke on the first event of a drag, at the point the
// drag left from, and extends it on every event.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.dragging {
		b.dragging = true
		b.surface.GestureStart(e.Position.X-e.Dragged.DX, e.Position.Y-e.Dragged.DY)
	}
	b.surface.GestureMove(e.Position.X, e.Position.Y)
}

func (b *BoardWidget) DragEnd() {
	b.dragging = false
	b.surface.GestureEnd()
}

func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	b.surface.Tap(e.Position.X, e.Position.Y)
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.rebuild()
	return r
}

// star returns the stamp glyph filled with the named color.
func (b *BoardWidget) star(c string) fyne.Resource {
	if res, ok := b.stars[c]; ok {
		return res
	}
	fill := colormath.FromColor(colormath.ToColor(c)).Hex()
	res := fyne.NewStaticResource("star-"+strings.TrimPrefix(fill, "#")+".svg",
		[]byte(strings.Replace(starSVG, "{{fillColor}}", fill, 1)))
	b.stars[c] = res
	return res
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) rebuild() {
	s := r.board.surface
	objects := []fyne.CanvasObject{r.background}

	strokes := s.Strokes()
	if cur, ok := s.InProgress(); ok {
		strokes = append(strokes, cur)
	}
	for _, st := range strokes {
		objects = append(objects, strokeObjects(st)...)
	}

	size := fyne.NewSize(r.board.opts.StampWidth, r.board.opts.StampHeight)
	for _, st := range s.Stamps() {
		img := canvas.NewImageFromResource(r.board.star(st.Color))
		img.FillMode = canvas.ImageFillContain
		img.Resize(size)
		img.Move(fyne.NewPos(st.X, st.Y))
		objects = append(objects, img)
	}

	r.objects = objects
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}

// strokeObjects draws a stroke as joined line segments, or a dot when it
// has a single point.
func strokeObjects(st state.Stroke) []fyne.CanvasObject {
	c := colormath.ToColor(st.Color)
	if len(st.Points) == 1 {
		p := st.Points[0]
		dot := canvas.NewCircle(c)
		dot.Resize(fyne.NewSize(st.Width, st.Width))
		dot.Move(fyne.NewPos(p.X-st.Width/2, p.Y-st.Width/2))
		return []fyne.CanvasObject{dot}
	}
	segments := make([]fyne.CanvasObject, 0, len(st.Points)-1)
	for i := 0; i < len(st.Points)-1; i++ {
		segment := canvas.NewLine(c)
		segment.StrokeWidth = st.Width
		segment.Position1 = fyne.NewPos(st.Points[i].X, st.Points[i].Y)
		segment.Position2 = fyne.NewPos(st.Points[i+1].X, st.Points[i+1].Y)
		segments = append(segments, segment)
	}
	return segments
}
