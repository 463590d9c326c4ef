package surface

import "SketchBoard/internal/state"

// strokeBuilder accumulates the points of the stroke being drawn.
type strokeBuilder struct {
	points []state.Point
	color  string
	width  float32
}

func newStrokeBuilder(start state.Point, color string, width float32) *strokeBuilder {
	return &strokeBuilder{
		points: []state.Point{start},
		color:  color,
		width:  width,
	}
}

func (b *strokeBuilder) add(p state.Point) {
	b.points = append(b.points, p)
}

func (b *strokeBuilder) snapshot() state.Stroke {
	return state.Stroke{
		Points: append([]state.Point(nil), b.points...),
		Color:  b.color,
		Width:  b.width,
	}
}

func (b *strokeBuilder) finalize(id string) state.Stroke {
	st := b.snapshot()
	st.ID = id
	return st
}

type placedStroke struct {
	stroke state.Stroke
	at     state.Version
}

type placedStamp struct {
	stamp state.Stamp
	at    state.Version
}
