// Package surface turns pointer gestures into strokes and stamps.
//
// A Surface is a two-state machine. In Idle no stroke is being drawn; in
// Drawing exactly one stroke is being built. Only the pencil tool reaches
// Drawing. Finished strokes and stamps are immutable values; only the
// builder behind the in-progress stroke is ever appended to.
//
// Every method runs to completion on the caller's goroutine. A Surface is
// not safe for concurrent use; callers feed it events from one goroutine.
package surface

import (
	"log"
	"slices"
	"sort"

	"SketchBoard/internal/state"
)

type State int

const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	if s == Drawing {
		return "drawing"
	}
	return "idle"
}

// Context supplies the shared tool and color selection.
type Context interface {
	Tool() state.Tool
	SetTool(state.Tool)
	ActiveColor() string
}

type Options struct {
	StampWidth  float32
	StampHeight float32
	StrokeWidth float32
}

var DefaultOptions = Options{
	StampWidth:  50,
	StampHeight: 50,
	StrokeWidth: 5,
}

type Surface struct {
	ctx  Context
	opts Options
	ops  *state.Log

	state   State
	current *strokeBuilder
	strokes []placedStroke
	stamps  []placedStamp
	// cleared is the version of the latest clear applied. Nothing ordered
	// before it is kept.
	cleared state.Version

	// OnOp receives every op produced by local input, after it is applied.
	OnOp func(state.Op)
	// OnChange fires whenever anything a renderer draws has changed.
	OnChange func()
}

// New returns an idle, empty surface. ops records which ops the surface has
// applied; nil gets a fresh log.
func New(ctx Context, opts Options, ops *state.Log) *Surface {
	if ops == nil {
		ops = state.NewLog()
	}
	return &Surface{ctx: ctx, opts: opts, ops: ops}
}

func (s *Surface) State() State { return s.state }

// Site identifies this surface's ops.
func (s *Surface) Site() string { return s.ops.Site() }

// GestureStart begins a stroke at (x, y). A start that arrives mid-stroke
// first finishes the stroke in progress.
func (s *Surface) GestureStart(x, y float32) {
	if !s.pencilActive() {
		return
	}
	if s.state == Drawing {
		s.finish()
	}
	s.current = newStrokeBuilder(state.Point{X: x, Y: y}, s.ctx.ActiveColor(), s.opts.StrokeWidth)
	s.state = Drawing
	s.changed()
}

// GestureMove extends the stroke in progress. Without one it does nothing.
func (s *Surface) GestureMove(x, y float32) {
	if !s.pencilActive() || s.state != Drawing {
		return
	}
	s.current.add(state.Point{X: x, Y: y})
	s.changed()
}

// GestureEnd commits the stroke in progress, if any.
func (s *Surface) GestureEnd() {
	if !s.pencilActive() || s.state != Drawing {
		return
	}
	s.finish()
	s.changed()
}

// Tap places a stamp centered on (x, y) when the stamp tool is active.
func (s *Surface) Tap(x, y float32) {
	if s.ctx.Tool() != state.ToolStamp {
		return
	}
	s.abandonIfToolChanged()

	op := s.ops.Local(state.Op{Type: state.OpInsertStamp})
	stamp := state.Stamp{
		ID:    op.ID,
		X:     x - s.opts.StampWidth/2,
		Y:     y - s.opts.StampHeight/2,
		Color: s.ctx.ActiveColor(),
	}
	op.Stamp = &stamp
	s.stamps = append(s.stamps, placedStamp{stamp: stamp, at: op.Version()})
	s.emit(op)
	s.changed()
}

// Clear removes every stroke and stamp and drops any stroke in progress.
func (s *Surface) Clear() {
	s.abandon()
	op := s.ops.Local(state.Op{Type: state.OpClear})
	s.cleared = op.Version()
	s.strokes = nil
	s.stamps = nil
	log.Printf("[SURFACE] Cleared")
	s.emit(op)
	s.changed()
}

// SetTool switches tools. A stroke in progress is abandoned, not committed.
func (s *Surface) SetTool(t state.Tool) {
	s.ctx.SetTool(t)
	s.abandonIfToolChanged()
	s.changed()
}

// Apply merges an op from another board and reports whether it changed the
// surface. Ops are placed by Version, so boards that apply the same ops in
// any order end up with the same strokes and stamps. A clear removes
// everything ordered before it and inserts ordered before the latest clear
// are ignored. A remote clear leaves the local stroke in progress alone; it
// is stamped when committed, after every op seen so far.
func (s *Surface) Apply(op state.Op) bool {
	switch op.Type {
	case state.OpInsertStroke:
		if op.Stroke == nil || len(op.Stroke.Points) == 0 {
			return false
		}
	case state.OpInsertStamp:
		if op.Stamp == nil {
			return false
		}
	case state.OpClear:
	default:
		log.Printf("[SURFACE] Ignoring op %s of unknown type %q", op.ID, op.Type)
		return false
	}
	if !s.ops.Accept(op) {
		return false
	}

	at := op.Version()
	if at.Less(s.cleared) {
		log.Printf("[SURFACE] Op %s from %s predates the last clear, ignoring", op.ID, op.Site)
		return false
	}

	switch op.Type {
	case state.OpInsertStroke:
		i := sort.Search(len(s.strokes), func(i int) bool { return at.Less(s.strokes[i].at) })
		s.strokes = slices.Insert(s.strokes, i, placedStroke{stroke: op.Stroke.Clone(), at: at})
	case state.OpInsertStamp:
		i := sort.Search(len(s.stamps), func(i int) bool { return at.Less(s.stamps[i].at) })
		s.stamps = slices.Insert(s.stamps, i, placedStamp{stamp: *op.Stamp, at: at})
	case state.OpClear:
		s.cleared = at
		s.strokes = slices.DeleteFunc(s.strokes, func(p placedStroke) bool { return p.at.Less(at) })
		s.stamps = slices.DeleteFunc(s.stamps, func(p placedStamp) bool { return p.at.Less(at) })
	}
	s.changed()
	return true
}

// Strokes returns the committed strokes in commit order.
func (s *Surface) Strokes() []state.Stroke {
	out := make([]state.Stroke, len(s.strokes))
	for i, p := range s.strokes {
		out[i] = p.stroke.Clone()
	}
	return out
}

// Stamps returns the placed stamps in placement order.
func (s *Surface) Stamps() []state.Stamp {
	out := make([]state.Stamp, len(s.stamps))
	for i, p := range s.stamps {
		out[i] = p.stamp
	}
	return out
}

// InProgress returns a snapshot of the stroke being drawn.
func (s *Surface) InProgress() (state.Stroke, bool) {
	if s.state != Drawing {
		return state.Stroke{}, false
	}
	return s.current.snapshot(), true
}

func (s *Surface) pencilActive() bool {
	s.abandonIfToolChanged()
	return s.ctx.Tool() == state.ToolPencil
}

// abandonIfToolChanged drops the stroke in progress when the pencil is no
// longer the active tool, however the tool came to change.
func (s *Surface) abandonIfToolChanged() {
	if s.state == Drawing && s.ctx.Tool() != state.ToolPencil {
		log.Printf("[SURFACE] Tool changed to %s mid-stroke, abandoning %d points",
			s.ctx.Tool(), len(s.current.points))
		s.abandon()
	}
}

func (s *Surface) abandon() {
	s.current = nil
	s.state = Idle
}

func (s *Surface) finish() {
	op := s.ops.Local(state.Op{Type: state.OpInsertStroke})
	stroke := s.current.finalize(op.ID)
	s.current = nil
	s.state = Idle

	s.strokes = append(s.strokes, placedStroke{stroke: stroke, at: op.Version()})
	wire := stroke.Clone()
	op.Stroke = &wire
	s.emit(op)
}

func (s *Surface) emit(op state.Op) {
	if s.OnOp != nil {
		s.OnOp(op)
	}
}

func (s *Surface) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
