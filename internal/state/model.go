package state

import "fmt"

type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Stroke is a finished freehand path. Points is never shared with the
// builder that produced it.
type Stroke struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
	Color  string  `json:"color"`
	Width  float32 `json:"width"`
}

// Clone returns a copy that does not alias s.Points.
func (s Stroke) Clone() Stroke {
	s.Points = append([]Point(nil), s.Points...)
	return s
}

// Stamp is anchored at its top-left corner.
type Stamp struct {
	ID    string  `json:"id"`
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	Color string  `json:"color"`
}

type Tool int

const (
	ToolPencil Tool = iota
	ToolStamp
)

func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolStamp:
		return "stamp"
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool is the inverse of Tool.String.
func ParseTool(s string) (Tool, error) {
	switch s {
	case "pencil", "":
		return ToolPencil, nil
	case "stamp":
		return ToolStamp, nil
	}
	return ToolPencil, fmt.Errorf("unknown tool %q", s)
}

type OpType string

const (
	OpInsertStroke OpType = "insert_stroke"
	OpInsertStamp  OpType = "insert_stamp"
	OpClear        OpType = "clear"
)

// Op is a drawing operation exchanged between boards.
type Op struct {
	ID      string  `json:"id"`
	Type    OpType  `json:"type"`
	Stroke  *Stroke `json:"stroke,omitempty"`
	Stamp   *Stamp  `json:"stamp,omitempty"`
	Lamport uint64  `json:"lamport"`
	Site    string  `json:"site"`
}

// Version is an op's position in the order every board agrees on: Lamport
// time first, then site.
type Version struct {
	Lamport uint64
	Site    string
}

func (v Version) Less(o Version) bool {
	if v.Lamport != o.Lamport {
		return v.Lamport < o.Lamport
	}
	return v.Site < o.Site
}

func (op Op) Version() Version {
	return Version{Lamport: op.Lamport, Site: op.Site}
}
