// Package render turns computed groove geometry into drawable and
// exportable form: DXF and SVG documents, gonum/plot images and raw
// float32 vertex buffers. The package consumes the ordered point
// sequences produced by the groove package and never feeds anything
// back into them.
package render

import (
	"github.com/zhk0567/groove"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polyline is an ordered point sequence drawn as one connected stroke.
type Polyline []r2.Vec

// Plan is the drawable form of one computed groove: four polylines
// sharing one model space. The boundary pair splits into two parallel
// strokes.
type Plan struct {
	Center  Polyline
	Left    Polyline
	Right   Polyline
	Outline Polyline
}

// NewPlan splits g into the polylines a renderer consumes.
func NewPlan(g groove.Geometry) Plan {
	left := make(Polyline, len(g.Boundary))
	right := make(Polyline, len(g.Boundary))
	for i, b := range g.Boundary {
		left[i] = b.Left
		right[i] = b.Right
	}
	return Plan{
		Center:  Polyline(g.Center),
		Left:    left,
		Right:   right,
		Outline: Polyline(g.Outline),
	}
}

// Bounds returns the bounding box of every stroke in the plan. Scale
// and offset for a viewport come from this combined box, not from any
// single stroke.
func (p Plan) Bounds() r2.Box {
	return groove.Bounds(p.Center, p.Left, p.Right, p.Outline)
}

type stroke struct {
	name string
	pts  Polyline
}

// strokes returns the plan's polylines in drawing order, outline
// first so detail strokes draw on top.
func (p Plan) strokes() []stroke {
	return []stroke{
		{"outline", p.Outline},
		{"left", p.Left},
		{"right", p.Right},
		{"center", p.Center},
	}
}
