package render

import (
	"math"

	"github.com/zhk0567/groove/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultMargin is the fraction of a viewport left empty around a
// fitted drawing.
const DefaultMargin = 0.15

// Transform maps model coordinates into device coordinates with a
// uniform scale and an offset. Aspect ratio is always preserved.
type Transform struct {
	Scale  float64
	Offset r2.Vec
}

// Apply maps a model point into device space.
func (t Transform) Apply(v r2.Vec) r2.Vec {
	return r2.Add(r2.Scale(t.Scale, v), t.Offset)
}

// FitTransform computes the transform that centers box b inside a
// width by height viewport. margin is the viewport fraction kept free
// around the drawing, typically DefaultMargin. Degenerate boxes and
// viewports yield the identity transform.
func FitTransform(b r2.Box, width, height, margin float64) Transform {
	bb := d2.Box(b)
	size := bb.Size()
	if size.X <= 0 || size.Y <= 0 || width <= 0 || height <= 0 {
		return Transform{Scale: 1}
	}
	s := math.Min(width/size.X, height/size.Y) * (1 - margin)
	c := bb.Center()
	return Transform{
		Scale: s,
		Offset: r2.Vec{
			X: width/2 - c.X*s,
			Y: height/2 - c.Y*s,
		},
	}
}
