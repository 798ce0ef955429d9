// Package cadexp converts groove geometry into deadsy/sdfx 2D shapes
// so sdfx based CAD pipelines can consume it. Everything here stays in
// the unrolled plane; nothing is extruded or revolved.
package cadexp

import (
	"errors"

	"github.com/deadsy/sdfx/sdf"
	"github.com/zhk0567/groove"
)

// Band returns the groove band, the closed polygon between the left
// and right boundary, as an sdfx SDF2. The polygon winds counter
// clockwise: right boundary forward, left boundary back.
func Band(g groove.Geometry) (sdf.SDF2, error) {
	if len(g.Boundary) < 2 {
		return nil, errors.New("need at least 2 boundary segments")
	}
	verts := make([]sdf.V2, 0, 2*len(g.Boundary))
	for _, b := range g.Boundary {
		verts = append(verts, sdf.V2{X: b.Right.X, Y: b.Right.Y})
	}
	for i := len(g.Boundary) - 1; i >= 0; i-- {
		b := g.Boundary[i]
		verts = append(verts, sdf.V2{X: b.Left.X, Y: b.Left.Y})
	}
	return sdf.Polygon2D(verts)
}

// Blank returns the unrolled drill blank rectangle as an sdfx SDF2,
// positioned like the tool outline: x in [0,length], y in
// [-diameter/2,diameter/2].
func Blank(drillDiameter, totalLength float64) (sdf.SDF2, error) {
	if drillDiameter <= 0 || totalLength <= 0 {
		return nil, errors.New("need greater than zero diameter and length")
	}
	b := sdf.Box2D(sdf.V2{X: totalLength, Y: drillDiameter}, 0)
	return sdf.Transform2D(b, sdf.Translate2d(sdf.V2{X: totalLength / 2})), nil
}
