package render

import (
	"github.com/chewxy/math32"
)

// FlattenF32 converts a polyline through tr into an interleaved x,y
// float32 vertex buffer for GPU and immediate mode renderers.
func FlattenF32(pts Polyline, tr Transform) []float32 {
	buf := make([]float32, 0, 2*len(pts))
	for _, v := range pts {
		dv := tr.Apply(v)
		buf = append(buf, float32(dv.X), float32(dv.Y))
	}
	return buf
}

// BoundsF32 returns the min and max corners of an interleaved x,y
// vertex buffer in float32 precision. An empty buffer yields zero
// corners.
func BoundsF32(buf []float32) (min, max [2]float32) {
	if len(buf) < 2 {
		return min, max
	}
	min = [2]float32{buf[0], buf[1]}
	max = min
	for i := 2; i+1 < len(buf); i += 2 {
		min[0] = math32.Min(min[0], buf[i])
		min[1] = math32.Min(min[1], buf[i+1])
		max[0] = math32.Max(max[0], buf[i])
		max[1] = math32.Max(max[1], buf[i+1])
	}
	return min, max
}
