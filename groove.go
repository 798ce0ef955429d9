// Package groove computes the unrolled (flattened) 2D geometry of a
// helical flute groove on a cylindrical drill bit.
//
// The cylindrical surface is cut along one axial line and developed
// onto a plane: x is the axial position along the drill, y is the
// unrolled circumferential position. A true helix develops into a
// straight line of slope tan(helix angle), so no curvature
// approximation is involved anywhere in this package.
package groove

import (
	"math"

	"github.com/zhk0567/groove/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// DefaultPointsPerRevolution is the centerline sample density used
	// when the caller does not pick one.
	DefaultPointsPerRevolution = 100

	// minCenterlinePoints guarantees a drawable curve for very short
	// drills or tight parameter combinations.
	minCenterlinePoints = 10

	// maxCenterlinePoints bounds the sample count. Angles within
	// floating point distance of 90 degrees give a finite but
	// astronomical revolution count that would otherwise be allocated.
	maxCenterlinePoints = 1 << 20
)

// BoundarySegment pairs the left and right groove boundary points that
// share an x coordinate with one centerline sample.
type BoundarySegment struct {
	Left  r2.Vec
	Right r2.Vec
}

// Pitch returns the axial distance covered by one full revolution of a
// helix with the given angle (degrees) on a drill of the given
// diameter. The result is not guaranteed finite for angles at or near
// 0 or 90 degrees; Centerline guards against that internally.
func Pitch(spiralAngleDeg, drillDiameter float64) float64 {
	angle := spiralAngleDeg * math.Pi / 180
	return math.Pi * drillDiameter / math.Tan(angle)
}

// Centerline returns the unrolled groove centerline as totalPoints+1
// evenly spaced samples from x=0 to x=totalLength. spiralAngleDeg is
// the helix angle in degrees, expected in (0,90); drillDiameter,
// totalLength and bladeWidth are expected positive. The function does
// not validate its inputs (see Parameters.Validate) but never emits
// NaN or Inf for finite inputs: degenerate angles fall back to a
// single revolution over the full length.
//
// bladeWidth does not affect the centerline. bladeHeight is reserved
// for groove depth work and is currently unused.
func Centerline(spiralAngleDeg, drillDiameter, totalLength, bladeWidth, bladeHeight float64, pointsPerRevolution int) []r2.Vec {
	angle := spiralAngleDeg * math.Pi / 180
	circumference := math.Pi * drillDiameter
	pitch := circumference / math.Tan(angle)

	totalRevolutions := totalLength / pitch
	if totalRevolutions <= 0 || math.IsNaN(totalRevolutions) || math.IsInf(totalRevolutions, 0) {
		// tan(angle) near 0 or infinite. Degrade to one revolution over
		// the full length so nothing downstream divides by zero.
		totalRevolutions = 1
		pitch = totalLength
		if totalLength <= 0 {
			pitch = 1
		}
	}

	totalPoints := int(totalRevolutions * float64(pointsPerRevolution))
	if totalPoints < minCenterlinePoints {
		totalPoints = minCenterlinePoints
	}
	if totalPoints > maxCenterlinePoints {
		totalPoints = maxCenterlinePoints
	}

	points := make([]r2.Vec, 0, totalPoints+1)
	for i := 0; i <= totalPoints; i++ {
		t := float64(i) / float64(totalPoints)
		x := t * totalLength
		// In the developed plane the helix is a straight line:
		// y = (x/pitch)*circumference = x*tan(angle).
		y := (x / pitch) * circumference
		points = append(points, r2.Vec{X: x, Y: y})
	}
	return points
}

// Boundaries returns the left and right groove boundary for every
// centerline point, offset by ±bladeWidth/2 along y with x unchanged.
// Flute width is measured circumferentially, which in the unrolled
// plane is exactly the y axis, so the offset is purely in y and not
// along the curve normal. A centerline of fewer than 2 points carries
// no groove band and yields nil.
func Boundaries(center []r2.Vec, bladeWidth float64) []BoundarySegment {
	if len(center) < 2 {
		return nil
	}
	half := bladeWidth / 2
	segs := make([]BoundarySegment, len(center))
	for i, c := range center {
		segs[i] = BoundarySegment{
			Left:  r2.Vec{X: c.X, Y: c.Y + half},
			Right: r2.Vec{X: c.X, Y: c.Y - half},
		}
	}
	return segs
}

// ToolOutline returns the unrolled drill blank as a closed rectangle
// spanning x in [0,totalLength] and y in [-radius,radius]. The result
// always has exactly 5 points with the first repeated as the last.
// Non-positive inputs produce a degenerate rectangle rather than an
// error.
func ToolOutline(drillDiameter, totalLength float64) []r2.Vec {
	r := drillDiameter / 2
	return []r2.Vec{
		{X: 0, Y: -r},
		{X: totalLength, Y: -r},
		{X: totalLength, Y: r},
		{X: 0, Y: r},
		{X: 0, Y: -r},
	}
}

// Bounds returns the bounding box enclosing every point of the given
// sequences. Renderers derive their scale and offset from the combined
// box of centerline, boundaries and outline. An empty input yields the
// zero box.
func Bounds(sets ...[]r2.Vec) r2.Box {
	var (
		bb    d2.Box
		first = true
	)
	for _, set := range sets {
		if len(set) == 0 {
			continue
		}
		sb := d2.Box{Min: d2.Set(set).Min(), Max: d2.Set(set).Max()}
		if first {
			bb = sb
			first = false
			continue
		}
		bb = bb.Extend(sb)
	}
	return r2.Box(bb)
}
