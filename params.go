package groove

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Parameters are the physical inputs of one groove computation. All
// lengths share one unit (the original tool worked in millimetres).
type Parameters struct {
	SpiralAngle   float64 // helix angle in degrees, exclusive range (0,90)
	DrillDiameter float64
	TotalLength   float64
	BladeWidth    float64
	BladeHeight   float64 // reserved for groove depth work, not used yet
	// PointsPerRevolution is the centerline sample density. Zero means
	// DefaultPointsPerRevolution.
	PointsPerRevolution int
}

// DefaultParameters is a 30 degree, 10mm diameter, 50mm long drill
// with a 2mm wide, 1mm high blade.
var DefaultParameters = Parameters{
	SpiralAngle:   30,
	DrillDiameter: 10,
	TotalLength:   50,
	BladeWidth:    2,
	BladeHeight:   1,
}

// Validate checks the parameter ranges the calculators assume. The
// calculators themselves never validate and degrade gracefully
// instead, so callers taking raw user input should validate here
// first.
func (p Parameters) Validate() error {
	if p.SpiralAngle <= 0 || p.SpiralAngle >= 90 {
		return fmt.Errorf("spiral angle must be in (0,90) degrees, got %g", p.SpiralAngle)
	}
	if p.DrillDiameter <= 0 {
		return fmt.Errorf("need greater than zero drill diameter, got %g", p.DrillDiameter)
	}
	if p.TotalLength <= 0 {
		return fmt.Errorf("need greater than zero total length, got %g", p.TotalLength)
	}
	if p.BladeWidth <= 0 {
		return fmt.Errorf("need greater than zero blade width, got %g", p.BladeWidth)
	}
	if p.BladeHeight <= 0 {
		return fmt.Errorf("need greater than zero blade height, got %g", p.BladeHeight)
	}
	if p.PointsPerRevolution < 0 {
		return fmt.Errorf("need non-negative points per revolution, got %d", p.PointsPerRevolution)
	}
	return nil
}

// Geometry is one computed groove: centerline, boundary band and tool
// outline. Every computation allocates a fresh Geometry; results share
// no state with the package or with each other.
type Geometry struct {
	Center   []r2.Vec
	Boundary []BoundarySegment
	Outline  []r2.Vec
}

// Bounds returns the bounding box enclosing the centerline, both
// boundaries and the outline.
func (g Geometry) Bounds() r2.Box {
	left := make([]r2.Vec, len(g.Boundary))
	right := make([]r2.Vec, len(g.Boundary))
	for i, b := range g.Boundary {
		left[i] = b.Left
		right[i] = b.Right
	}
	return Bounds(g.Center, left, right, g.Outline)
}

// Compute validates p and runs the three calculators.
func Compute(p Parameters) (Geometry, error) {
	if err := p.Validate(); err != nil {
		return Geometry{}, err
	}
	ppr := p.PointsPerRevolution
	if ppr == 0 {
		ppr = DefaultPointsPerRevolution
	}
	center := Centerline(p.SpiralAngle, p.DrillDiameter, p.TotalLength, p.BladeWidth, p.BladeHeight, ppr)
	return Geometry{
		Center:   center,
		Boundary: Boundaries(center, p.BladeWidth),
		Outline:  ToolOutline(p.DrillDiameter, p.TotalLength),
	}, nil
}
