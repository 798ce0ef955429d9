package groove

import "gonum.org/v1/gonum/spatial/r2"

// Optimizer smooths or redraws a polyline. Implementations typically
// wrap an external CAD automation service, so they may fail for
// environmental reasons at any time. The zero-value caller contract is
// that a nil Optimizer simply means the service is absent.
type Optimizer interface {
	OptimizePolyline(pts []r2.Vec) ([]r2.Vec, error)
}

// OptimizeStatus reports what became of an Optimize call.
type OptimizeStatus int

const (
	// Optimized means the returned polyline came from the optimizer.
	Optimized OptimizeStatus = iota
	// OptimizerUnavailable means no optimizer was supplied; the
	// original polyline was returned.
	OptimizerUnavailable
	// OptimizeFailed means the optimizer errored or returned an
	// unusable polyline; the original polyline was returned.
	OptimizeFailed
)

func (s OptimizeStatus) String() string {
	switch s {
	case Optimized:
		return "optimized"
	case OptimizerUnavailable:
		return "optimizer unavailable"
	case OptimizeFailed:
		return "optimize failed"
	}
	return "unknown"
}

// Optimize offers pts to opt and returns the polyline to use. The
// original slice comes back untouched when the optimizer is absent,
// errors, or returns fewer than 2 points. Callers therefore never lose
// geometry to the optional service; correctness does not depend on it
// being present or working.
func Optimize(opt Optimizer, pts []r2.Vec) ([]r2.Vec, OptimizeStatus) {
	if opt == nil {
		return pts, OptimizerUnavailable
	}
	if len(pts) < 2 {
		// Nothing to optimize. Mirrors the service-side short circuit.
		return pts, Optimized
	}
	out, err := opt.OptimizePolyline(pts)
	if err != nil || len(out) < 2 {
		return pts, OptimizeFailed
	}
	return out, Optimized
}
