package render

import (
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
)

var svgStyles = map[string]string{
	"outline": "fill:none;stroke:black;stroke-width:2",
	"left":    "fill:none;stroke:blue",
	"right":   "fill:none;stroke:blue",
	"center":  "fill:none;stroke:red",
}

// errWriter keeps the first write error; svgo itself discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	n, err := ew.w.Write(p)
	if err != nil && ew.err == nil {
		ew.err = err
	}
	return n, err
}

// WriteSVG renders plan into an SVG document of the given pixel size,
// fitted and centered with FitTransform. SVG y grows downwards, so the
// drawing is mirrored to keep the groove's +y pointing up on screen.
// The returned error is the first failure of w, if any.
func WriteSVG(w io.Writer, plan Plan, width, height int) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	tr := FitTransform(plan.Bounds(), float64(width), float64(height), DefaultMargin)
	for _, s := range plan.strokes() {
		if len(s.pts) < 2 {
			continue
		}
		xs := make([]int, len(s.pts))
		ys := make([]int, len(s.pts))
		for i, v := range s.pts {
			dv := tr.Apply(v)
			xs[i] = int(math.Round(dv.X))
			ys[i] = height - int(math.Round(dv.Y))
		}
		canvas.Polyline(xs, ys, svgStyles[s.name])
	}
	canvas.End()
	return ew.err
}

// CreateSVG writes plan to path as an SVG document.
func CreateSVG(path string, plan Plan, width, height int) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(fp, plan, width, height); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
