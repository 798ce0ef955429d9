package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var plotColors = map[string]color.RGBA{
	"outline": {A: 255},
	"left":    {B: 255, A: 255},
	"right":   {B: 255, A: 255},
	"center":  {R: 255, A: 255},
}

// Plot builds a gonum plot of the plan in model coordinates, axes in
// the drawing's own units.
func Plot(plan Plan) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Unrolled flute groove"
	p.X.Label.Text = "axial"
	p.Y.Label.Text = "circumferential"
	for _, s := range plan.strokes() {
		if len(s.pts) < 2 {
			continue
		}
		xys := make(plotter.XYs, len(s.pts))
		for i, v := range s.pts {
			xys[i].X = v.X
			xys[i].Y = v.Y
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = plotColors[s.name]
		p.Add(line)
	}
	return p, nil
}

// CreatePNG plots plan and saves it to path as a PNG image.
func CreatePNG(path string, plan Plan) error {
	p, err := Plot(plan)
	if err != nil {
		return err
	}
	return p.Save(18*vg.Centimeter, 12*vg.Centimeter, path)
}
