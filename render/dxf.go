package render

import (
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// dxf layer names, one per stroke kind.
var dxfLayers = map[string]string{
	"outline": "Outline",
	"left":    "Boundary",
	"right":   "Boundary",
	"center":  "Centerline",
}

// CreateDXF writes plan to path as a DXF drawing in model coordinates,
// one layer per stroke kind. CAD applications consume this file
// directly; no viewport fitting is applied.
func CreateDXF(path string, plan Plan) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 100.0
	for _, layer := range []string{"Centerline", "Boundary", "Outline"} {
		if _, err := d.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return err
		}
	}
	for _, s := range plan.strokes() {
		if err := dxfPolyline(d, dxfLayers[s.name], s.pts); err != nil {
			return err
		}
	}
	return d.SaveAs(path)
}

func dxfPolyline(d *drawing.Drawing, layer string, pts Polyline) error {
	if len(pts) < 2 {
		return nil
	}
	if err := d.ChangeLayer(layer); err != nil {
		return err
	}
	for i := 0; i+1 < len(pts); i++ {
		p0, p1 := pts[i], pts[i+1]
		if _, err := d.Line(p0.X, p0.Y, 0, p1.X, p1.Y, 0); err != nil {
			return err
		}
	}
	return nil
}
