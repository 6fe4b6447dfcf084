package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// FoilDiagramData holds the distributions drawn by the airfoil diagrams.
type FoilDiagramData struct {
	Name string

	X      []float64
	YUpper []float64
	YLower []float64

	// Optional annotation distributions; nil omits the corresponding
	// curve.
	Camber         []float64
	Thickness      []float64
	CurvatureUpper []float64
	CurvatureLower []float64
}

// ExportFoilDiagram plots the airfoil profile (upper and lower surfaces,
// plus camber and thickness when provided) to an image file. The format
// follows the file extension (png, svg, pdf); anything else falls back
// to png.
func ExportFoilDiagram(data FoilDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Name
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "y/c"

	upper, err := plotter.NewLine(curveXYs(data.X, data.YUpper))
	if err != nil {
		return err
	}
	upper.LineStyle.Width = vg.Points(1.5)
	upper.LineStyle.Color = color.Black
	p.Add(upper)
	p.Legend.Add("upper", upper)

	lower, err := plotter.NewLine(curveXYs(data.X, data.YLower))
	if err != nil {
		return err
	}
	lower.LineStyle.Width = vg.Points(1.5)
	lower.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(lower)
	p.Legend.Add("lower", lower)

	if data.Camber != nil {
		camber, err := plotter.NewLine(curveXYs(data.X, data.Camber))
		if err != nil {
			return err
		}
		camber.LineStyle.Width = vg.Points(1)
		camber.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		camber.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(camber)
		p.Legend.Add("camber", camber)
	}

	if data.Thickness != nil {
		thickness, err := plotter.NewLine(curveXYs(data.X, data.Thickness))
		if err != nil {
			return err
		}
		thickness.LineStyle.Width = vg.Points(1)
		thickness.LineStyle.Color = color.RGBA{R: 34, G: 139, B: 34, A: 255}
		thickness.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(thickness)
		p.Legend.Add("thickness", thickness)
	}

	p.Legend.Top = true

	// A profile drawn with unequal axis scales is unreadable; a wide
	// canvas with a fixed y range keeps the proportions sensible.
	p.Y.Min = -0.25
	p.Y.Max = 0.25

	return savePlot(p, filename, 10*vg.Inch, 5*vg.Inch)
}

// ExportCurvatureDiagram plots the per-surface curvature distributions.
func ExportCurvatureDiagram(data FoilDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Name + " curvature"
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "curvature"

	upper, err := plotter.NewLine(curveXYs(data.X, data.CurvatureUpper))
	if err != nil {
		return err
	}
	upper.LineStyle.Width = vg.Points(1.5)
	upper.LineStyle.Color = color.Black
	p.Add(upper)
	p.Legend.Add("upper", upper)

	lower, err := plotter.NewLine(curveXYs(data.X, data.CurvatureLower))
	if err != nil {
		return err
	}
	lower.LineStyle.Width = vg.Points(1.5)
	lower.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(lower)
	p.Legend.Add("lower", lower)

	return savePlot(p, filename, 8*vg.Inch, 6*vg.Inch)
}

func curveXYs(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return xys
}

func savePlot(p *plot.Plot, filename string, width, height vg.Length) error {
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		os.MkdirAll(dir, 0o755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
