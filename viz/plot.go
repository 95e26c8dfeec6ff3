package viz

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// toXYs projects a curve onto the plot plane using the first two
// coordinates of each row.
func toXYs(curve [][]float64, xCol, yCol int) plotter.XYs {
	pts := make(plotter.XYs, len(curve))
	for i, row := range curve {
		pts[i].X = row[xCol]
		pts[i].Y = row[yCol]
	}
	return pts
}

var (
	solutionColor    = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	transformedColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	arrowColor       = color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}
)

// PlotTransformation renders a solution curve, the transformed solution
// curve, and the connecting integral curves of the generator flow with
// arrowheads, then saves the figure to path.
func PlotTransformation(path, title, xLabel, yLabel string, solution, transformed [][]float64, arrows [][][]float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	if err := addLine(p, solution, solutionColor, 2); err != nil {
		return err
	}
	if err := addLine(p, transformed, transformedColor, 2); err != nil {
		return err
	}
	for _, arrow := range arrows {
		if err := addLine(p, arrow, arrowColor, 1); err != nil {
			return err
		}
		if len(arrow) >= 2 {
			if err := plotArrowHead(p, arrow[len(arrow)-2], arrow[len(arrow)-1]); err != nil {
				return err
			}
		}
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// PlotSolutionCurve renders a single curve.
func PlotSolutionCurve(path, title, xLabel, yLabel string, curve [][]float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	if err := addLine(p, curve, solutionColor, 2); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func addLine(p *plot.Plot, curve [][]float64, c color.Color, width vg.Length) error {
	if len(curve) == 0 {
		return nil
	}
	line, err := plotter.NewLine(toXYs(curve, 0, 1))
	if err != nil {
		return err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = width
	p.Add(line)
	return nil
}

// plotArrowHead draws two short strokes at the tip of a curve, angled
// back along the incoming direction.
func plotArrowHead(p *plot.Plot, from, to []float64) error {
	dx := to[0] - from[0]
	dy := to[1] - from[1]
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	const scale = 3.0
	dx, dy = dx*scale, dy*scale
	for _, angle := range []float64{math.Pi - 0.4, math.Pi + 0.4} {
		cos, sin := math.Cos(angle), math.Sin(angle)
		wing := [][]float64{
			{to[0], to[1]},
			{to[0] + dx*cos - dy*sin, to[1] + dx*sin + dy*cos},
		}
		if err := addLine(p, wing, arrowColor, 1); err != nil {
			return err
		}
	}
	return nil
}
