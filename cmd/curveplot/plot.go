package main

import (
	"fmt"
	"image/color"

	"github.com/milk9111/parkour/anim"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var axisColors = [...]color.RGBA{
	anim.AxisX: colornames.Crimson,
	anim.AxisY: colornames.Seagreen,
	anim.AxisZ: colornames.Royalblue,
}

func points(c anim.Curve, a anim.Axis) plotter.XYs {
	pts := make(plotter.XYs, len(c.Keys))
	for i, k := range c.Keys {
		pts[i] = plotter.XY{X: k.TimeMs, Y: a.Of(k.Value)}
	}
	return pts
}

// newPlot lays raw curves dashed and edited curves solid, one color per axis.
func newPlot(title string, raw, edited anim.Curve) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (ms)"
	p.Y.Label.Text = "root translation"
	p.Add(plotter.NewGrid())

	for _, a := range []anim.Axis{anim.AxisX, anim.AxisY, anim.AxisZ} {
		rawLine, err := plotter.NewLine(points(raw, a))
		if err != nil {
			return nil, fmt.Errorf("raw %s: %w", a, err)
		}
		rawLine.Color = axisColors[a]
		rawLine.Width = vg.Points(1)
		rawLine.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

		editedLine, err := plotter.NewLine(points(edited, a))
		if err != nil {
			return nil, fmt.Errorf("edited %s: %w", a, err)
		}
		editedLine.Color = axisColors[a]
		editedLine.Width = vg.Points(2)

		p.Add(rawLine, editedLine)
		p.Legend.Add(a.String()+" raw", rawLine)
		p.Legend.Add(a.String()+" edited", editedLine)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

func savePlot(path, title string, raw, edited anim.Curve) error {
	p, err := newPlot(title, raw, edited)
	if err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}
