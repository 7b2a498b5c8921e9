package utils

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

type Series struct {
	Name string
	X, Y []float64
	// Points draws glyphs without a connecting line
	Points bool
}

func (s Series) xys() (pts plotter.XYs, err error) {
	if len(s.X) != len(s.Y) {
		err = fmt.Errorf("series %q: len(X) = %d, len(Y) = %d", s.Name, len(s.X), len(s.Y))
		return
	}
	pts = make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}
	return
}

// PlotSeries writes a line plot to fileName, the format follows the extension (.png, .svg, .pdf)
func PlotSeries(fileName, title, xLabel, yLabel string, series ...Series) (err error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	for i, s := range series {
		var pts plotter.XYs
		if pts, err = s.xys(); err != nil {
			return
		}
		if s.Points {
			var sc *plotter.Scatter
			if sc, err = plotter.NewScatter(pts); err != nil {
				return
			}
			sc.GlyphStyle.Color = plotutil.Color(i)
			sc.GlyphStyle.Shape = plotutil.Shape(i)
			p.Add(sc)
			p.Legend.Add(s.Name, sc)
			continue
		}
		var l *plotter.Line
		if l, err = plotter.NewLine(pts); err != nil {
			return
		}
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(s.Name, l)
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, fileName)
}
