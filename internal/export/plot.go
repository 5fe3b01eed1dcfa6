// Package export renders stored sweeps to image and JSON files.
package export

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/rfcalc/internal/analysis"
)

const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

type PlotOptions struct {
	Title string
	// Quantities to draw; empty draws every series of the result.
	Quantities []string
	Units      map[string]string
	LogX       bool
	LogY       bool
	Width      vg.Length
	Height     vg.Length
}

// NewPlot builds a frequency plot of the selected series. NaN samples are
// left out, as are non-positive samples on a logarithmic Y axis.
func NewPlot(res *analysis.Result, opts PlotOptions) (*plot.Plot, error) {
	names := opts.Quantities
	if len(names) == 0 {
		names = res.Quantities
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("export: nothing to plot")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = yLabel(names, opts.Units)
	if opts.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if opts.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())

	drawn := 0
	for i, name := range names {
		series, ok := res.Series[name]
		if !ok {
			return nil, fmt.Errorf("export: result has no series %q", name)
		}
		pts := make(plotter.XYs, 0, len(series))
		for j, v := range series {
			if math.IsNaN(v) || math.IsInf(v, 0) || (opts.LogY && v <= 0) {
				continue
			}
			pts = append(pts, plotter.XY{X: res.Frequencies[j], Y: v})
		}
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("export: %s: %w", name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(name, line)
		drawn++
	}
	if drawn == 0 {
		return nil, fmt.Errorf("export: every sample of %v is undefined", names)
	}
	p.Legend.Top = true
	return p, nil
}

func yLabel(names []string, units map[string]string) string {
	if len(names) != 1 {
		return strings.Join(names, ", ")
	}
	if u := units[names[0]]; u != "" {
		return fmt.Sprintf("%s (%s)", names[0], u)
	}
	return names[0]
}

func size(opts PlotOptions) (vg.Length, vg.Length) {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// SavePlot writes the plot to path. The format follows the extension
// (.png, .svg, .pdf, .jpg).
func SavePlot(path string, res *analysis.Result, opts PlotOptions) error {
	p, err := NewPlot(res, opts)
	if err != nil {
		return err
	}
	w, h := size(opts)
	return p.Save(w, h, path)
}

// WritePlot renders the plot in the given format ("png", "svg", ...) to w.
func WritePlot(out io.Writer, format string, res *analysis.Result, opts PlotOptions) error {
	p, err := NewPlot(res, opts)
	if err != nil {
		return err
	}
	w, h := size(opts)
	wt, err := p.WriterTo(w, h, strings.TrimPrefix(strings.ToLower(format), "."))
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(out)
	return err
}

// FormatOf returns the image format implied by a file name.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
