// Package plot renders QMS traces and integrated regions to PNG files.
// It only consumes integration results and never mutates them.
package plot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/icelab/goqms/pkg/integrate"
	"github.com/icelab/goqms/pkg/qms"
)

// Options control figure styling.
type Options struct {
	Width     int
	Height    int
	LineWidth float64
	Title     string
	XLabel    string
	YLabel    string
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = 800
	}
	if o.Height == 0 {
		o.Height = 500
	}
	if o.LineWidth == 0 {
		o.LineWidth = 1.2
	}
	return o
}

// Channels renders an overlay of the named channels against the x axis.
// Channels absent from the table are skipped.
func Channels(tbl *qms.Table, xKey string, keys []string, path string, opts Options) error {
	opts = opts.withDefaults()

	x, ok := tbl.Column(xKey)
	if !ok {
		return &qms.MissingColumnError{Columns: []string{xKey}}
	}

	series := make([]chart.Series, 0, len(keys))
	for _, key := range keys {
		y, ok := tbl.Column(key)
		if !ok {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "m/z " + key,
			XValues: x,
			YValues: y,
			Style:   chart.Style{StrokeWidth: opts.LineWidth},
		})
	}
	if len(series) == 0 {
		return &qms.MissingColumnError{Columns: keys}
	}

	ch := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		XAxis:  chart.XAxis{Name: opts.XLabel},
		YAxis:  chart.YAxis{Name: opts.YLabel},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return render(ch, path)
}

// Integration renders the full trace with the fitted baseline and the
// shaded integrated region.
func Integration(x, y []float64, res *integrate.Result, path string, opts Options) error {
	opts = opts.withDefaults()

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Integrated area",
			XValues: res.RegionX,
			YValues: res.RegionY,
			Style: chart.Style{
				StrokeWidth: opts.LineWidth,
				StrokeColor: chart.ColorBlue,
				FillColor:   chart.ColorBlue.WithAlpha(80),
			},
		},
		chart.ContinuousSeries{
			Name:    "QMS signal",
			XValues: x,
			YValues: y,
			Style: chart.Style{
				StrokeWidth: opts.LineWidth,
				StrokeColor: chart.ColorBlack,
			},
		},
		chart.ContinuousSeries{
			Name:    "Baseline",
			XValues: res.RegionX,
			YValues: res.Baseline,
			Style: chart.Style{
				StrokeWidth:     opts.LineWidth,
				StrokeColor:     chart.ColorRed,
				StrokeDashArray: []float64{4.0, 2.0},
			},
		},
	}

	ch := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		XAxis:  chart.XAxis{Name: opts.XLabel},
		YAxis:  chart.YAxis{Name: opts.YLabel},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return render(ch, path)
}

// Saver persists one integration figure per channel. It implements
// integrate.Plotter.
type Saver struct {
	Dir  string
	Opts Options
}

var _ integrate.Plotter = (*Saver)(nil)

// Integration renders the channel's integrated region into Dir, naming the
// file after the channel with dots mapped to underscores.
func (s *Saver) Integration(x, y []float64, res *integrate.Result, name string) error {
	if name == "" {
		name = "signal"
	}
	filename := fmt.Sprintf("integrated_%s.png", strings.ReplaceAll(name, ".", "_"))

	opts := s.Opts
	if opts.Title == "" {
		opts.Title = fmt.Sprintf("Integration of %s", name)
	}
	return Integration(x, y, res, filepath.Join(s.Dir, filename), opts)
}

func render(ch chart.Chart, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
