// Package iochart draws trend charts with go-chart. This is an impure
// I/O package that implements chart.Drawer from pkg/.
package iochart

import (
	"bytes"
	"math"

	"github.com/mavunowatch/mavuno/pkg/chart"
	"github.com/mavunowatch/mavuno/pkg/config"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// lineColor is the color of the trend line and its dots.
var lineColor = drawing.Color{R: 0, G: 128, B: 0, A: 255}

type drawer struct {
	canvas Canvas
	cfg    config.ChartConfig
}

// New creates a chart.Drawer that renders to the canvas in the
// configured format and size.
func New(canvas Canvas, cfg config.ChartConfig) chart.Drawer {
	return &drawer{canvas: canvas, cfg: cfg}
}

// Draw renders a single-series line chart and puts it on the canvas.
func (d *drawer) Draw(plot chart.Plot) (chart.Instance, error) {
	var buf bytes.Buffer
	ch := d.build(plot)
	if err := ch.Render(d.provider(), &buf); err != nil {
		return nil, err
	}
	if err := d.canvas.Put(buf.Bytes()); err != nil {
		return nil, err
	}
	return &instance{canvas: d.canvas}, nil
}

func (d *drawer) provider() gochart.RendererProvider {
	if d.cfg.Format == "svg" {
		return gochart.SVG
	}
	return gochart.PNG
}

func (d *drawer) build(plot chart.Plot) gochart.Chart {
	xs, ys, xAxis := categoryAxis(plot.Labels, plot.Values)
	minY, maxY := valueRange(plot.Values)

	ch := gochart.Chart{
		Title:  plot.SeriesLabel,
		Width:  d.cfg.Width,
		Height: d.cfg.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: xAxis,
		YAxis: gochart.YAxis{
			Name:  "Yield",
			Range: &gochart.ContinuousRange{Min: minY, Max: maxY},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    plot.SeriesLabel,
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					DotColor:    lineColor,
					DotWidth:    3,
				},
			},
		},
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return ch
}

// categoryAxis places values at 1..n with the labels as ticks, in the
// given order. A single point is repeated at x=2 so the range is not
// empty.
func categoryAxis(
	labels []string,
	values []float64,
) ([]float64, []float64, gochart.XAxis) {
	n := len(values)
	xs := make([]float64, n)
	ys := make([]float64, n)
	ticks := make([]gochart.Tick, 0, n+1)
	for i := range values {
		x := float64(i + 1)
		xs[i] = x
		ys[i] = values[i]
		ticks = append(ticks, gochart.Tick{Value: x, Label: labels[i]})
	}

	minR := 0.5
	maxR := float64(n) + 0.5
	if n == 1 {
		maxR = 2.0
		xs = append(xs, 2)
		ys = append(ys, values[0])
		ticks = append(ticks, gochart.Tick{Value: 2, Label: ""})
	}

	xa := gochart.XAxis{
		Name:  "Year",
		Ticks: ticks,
		Range: &gochart.ContinuousRange{Min: minR, Max: maxR},
	}
	return xs, ys, xa
}

// valueRange fits the vertical axis to the data with some padding. Zero
// is not forced into the range.
func valueRange(values []float64) (float64, float64) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}
	if math.IsInf(minY, 0) || math.IsInf(maxY, 0) {
		return 0, 1
	}

	pad := (maxY - minY) * 0.1
	if pad == 0 {
		pad = math.Max(math.Abs(minY)*0.1, 0.5)
	}
	return minY - pad, maxY + pad
}

type instance struct {
	canvas Canvas
}

// Dispose clears the canvas.
func (i *instance) Dispose() error {
	return i.canvas.Clear()
}
