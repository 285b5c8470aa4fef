// Package chart owns the trend chart shown on the trend page. Drawing
// itself is done by a Drawer, this package only guarantees that at most
// one chart is alive at any time.
package chart

import (
	"fmt"
	"log/slog"
	"sync"
)

// Plot describes a single-series line chart. Labels are the category
// axis in the given order, Values are index-aligned with Labels.
type Plot struct {
	Labels      []string
	Values      []float64
	SeriesLabel string
}

// Instance is a live chart bound to a canvas.
type Instance interface {
	// Dispose releases the chart and clears it from its canvas.
	Dispose() error
}

// Drawer draws charts on a canvas.
type Drawer interface {
	Draw(plot Plot) (Instance, error)
}

// Renderer keeps the only live chart of a page.
type Renderer struct {
	drawer Drawer

	mu      sync.Mutex
	current Instance
}

// NewRenderer creates a Renderer that draws with the given Drawer.
func NewRenderer(d Drawer) *Renderer {
	return &Renderer{drawer: d}
}

// Render replaces the current chart with a new one. The previous chart
// is disposed before the new one is drawn. If disposal fails nothing is
// drawn and the previous chart stays current.
func (r *Renderer) Render(labels []string, values []float64, seriesLabel string) error {
	if len(labels) != len(values) {
		return RenderError(seriesLabel,
			fmt.Errorf("%d labels for %d values", len(labels), len(values)))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		if err := r.current.Dispose(); err != nil {
			return DisposeError(err)
		}
		r.current = nil
	}

	inst, err := r.drawer.Draw(Plot{
		Labels:      labels,
		Values:      values,
		SeriesLabel: seriesLabel,
	})
	if err != nil {
		return RenderError(seriesLabel, err)
	}
	r.current = inst
	slog.Debug("Chart rendered", "label", seriesLabel, "points", len(values))
	return nil
}

// HasChart is true when a chart is alive.
func (r *Renderer) HasChart() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current != nil
}

// Close disposes the current chart, if any.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return nil
	}
	err := r.current.Dispose()
	r.current = nil
	if err != nil {
		return DisposeError(err)
	}
	return nil
}
