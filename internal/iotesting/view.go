package iotesting

import (
	"slices"
	"sync"

	"github.com/mavunowatch/mavuno/pkg/chart"
	"github.com/mavunowatch/mavuno/pkg/view"
)

// Selector records options added to it.
type Selector struct {
	mu      sync.Mutex
	options []string
}

// AddOption implements view.Selector.
func (s *Selector) AddOption(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options = append(s.options, value)
}

// Options returns the options added so far.
func (s *Selector) Options() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.options)
}

// Pane records every message shown in it.
type Pane struct {
	mu   sync.Mutex
	msgs []view.Message
}

// Show implements view.Pane.
func (p *Pane) Show(msg view.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
}

// Messages returns all messages shown so far.
func (p *Pane) Messages() []view.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.msgs)
}

// Last returns the message currently displayed.
func (p *Pane) Last() (view.Message, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.msgs) == 0 {
		return view.Message{}, false
	}
	return p.msgs[len(p.msgs)-1], true
}

// Drawer implements chart.Drawer and counts live chart instances.
type Drawer struct {
	// DrawErr, if set, is returned by Draw.
	DrawErr error
	// DisposeErr, if set, is returned by Dispose of every instance.
	DisposeErr error

	mu      sync.Mutex
	live    int
	maxLive int
	plots   []chart.Plot
}

// Draw implements chart.Drawer.
func (d *Drawer) Draw(plot chart.Plot) (chart.Instance, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.DrawErr != nil {
		return nil, d.DrawErr
	}
	d.live++
	d.maxLive = max(d.maxLive, d.live)
	d.plots = append(d.plots, plot)
	return &instance{d: d}, nil
}

// Live returns the number of charts not disposed yet.
func (d *Drawer) Live() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.live
}

// MaxLive returns the highest number of simultaneously live charts seen.
func (d *Drawer) MaxLive() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.maxLive
}

// Plots returns plots of all drawn charts in drawing order.
func (d *Drawer) Plots() []chart.Plot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.plots)
}

type instance struct {
	d        *Drawer
	disposed bool
}

func (i *instance) Dispose() error {
	i.d.mu.Lock()
	defer i.d.mu.Unlock()
	if i.d.DisposeErr != nil {
		return i.d.DisposeErr
	}
	if !i.disposed {
		i.disposed = true
		i.d.live--
	}
	return nil
}
