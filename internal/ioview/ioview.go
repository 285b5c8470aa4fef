// Package ioview renders the presentation surface to a terminal.
package ioview

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/mavunowatch/mavuno/pkg/view"
)

// List is a selection input that collects options and can print them
// under a heading.
type List struct {
	Name string

	mu      sync.Mutex
	options []string
}

// NewList creates an empty List.
func NewList(name string) *List {
	return &List{Name: name}
}

// AddOption implements view.Selector.
func (l *List) AddOption(value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.options = append(l.options, value)
}

// Options returns the options in the order they were added.
func (l *List) Options() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.options)
}

// Print writes the heading and one option per line.
func (l *List) Print(w io.Writer) {
	opts := l.Options()
	fmt.Fprintf(w, "%s (%d):\n", l.Name, len(opts))
	for _, v := range opts {
		fmt.Fprintf(w, "  %s\n", v)
	}
}

// Pane writes every message it is shown as one line, prefixed by its
// level.
type Pane struct {
	mu   sync.Mutex
	w    io.Writer
	last *view.Message
}

// NewPane creates a Pane that writes to w.
func NewPane(w io.Writer) *Pane {
	return &Pane{w: w}
}

// Show implements view.Pane.
func (p *Pane) Show(msg view.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = &msg
	fmt.Fprintln(p.w, Format(msg))
}

// Last returns the message shown most recently.
func (p *Pane) Last() (view.Message, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return view.Message{}, false
	}
	return *p.last, true
}

// Format renders a message as a line of text. Warnings of all kinds look
// the same.
func Format(msg view.Message) string {
	switch msg.Level {
	case view.Success:
		return "OK: " + msg.Text
	case view.Warning:
		return "WARNING: " + msg.Text
	default:
		return msg.Text
	}
}
