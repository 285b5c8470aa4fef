package chart

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/mavunowatch/mavuno/pkg/errcode"
)

// RenderError is returned when a chart cannot be drawn.
func RenderError(label string, err error) error {
	return &gn.Error{
		Code: errcode.ChartRenderError,
		Msg:  "Cannot draw chart <em>%s</em>: %s",
		Vars: []any{label, err.Error()},
		Err:  fmt.Errorf("cannot draw chart %q: %w", label, err),
	}
}

// DisposeError is returned when the previous chart cannot be released.
func DisposeError(err error) error {
	return &gn.Error{
		Code: errcode.ChartDisposeError,
		Msg:  "Cannot clear previous chart: %s",
		Vars: []any{err.Error()},
		Err:  fmt.Errorf("cannot dispose chart: %w", err),
	}
}
