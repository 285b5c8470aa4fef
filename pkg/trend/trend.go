// Package trend drives the trend form. A successful reply redraws the
// trend chart and shows the trend note, any other reply leaves the chart
// as it was and shows a warning in the note pane.
package trend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mavunowatch/mavuno/pkg/chart"
	"github.com/mavunowatch/mavuno/pkg/view"
	"github.com/mavunowatch/mavuno/pkg/yieldsvc"
	"golang.org/x/sync/errgroup"
)

// NoTrendText is shown when a reply has neither an error nor trend
// points.
const NoTrendText = "No trend data."

// Form is a snapshot of the trend form fields.
type Form struct {
	County string
	Crop   string
}

// State of the controller after the latest submission.
type State int

const (
	Idle State = iota
	Building
	InFlight
	Success
	Warning
	Failure
	Rejected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Building:
		return "building"
	case InFlight:
		return "in-flight"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Failure:
		return "failure"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Controller owns the trend form lifecycle and drives the chart.
type Controller struct {
	svc      yieldsvc.Service
	renderer *chart.Renderer
	note     view.Pane

	eg errgroup.Group

	mu    sync.Mutex
	gen   uint64
	state State
}

// New creates a Controller.
func New(
	svc yieldsvc.Service,
	renderer *chart.Renderer,
	note view.Pane,
) *Controller {
	return &Controller{
		svc:      svc,
		renderer: renderer,
		note:     note,
	}
}

// Build validates the form. County and crop must be non-empty, their
// membership in the vocabulary is not checked.
func Build(f Form) (yieldsvc.TrendRequest, error) {
	var res yieldsvc.TrendRequest
	county := strings.TrimSpace(f.County)
	crop := strings.TrimSpace(f.Crop)
	if county == "" {
		return res, EmptyFieldError("county")
	}
	if crop == "" {
		return res, EmptyFieldError("crop")
	}
	res = yieldsvc.TrendRequest{County: county, Crop: crop}
	return res, nil
}

// Label composes the chart series label.
func Label(req yieldsvc.TrendRequest) string {
	return fmt.Sprintf("Yield Trend for %s in %s", req.Crop, req.County)
}

// Submit validates the form and dispatches the request in the
// background.
func (c *Controller) Submit(ctx context.Context, f Form) error {
	c.setState(Building)

	req, err := Build(f)
	if err != nil {
		c.mu.Lock()
		c.gen++
		c.state = Rejected
		c.note.Show(view.Message{
			Level: view.Warning,
			Kind:  view.KindInvalidInput,
			Text:  view.Describe(err),
		})
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.state = InFlight
	c.mu.Unlock()

	c.eg.Go(func() error {
		c.dispatch(ctx, gen, req)
		return nil
	})
	return nil
}

// Wait blocks until all dispatched requests have completed.
func (c *Controller) Wait() {
	_ = c.eg.Wait()
}

// State returns the state after the latest submission.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Controller) dispatch(
	ctx context.Context,
	gen uint64,
	req yieldsvc.TrendRequest,
) {
	id := uuid.New().String()
	slog.Debug("Dispatching trend",
		"id", id,
		"fingerprint", req.Fingerprint(),
		"county", req.County,
		"crop", req.Crop,
	)

	resp, err := c.svc.Trend(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		slog.Warn("Discarding stale trend reply",
			"id", id, "generation", gen, "latest", c.gen)
		return
	}

	state, msg := Classify(resp, err)
	if state == Success {
		years, yields := resp.Series()
		err = c.renderer.Render(chart.Labels(years), yields, Label(req))
		if err != nil {
			state = Failure
			msg = view.Message{
				Level: view.Warning,
				Kind:  view.KindRender,
				Text:  "Trend fetch failed: " + view.Describe(err),
			}
		}
	}
	c.state = state
	c.note.Show(msg)
	slog.Info("Trend finished",
		"id", id, "state", state.String(), "kind", msg.Kind.String())
}

// Classify turns a reply, or the error of the call, into the final state
// and the message for the note pane. An explicit error takes precedence
// over trend points.
func Classify(resp *yieldsvc.TrendResponse, err error) (State, view.Message) {
	if err == nil && resp == nil {
		err = errors.New("empty reply")
	}
	switch {
	case err != nil:
		return Failure, view.Message{
			Level: view.Warning,
			Kind:  view.KindTransport,
			Text:  "Trend fetch failed: " + view.Describe(err),
		}
	case resp.Error != "":
		return Warning, view.Message{
			Level: view.Warning,
			Kind:  view.KindDomain,
			Text:  resp.Error,
		}
	case !resp.HasTrend():
		return Warning, view.Message{
			Level: view.Warning,
			Kind:  view.KindAmbiguousEmpty,
			Text:  NoTrendText,
		}
	default:
		return Success, view.Message{
			Level: view.Info,
			Kind:  view.KindNone,
			Text:  resp.TrendNote,
		}
	}
}
