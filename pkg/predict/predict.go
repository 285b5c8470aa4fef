// Package predict drives the prediction form: it validates the form,
// builds a PredictionRequest, dispatches it without blocking the caller
// and shows the classified reply in the result pane.
package predict

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mavunowatch/mavuno/pkg/metadata"
	"github.com/mavunowatch/mavuno/pkg/view"
	"github.com/mavunowatch/mavuno/pkg/yieldsvc"
	"golang.org/x/sync/errgroup"
)

// NoPredictionText is shown when a reply carries neither a yield nor an
// error.
const NoPredictionText = "No prediction returned."

// Form is a snapshot of the prediction form fields.
type Form struct {
	County string
	Crop   string
	// Area is the raw text of the area field, in hectares.
	Area string
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
	// Rejected means local validation blocked the dispatch.
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

// Option changes Controller settings.
type Option func(*Controller)

// OptClock sets the source of the current time. The request year is taken
// from it.
func OptClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// Controller owns the prediction form lifecycle.
type Controller struct {
	svc  yieldsvc.Service
	src  metadata.Source
	pane view.Pane
	now  func() time.Time

	eg errgroup.Group

	// mu serializes state changes and pane updates.
	mu    sync.Mutex
	gen   uint64
	state State
}

// New creates a Controller. The vocabulary comes from src and may still
// be missing when the first submission arrives.
func New(
	svc yieldsvc.Service,
	src metadata.Source,
	pane view.Pane,
	opts ...Option,
) *Controller {
	res := &Controller{
		svc:  svc,
		src:  src,
		pane: pane,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Build validates the form and creates a request from it. The request
// carries the whole crop vocabulary, not only the selected crop.
func (c *Controller) Build(f Form) (yieldsvc.PredictionRequest, error) {
	var res yieldsvc.PredictionRequest

	area, err := ParseArea(f.Area)
	if err != nil {
		return res, err
	}

	voc := c.src.Vocabulary()
	if voc == nil {
		return res, VocabularyNotLoadedError()
	}
	if len(voc.Crops()) == 0 {
		return res, EmptyVocabularyError()
	}
	if !voc.HasCrop(f.Crop) {
		return res, UnknownCropError(f.Crop)
	}

	res = yieldsvc.PredictionRequest{
		Year:     c.now().Year(),
		AreaHa:   area,
		Crop:     f.Crop,
		AllCrops: voc.Crops(),
	}
	return res, nil
}

// Submit validates the form and dispatches the request in the
// background. It returns as soon as the request is dispatched. A
// validation error is shown in the pane and returned, nothing is sent
// in that case.
func (c *Controller) Submit(ctx context.Context, f Form) error {
	c.setState(Building)

	req, err := c.Build(f)
	if err != nil {
		c.mu.Lock()
		c.gen++
		c.state = Rejected
		c.pane.Show(view.Message{
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
		c.dispatch(ctx, gen, f.County, req)
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
	county string,
	req yieldsvc.PredictionRequest,
) {
	id := uuid.New().String()
	slog.Debug("Dispatching prediction",
		"id", id,
		"fingerprint", req.Fingerprint(),
		"county", county,
		"crop", req.Crop,
		"area_ha", req.AreaHa,
	)

	resp, err := c.svc.Predict(ctx, req)
	state, msg := Classify(resp, err)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		slog.Warn("Discarding stale prediction reply",
			"id", id, "generation", gen, "latest", c.gen)
		return
	}
	c.state = state
	c.pane.Show(msg)
	slog.Info("Prediction finished",
		"id", id, "state", state.String(), "kind", msg.Kind.String())
}

// Classify turns a reply, or the error of the call, into the final state
// and the message for the result pane. A usable yield wins over an error
// string sent alongside it.
func Classify(resp *yieldsvc.PredictionResponse, err error) (State, view.Message) {
	if err == nil && resp == nil {
		err = errors.New("empty reply")
	}
	if err != nil {
		return Failure, view.Message{
			Level: view.Warning,
			Kind:  view.KindTransport,
			Text:  "Prediction failed: " + view.Describe(err),
		}
	}

	if resp.HasYield() {
		return Success, view.Message{
			Level: view.Success,
			Kind:  view.KindNone,
			Text: fmt.Sprintf("Predicted Yield: %s %s",
				humanize.Ftoa(*resp.PredictedYield), resp.UnitsOrDefault()),
		}
	}

	if resp.Error != "" {
		return Warning, view.Message{
			Level: view.Warning,
			Kind:  view.KindDomain,
			Text:  resp.Error,
		}
	}
	return Warning, view.Message{
		Level: view.Warning,
		Kind:  view.KindAmbiguousEmpty,
		Text:  NoPredictionText,
	}
}

// ParseArea converts the area field to hectares. Only finite numbers are
// accepted.
func ParseArea(s string) (float64, error) {
	s = strings.TrimSpace(s)
	res, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, InvalidAreaError(s, err)
	}
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, InvalidAreaError(s, errors.New("not a finite number"))
	}
	return res, nil
}
