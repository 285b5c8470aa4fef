// Package metadata loads the reference vocabulary once per page and
// populates the county and crop selection inputs with it.
package metadata

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mavunowatch/mavuno/pkg/view"
	"github.com/mavunowatch/mavuno/pkg/vocab"
	"github.com/mavunowatch/mavuno/pkg/yieldsvc"
	"golang.org/x/sync/errgroup"
)

// Source gives access to the vocabulary loaded so far. Vocabulary returns
// nil until loading has completed successfully.
type Source interface {
	Vocabulary() *vocab.Vocabulary
}

// Loader fetches the vocabulary in the background. Forms stay usable
// while it runs, options appear in the selectors when the reply arrives.
// A failed load is logged and otherwise silent, it is not retried.
type Loader struct {
	svc yieldsvc.Service

	counties []view.Selector
	crops    []view.Selector
	onLoaded []func(*vocab.Vocabulary)

	once sync.Once
	eg   errgroup.Group

	mu  sync.RWMutex
	voc *vocab.Vocabulary
}

// New creates a Loader that queries the given service.
func New(svc yieldsvc.Service) *Loader {
	return &Loader{svc: svc}
}

// AttachCounties registers selectors that receive county names.
// Must be called before Load.
func (l *Loader) AttachCounties(sel ...view.Selector) {
	l.counties = append(l.counties, sel...)
}

// AttachCrops registers selectors that receive crop names.
// Must be called before Load.
func (l *Loader) AttachCrops(sel ...view.Selector) {
	l.crops = append(l.crops, sel...)
}

// OnLoaded registers a callback that runs after a successful load, once
// the selectors are populated. Must be called before Load.
func (l *Loader) OnLoaded(fn func(*vocab.Vocabulary)) {
	l.onLoaded = append(l.onLoaded, fn)
}

// Load starts fetching the vocabulary and returns immediately. Only the
// first call per Loader does anything.
func (l *Loader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.eg.Go(func() error {
			l.load(ctx)
			return nil
		})
	})
}

// Wait blocks until a started load has finished, successfully or not.
func (l *Loader) Wait() {
	_ = l.eg.Wait()
}

// Vocabulary returns the loaded vocabulary, or nil if it is not
// available (yet).
func (l *Loader) Vocabulary() *vocab.Vocabulary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.voc
}

func (l *Loader) load(ctx context.Context) {
	resp, err := l.svc.Metadata(ctx)
	if err != nil {
		slog.Warn("Cannot load metadata", "error", err)
		return
	}

	voc := vocab.New(resp.Counties, resp.Crops)
	if voc.IsEmpty() {
		slog.Warn("Metadata reply has no counties or no crops",
			"counties", len(resp.Counties), "crops", len(resp.Crops))
	}

	l.mu.Lock()
	l.voc = voc
	l.mu.Unlock()

	for _, sel := range l.counties {
		for _, v := range voc.Counties() {
			sel.AddOption(v)
		}
	}
	for _, sel := range l.crops {
		for _, v := range voc.Crops() {
			sel.AddOption(v)
		}
	}

	slog.Info("Metadata loaded",
		"counties", len(resp.Counties), "crops", len(resp.Crops))

	for _, fn := range l.onLoaded {
		fn(voc)
	}
}
